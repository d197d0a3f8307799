// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scanner

import (
	"context"

	"github.com/NVIDIA/exesum/pkg/header"
	"github.com/NVIDIA/exesum/pkg/record"
)

const (
	// APIVersion is the API version for scan reports.
	APIVersion = "exesum.nvidia.com/v1alpha1"
)

// Scanner defines the interface for running a directory scan.
// Implementations hash the candidate files under the configured root,
// optionally compare them against known values, and serialize the results.
type Scanner interface {
	Scan(ctx context.Context) (*Report, error)
}

// NewReport creates a new Report instance with an initialized Results slice.
func NewReport() *Report {
	return &Report{
		Results: make([]*record.Record, 0),
		Errors:  make([]string, 0),
	}
}

// Report represents the complete outcome of a single scan run.
// It contains the report envelope metadata, one record per hashed file,
// and any recovered warnings encountered along the way.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Results contains one record per successfully hashed file, in
	// discovery order.
	Results []*record.Record `json:"results" yaml:"results"`

	// Errors contains recovered warnings: unreadable files and malformed
	// known-value lines. Fatal errors abort the scan and never appear here.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}
