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

package validator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/exesum/pkg/record"
)

// Classify determines the comparison status for a single record. The key is
// the record's filename; matching is exact on the key and case-insensitive
// on the digest (known digests are stored lowercased, computed digests are
// emitted lowercased, the fold here covers callers passing raw input).
func Classify(filename, hash string, known map[string]string) record.Status {
	expected, ok := known[filename]
	if !ok {
		return record.StatusUnknown
	}
	if strings.ToLower(hash) == expected {
		return record.StatusMatch
	}
	return record.StatusMismatch
}

// Validator compares digest records against a known-value table.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate classifies every record against the known-value table, setting
// each record's Status in place, and returns the aggregate summary. An
// empty table is valid: every record classifies as UNKNOWN.
func (v *Validator) Validate(ctx context.Context, records []*record.Record, known map[string]string) (*Summary, error) {
	start := time.Now()

	summary := &Summary{}

	for _, r := range records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		r.Status = Classify(r.Filename, r.Hash, known)

		switch r.Status {
		case record.StatusMatch:
			summary.Matched++
		case record.StatusMismatch:
			summary.Mismatched++
		case record.StatusUnknown:
			summary.Unknown++
		}
	}

	summary.Total = len(records)
	summary.Duration = time.Since(start)

	switch {
	case summary.Mismatched > 0:
		summary.Status = ComparisonStatusFail
	case summary.Unknown > 0:
		summary.Status = ComparisonStatusPartial
	default:
		summary.Status = ComparisonStatusPass
	}

	slog.Debug("comparison completed",
		"matched", summary.Matched,
		"mismatched", summary.Mismatched,
		"unknown", summary.Unknown,
		"status", summary.Status,
		"duration", summary.Duration)

	return summary, nil
}
