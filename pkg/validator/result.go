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
	"time"
)

// ComparisonStatus represents the overall comparison outcome.
type ComparisonStatus string

const (
	// ComparisonStatusPass indicates every record matched its known value.
	ComparisonStatusPass ComparisonStatus = "pass"

	// ComparisonStatusFail indicates one or more records mismatched.
	ComparisonStatusFail ComparisonStatus = "fail"

	// ComparisonStatusPartial indicates no mismatches, but some records had
	// no known value to compare against.
	ComparisonStatusPartial ComparisonStatus = "partial"
)

// Summary contains aggregate statistics about a comparison.
type Summary struct {
	// Matched is the count of records whose digest equals the known value.
	Matched int `json:"matched" yaml:"matched"`

	// Mismatched is the count of records whose digest differs from the
	// known value.
	Mismatched int `json:"mismatched" yaml:"mismatched"`

	// Unknown is the count of records with no known value for their key.
	Unknown int `json:"unknown" yaml:"unknown"`

	// Total is the total number of records compared.
	Total int `json:"total" yaml:"total"`

	// Status is the overall comparison status.
	Status ComparisonStatus `json:"status" yaml:"status"`

	// Duration is how long the comparison took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
