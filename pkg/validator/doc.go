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

// Package validator compares digest records against known-value tables.
//
// Each record is classified as MATCH, MISMATCH, or UNKNOWN by looking up
// its filename key in the table. The aggregate outcome is pass (all
// matched), fail (any mismatch), or partial (no mismatches, some unknowns).
//
//	v := validator.New(validator.WithVersion("v1.0.0"))
//	summary, err := v.Validate(ctx, records, known)
package validator
