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

// Package file provides utilities for parsing loosely structured text
// sources such as known-value manifests.
//
// # Usage
//
// Parse a manifest into per-line token slices:
//
//	parser := file.NewParser(file.WithMaxSize(1 << 20))
//	rows, err := parser.GetFields("known.txt")
//	if err != nil {
//	    // Handle error
//	}
//	for _, tokens := range rows {
//	    // tokens are the whitespace-delimited fields of one line
//	}
//
// The parser automatically handles:
//   - Blank line and comment ('#') skipping
//   - File size caps to bound memory
//   - UTF-8 validation
//
// # Thread Safety
//
// A Parser holds only immutable settings after construction and is safe
// for concurrent use.
package file
