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

// Package serializer provides utilities for serializing scan results to
// various formats.
//
// The package supports four output formats:
//   - Console: Human-readable per-file blocks for terminal output
//   - CSV: One row per record with a header row
//   - JSON: Machine-readable record array with proper indentation
//   - YAML: Human-readable report envelope
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatCSV, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, records); err != nil {
//		log.Fatal(err)
//	}
//
// The package automatically handles:
//   - Falling back to stdout when an output file cannot be created
//   - The status column, present only for compare-mode output
//   - Resource cleanup via Close() method
package serializer

import "context"

// Serializer is an interface for serializing scan results.
// Implementations of this interface can serialize data to various formats
// such as console text, CSV, JSON, or YAML.
//
// The context parameter is used for cancellation and timeouts, particularly
// important for implementations that perform I/O operations.
type Serializer interface {
	Serialize(ctx context.Context, results any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
