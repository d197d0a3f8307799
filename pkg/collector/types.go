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

package collector

import (
	"context"

	"github.com/NVIDIA/exesum/pkg/record"
)

// RecordCollector discovers candidate files and produces one digest record
// per successfully hashed file.
//
// The second return value carries recovered per-file failures: a file that
// cannot be read is excluded from the records and reported there, and the
// collection continues. The third return value is fatal and aborts the run.
type RecordCollector interface {
	Collect(ctx context.Context) ([]*record.Record, []error, error)
}

// TableCollector builds the known-value table mapping derived filename keys
// to expected digests.
//
// The second return value carries recovered per-line parse warnings and
// per-source read failures. The third return value is fatal.
type TableCollector interface {
	Collect(ctx context.Context) (map[string]string, []error, error)
}
