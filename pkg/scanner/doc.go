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

// Package scanner orchestrates the scan pipeline: file discovery, parallel
// hashing, optional comparison against known values, and serialization of
// the resulting report.
//
// The pipeline validates its inputs before producing any output, so a bad
// root or algorithm never leaves a partial export file behind. Recovered
// per-file failures are carried in the report instead of aborting the run.
package scanner
