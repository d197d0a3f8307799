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

// Package collector provides interfaces and implementations for gathering
// digest data from a directory tree.
//
// # Overview
//
// Two collectors feed the scan pipeline: the executable collector
// (collector/exe) discovers and hashes candidate files, and the
// known-value collector (collector/known) parses text manifests into a
// table of expected digests. Both tolerate per-item failures and surface
// them separately from fatal errors, so one bad file never aborts a batch.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	factory := collector.NewDefaultFactory(cfg)
//	records, warnings, err := factory.CreateExeCollector().Collect(ctx)
//
// All collectors support context-based cancellation.
package collector
