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

// Package exe collects digest records for executable files under a scan
// root.
//
// Discovery and hashing are separate phases: the finder enumerates
// candidates in lexical order, then a bounded worker pool hashes them.
// Output order matches discovery order regardless of the worker count, so
// reports are deterministic for a given tree.
package exe
