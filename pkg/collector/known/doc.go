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

// Package known parses plain-text digest manifests into a lookup table.
//
// Each manifest line names a file path and its expected digest, separated
// by whitespace:
//
//	bin/app.exe 3a1f...c9
//	tool.exe    9B2D...E0
//
// Keys are derived from the path token by stripping its final extension,
// matching how scanned files are keyed. Digests are lowercased so matching
// is case-insensitive on the hash side. Blank lines and '#' comments are
// ignored; anything else that does not parse becomes a warning, never a
// fatal error.
package known
