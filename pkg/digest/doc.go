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

// Package digest computes cryptographic file digests against an explicit
// algorithm allow-list.
//
// Files are read in fixed-size blocks so memory stays bounded for large
// inputs, and reads honor context cancellation between blocks. Digests are
// always lowercase hex.
//
// Usage:
//
//	info, err := digest.Compute(ctx, "bin/app.exe", "sha256", digest.DefaultBlockSize)
//	if err != nil {
//	    // UNSUPPORTED_ALGORITHM or FILE_READ_ERROR
//	}
//	fmt.Println(info.Hash, info.Size, info.ModifiedTime)
package digest
