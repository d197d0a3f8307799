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

package digest

import (
	"context"
	"crypto/md5"  //nolint:gosec // offered for interop with legacy manifests, not for security
	"crypto/sha1" //nolint:gosec // offered for interop with legacy manifests, not for security
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"os"
	"sort"

	serrors "github.com/NVIDIA/exesum/pkg/errors"
)

// DefaultBlockSize is the read buffer size used when none is configured.
const DefaultBlockSize = 1 << 20 // 1MB

// algorithms is the explicit allow-list of supported digest algorithms.
// Names not present here fail fast with UNSUPPORTED_ALGORITHM instead of a
// confusing low-level error.
var algorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// Supported returns the sorted list of allowed algorithm names.
func Supported() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSupported reports whether the algorithm name is in the allow-list.
func IsSupported(algorithm string) bool {
	_, ok := algorithms[algorithm]
	return ok
}

// NewHasher creates a new hasher for the given algorithm name.
// Returns an UNSUPPORTED_ALGORITHM error for names outside the allow-list.
func NewHasher(algorithm string) (hash.Hash, error) {
	newFn, ok := algorithms[algorithm]
	if !ok {
		return nil, serrors.NewWithContext(
			serrors.ErrCodeUnsupportedAlgorithm,
			"unsupported hash algorithm: "+algorithm,
			map[string]any{"supported": Supported()},
		)
	}
	return newFn(), nil
}

// Info holds the digest result for a single file.
type Info struct {
	// Hash is the lowercase hex digest of the file content.
	Hash string

	// Size is the file size in bytes.
	Size int64

	// ModifiedTime is the file modification time in epoch seconds.
	ModifiedTime int64
}

// Compute reads the file at path in fixed-size blocks and returns its
// digest along with size and modification time metadata. The digest is
// deterministic for identical byte content regardless of path or name.
//
// I/O failures are wrapped as FILE_READ_ERROR; callers treat them as
// per-file failures and continue with the remaining files.
func Compute(ctx context.Context, path, algorithm string, blockSize int) (*Info, error) {
	hasher, err := NewHasher(algorithm)
	if err != nil {
		return nil, err
	}

	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeFileRead, "failed to open "+path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeFileRead, "failed to stat "+path, err)
	}

	buf := make([]byte, blockSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := f.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrCodeFileRead, "failed to read "+path, err)
		}
	}

	return &Info{
		Hash:         hex.EncodeToString(hasher.Sum(nil)),
		Size:         stat.Size(),
		ModifiedTime: stat.ModTime().Unix(),
	}, nil
}
