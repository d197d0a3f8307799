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

package exe

import (
	"context"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/exesum/pkg/collector/finder"
	"github.com/NVIDIA/exesum/pkg/digest"
	serrors "github.com/NVIDIA/exesum/pkg/errors"
	"github.com/NVIDIA/exesum/pkg/record"
)

// Collector discovers executable files under Root and computes one digest
// record per file.
type Collector struct {
	// Root is the directory to scan.
	Root string

	// Extension selects candidate files, including the leading dot.
	Extension string

	// Recursive enables descent into subdirectories.
	Recursive bool

	// AbsolutePaths reports absolute file paths in records instead of
	// paths relative to Root.
	AbsolutePaths bool

	// Algorithm is the digest algorithm name.
	Algorithm string

	// BlockSize is the read buffer size in bytes; zero uses the default.
	BlockSize int

	// Workers bounds concurrent hashing; values below one run sequentially.
	Workers int
}

// Collect discovers and hashes the candidate files. Records are returned in
// lexical path order regardless of worker count. A file that cannot be read
// is reported in the warnings slice and skipped; only an invalid root, an
// unsupported algorithm, or context cancellation abort the collection.
func (c *Collector) Collect(ctx context.Context) ([]*record.Record, []error, error) {
	// Reject bad algorithm names before touching the filesystem.
	if _, err := digest.NewHasher(c.Algorithm); err != nil {
		return nil, nil, err
	}

	paths, err := finder.New(c.Root, c.Extension, c.Recursive).Find(ctx)
	if err != nil {
		return nil, nil, err
	}

	// Index-addressed slices keep discovery order without locking.
	results := make([]*record.Record, len(paths))
	failures := make([]error, len(paths))

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			info, err := digest.Compute(gctx, path, c.Algorithm, c.BlockSize)
			if err != nil {
				if serrors.IsCode(err, serrors.ErrCodeFileRead) {
					// Per-file failure, keep hashing the rest.
					slog.Warn("failed to hash file", "path", path, "error", err)
					failures[i] = err
					return nil
				}
				return err
			}

			results[i] = record.New(info.Hash, c.Algorithm, info.Size, info.ModifiedTime, c.displayPath(path))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	records := make([]*record.Record, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, r)
		}
	}
	warnings := make([]error, 0)
	for _, err := range failures {
		if err != nil {
			warnings = append(warnings, err)
		}
	}

	return records, warnings, nil
}

// displayPath converts a discovered path to the form recorded for the
// file: relative to Root by default, absolute when configured.
func (c *Collector) displayPath(path string) string {
	if c.AbsolutePaths {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	if rel, err := filepath.Rel(c.Root, path); err == nil {
		return rel
	}
	return path
}
