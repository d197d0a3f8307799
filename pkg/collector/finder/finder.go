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

// Package finder discovers candidate files under a scan root by extension.
//
// Extension matching is case-insensitive (filesystems commonly vary case),
// using Unicode case folding. Traversal never escapes the root: only
// descendants are visited and symlinked directories are not followed.
package finder

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"

	serrors "github.com/NVIDIA/exesum/pkg/errors"
)

// Finder enumerates files under Root whose name carries Extension.
type Finder struct {
	// Root is the directory to enumerate.
	Root string

	// Extension is the file extension to match, including the leading dot.
	Extension string

	// Recursive enables traversal of descendant directories. When false,
	// only direct children of Root are considered.
	Recursive bool
}

// New creates a Finder for the given root, extension, and recursion flag.
func New(root, extension string, recursive bool) *Finder {
	return &Finder{
		Root:      root,
		Extension: extension,
		Recursive: recursive,
	}
}

// Find returns the matching file paths sorted lexically.
// It fails with DIRECTORY_NOT_FOUND if Root does not exist or is not a
// directory; a root with no matching files yields an empty slice, not an
// error.
func (f *Finder) Find(ctx context.Context) ([]string, error) {
	stat, err := os.Stat(f.Root)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeDirectoryNotFound, "'"+f.Root+"' is not a directory", err)
	}
	if !stat.IsDir() {
		return nil, serrors.New(serrors.ErrCodeDirectoryNotFound, "'"+f.Root+"' is not a directory")
	}

	if f.Recursive {
		return f.findRecursive(ctx)
	}
	return f.findTopLevel(ctx)
}

func (f *Finder) findTopLevel(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(f.Root)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeDirectoryNotFound, "failed to read directory "+f.Root, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if f.matches(entry.Name()) {
			paths = append(paths, filepath.Join(f.Root, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func (f *Finder) findRecursive(ctx context.Context) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(f.Root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			// unreadable entry, skip it rather than abort the walk
			slog.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if f.matches(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// matches reports whether name carries the finder's extension, compared
// case-insensitively via Unicode case folding.
func (f *Finder) matches(name string) bool {
	fold := cases.Fold()
	return fold.String(filepath.Ext(name)) == fold.String(f.Extension)
}
