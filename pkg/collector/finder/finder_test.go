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

package finder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	serrors "github.com/NVIDIA/exesum/pkg/errors"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestFindTopLevel(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.exe"))
	touch(t, filepath.Join(root, "a.exe"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "nested.exe"))

	paths, err := New(root, ".exe", false).Find(context.Background())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	want := []string{filepath.Join(root, "a.exe"), filepath.Join(root, "b.exe")}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("expected sorted path %q at %d, got %q", want[i], i, paths[i])
		}
	}
}

func TestFindRecursive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "top.exe"))
	touch(t, filepath.Join(root, "sub", "nested.exe"))
	touch(t, filepath.Join(root, "sub", "deeper", "leaf.exe"))
	touch(t, filepath.Join(root, "sub", "readme.txt"))

	paths, err := New(root, ".exe", true).Find(context.Background())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(paths) != 3 {
		t.Errorf("expected 3 executables, got %d: %v", len(paths), paths)
	}
}

func TestFindCaseInsensitiveExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "upper.EXE"))
	touch(t, filepath.Join(root, "mixed.Exe"))

	paths, err := New(root, ".exe", false).Find(context.Background())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(paths) != 2 {
		t.Errorf("expected case-insensitive matches, got %v", paths)
	}
}

func TestFindMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), ".exe", false).Find(context.Background())
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !serrors.IsCode(err, serrors.ErrCodeDirectoryNotFound) {
		t.Errorf("expected DIRECTORY_NOT_FOUND, got %v", err)
	}
}

func TestFindRootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.exe")
	touch(t, file)

	_, err := New(file, ".exe", false).Find(context.Background())
	if err == nil {
		t.Fatal("expected error for file root")
	}
	if !serrors.IsCode(err, serrors.ErrCodeDirectoryNotFound) {
		t.Errorf("expected DIRECTORY_NOT_FOUND, got %v", err)
	}
}

func TestFindEmptyRoot(t *testing.T) {
	paths, err := New(t.TempDir(), ".exe", true).Find(context.Background())
	if err != nil {
		t.Fatalf("expected no error for empty root, got %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no matches, got %v", paths)
	}
}
