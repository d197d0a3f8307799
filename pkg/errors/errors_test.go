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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDirectoryNotFound, "root is not a directory")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeDirectoryNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeDirectoryNotFound, err.Code)
	}
	if err.Message != "root is not a directory" {
		t.Errorf("expected message 'root is not a directory', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeFileRead, "failed to hash file", cause)

	if err.Code != ErrCodeFileRead {
		t.Errorf("expected code %s, got %s", ErrCodeFileRead, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("permission denied")
	ctx := map[string]interface{}{
		"path":      "bin/app.exe",
		"algorithm": "sha256",
	}

	err := WrapWithContext(ErrCodeFileRead, "hashing failed", cause, ctx)

	if err.Code != ErrCodeFileRead {
		t.Errorf("expected code %s, got %s", ErrCodeFileRead, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["path"] != "bin/app.exe" {
		t.Errorf("expected path to be bin/app.exe")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeDirectoryNotFound, "no such directory"),
			expected: "[DIRECTORY_NOT_FOUND] no such directory",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	base := New(ErrCodeUnsupportedAlgorithm, "no such algorithm")

	if got := CodeOf(base); got != ErrCodeUnsupportedAlgorithm {
		t.Errorf("expected %s, got %s", ErrCodeUnsupportedAlgorithm, got)
	}

	// wrapped with fmt retains the code
	wrapped := fmt.Errorf("scan failed: %w", base)
	if got := CodeOf(wrapped); got != ErrCodeUnsupportedAlgorithm {
		t.Errorf("expected %s through wrapping, got %s", ErrCodeUnsupportedAlgorithm, got)
	}

	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("expected %s for plain error, got %s", ErrCodeInternal, got)
	}

	if !IsCode(wrapped, ErrCodeUnsupportedAlgorithm) {
		t.Error("expected IsCode to match wrapped code")
	}
}
