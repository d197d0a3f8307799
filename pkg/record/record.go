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

// Package record defines the result record produced for every hashed file
// and the comparison status vocabulary.
//
// A Record is created once per discovered file and is immutable after
// creation except for its Status, which the validator sets in compare mode.
// Size and modification time serialize as strings so the JSON export stays
// schema-symmetric with the CSV export.
package record

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Status represents the comparison outcome for a record.
// Status is only present on records produced by a compare-mode scan.
type Status string

const (
	// StatusMatch indicates an expected digest exists and matches.
	StatusMatch Status = "MATCH"
	// StatusMismatch indicates an expected digest exists but differs.
	StatusMismatch Status = "MISMATCH"
	// StatusUnknown indicates no expected digest exists for the filename key.
	StatusUnknown Status = "UNKNOWN"
)

// Statuses is the list of all comparison statuses.
var Statuses = []Status{
	StatusMatch,
	StatusMismatch,
	StatusUnknown,
}

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a string into a Status.
// Returns the Status and true if parsing succeeds, or empty Status and false otherwise.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Record holds the digest result for a single file.
type Record struct {
	// Hash is the lowercase hex digest of the file content.
	Hash string `json:"hash" yaml:"hash"`

	// Algorithm is the digest algorithm name (e.g. sha256).
	Algorithm string `json:"algorithm" yaml:"algorithm"`

	// Size is the file size in bytes.
	Size int64 `json:"size,string" yaml:"size"`

	// ModifiedTime is the file modification time in epoch seconds.
	ModifiedTime int64 `json:"modified_time,string" yaml:"modified_time"`

	// FilePath is the display path, relative to the scan root or absolute
	// depending on configuration.
	FilePath string `json:"file_path" yaml:"file_path"`

	// Filename is FilePath with its final extension removed. It is the
	// lookup key used to match records against known values.
	Filename string `json:"filename" yaml:"filename"`

	// Status is the comparison outcome. Empty outside compare mode.
	Status Status `json:"status,omitempty" yaml:"status,omitempty"`
}

// New creates a Record for the given digest result.
// Filename is derived from filePath by removing the final extension.
func New(hash, algorithm string, size, modified int64, filePath string) *Record {
	return &Record{
		Hash:         hash,
		Algorithm:    algorithm,
		Size:         size,
		ModifiedTime: modified,
		FilePath:     filePath,
		Filename:     TrimExt(filePath),
	}
}

// TrimExt removes only the final separator-delimited extension segment from
// path: "a.b.exe" becomes "a.b", "noext" stays "noext". Dots in directory
// names are not extensions: "dir.v2/app" stays "dir.v2/app". The same
// derivation is applied to known-value path tokens, so both sides of a
// comparison use identical keys.
func TrimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Columns returns the export column names in order.
// The status column is appended only when includeStatus is set.
func Columns(includeStatus bool) []string {
	cols := []string{"hash", "algorithm", "size", "modified_time", "file_path", "filename"}
	if includeStatus {
		cols = append(cols, "status")
	}
	return cols
}

// Row returns the record's values as strings, in Columns order.
func (r *Record) Row(includeStatus bool) []string {
	row := []string{
		r.Hash,
		r.Algorithm,
		strconv.FormatInt(r.Size, 10),
		strconv.FormatInt(r.ModifiedTime, 10),
		r.FilePath,
		r.Filename,
	}
	if includeStatus {
		row = append(row, string(r.Status))
	}
	return row
}
