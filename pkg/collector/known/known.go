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

package known

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/exesum/pkg/collector/file"
	"github.com/NVIDIA/exesum/pkg/collector/finder"
	serrors "github.com/NVIDIA/exesum/pkg/errors"
	"github.com/NVIDIA/exesum/pkg/record"
)

// lineTokens is the required token count per manifest line: a file path
// followed by its expected digest.
const lineTokens = 2

// Collector builds the known-value table from text manifests under Root.
type Collector struct {
	// Root is the directory to scan for manifest files.
	Root string

	// Extension selects manifest files, including the leading dot.
	Extension string

	// Recursive enables descent into subdirectories.
	Recursive bool
}

// Collect parses every manifest under Root into a single table keyed by
// filename (the path token with its final extension removed) with the
// expected digest, lowercased, as the value. Later entries overwrite
// earlier ones for the same key, across lines and across files in lexical
// source order.
//
// Malformed lines and unreadable manifests are reported as warnings and
// skipped; only an invalid root or context cancellation is fatal.
func (c *Collector) Collect(ctx context.Context) (map[string]string, []error, error) {
	paths, err := finder.New(c.Root, c.Extension, c.Recursive).Find(ctx)
	if err != nil {
		return nil, nil, err
	}

	parser := file.NewParser()
	table := make(map[string]string)
	warnings := make([]error, 0)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		rows, err := parser.GetFields(path)
		if err != nil {
			slog.Warn("failed to read known-value source", "path", path, "error", err)
			warnings = append(warnings, serrors.Wrap(serrors.ErrCodeKnownValueParse,
				"failed to read known-value source "+path, err))
			continue
		}

		for _, tokens := range rows {
			if len(tokens) != lineTokens {
				slog.Warn("skipping malformed known-value line",
					"path", path, "line", strings.Join(tokens, " "))
				warnings = append(warnings, serrors.NewWithContext(
					serrors.ErrCodeKnownValueParse,
					fmt.Sprintf("malformed line in %s: expected %d tokens, got %d",
						path, lineTokens, len(tokens)),
					map[string]any{"line": strings.Join(tokens, " ")},
				))
				continue
			}

			key := record.TrimExt(tokens[0])
			table[key] = strings.ToLower(tokens[1])
		}
	}

	return table, warnings, nil
}
