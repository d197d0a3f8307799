/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/exesum/pkg/config"
	"github.com/NVIDIA/exesum/pkg/digest"
	serrors "github.com/NVIDIA/exesum/pkg/errors"
	"github.com/NVIDIA/exesum/pkg/logging"
	"github.com/NVIDIA/exesum/pkg/scanner"
)

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:                  "scan",
		EnableShellCompletion: true,
		Usage:                 "Hash executable files under a directory",
		ArgsUsage:             "DIRECTORY",
		Description: `Hash every executable file under DIRECTORY and print one block per file.

By default only the direct children of DIRECTORY are considered; use
--recursive to descend into subdirectories. File paths in the output are
relative to DIRECTORY unless --absolute-paths is set.

With --compare, text manifests under the same DIRECTORY are parsed into a
table of known digests and every hashed file is classified as MATCH,
MISMATCH, or UNKNOWN. Manifest lines hold a file path and its expected
digest separated by whitespace; blank lines and '#' comments are ignored.

Supported algorithms: ` + strings.Join(digest.Supported(), ", ") + `

# Examples

Hash the executables in a directory:
  exesum scan /opt/tools

Recursive scan with CSV and JSON exports:
  exesum scan --recursive --csv report.csv --json report.json /opt/tools

Compare against known digests, hashing four files at a time:
  exesum scan --compare --workers 4 /opt/tools`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to YAML config file with scan defaults",
				Sources: cli.EnvVars("EXESUM_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("EXESUM_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "algo",
				Aliases: []string{"a"},
				Usage:   "Digest algorithm (" + strings.Join(digest.Supported(), ", ") + ")",
				Value:   config.DefaultAlgorithm,
			},
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"r"},
				Usage:   "Descend into subdirectories",
			},
			&cli.BoolFlag{
				Name:    "compare",
				Aliases: []string{"c"},
				Usage:   "Compare digests against known values from text manifests",
			},
			&cli.BoolFlag{
				Name:  "absolute-paths",
				Usage: "Report absolute file paths instead of paths relative to DIRECTORY",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "Write results as CSV to the given file",
			},
			&cli.StringFlag{
				Name:  "json",
				Usage: "Write results as JSON to the given file",
			},
			&cli.StringFlag{
				Name:  "yaml",
				Usage: "Write the full report envelope as YAML to the given file",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of files hashed in parallel",
				Value: config.DefaultWorkers,
			},
			&cli.IntFlag{
				Name:  "block-size",
				Usage: "Read buffer size in bytes for hashing",
				Value: config.DefaultBlockSize,
			},
			&cli.StringFlag{
				Name:  "exe-ext",
				Usage: "Extension of the executable files to hash",
				Value: config.DefaultExeExtension,
			},
			&cli.StringFlag{
				Name:  "known-ext",
				Usage: "Extension of the known-value manifest files",
				Value: config.DefaultKnownExtension,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))

			root := cmd.Args().First()
			if root == "" {
				return serrors.New(serrors.ErrCodeInvalidRequest, "directory argument is required")
			}

			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Root = root

			s := &scanner.DirScanner{
				Version: version,
				Config:  cfg,
			}

			_, err = s.Scan(ctx)
			return err
		},
	}
}

// buildConfig loads the optional config file and overlays explicitly set
// flags on top, so precedence is flags over file over defaults.
func buildConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("algo") {
		cfg.Algorithm = cmd.String("algo")
	}
	if cmd.IsSet("recursive") {
		cfg.Recursive = cmd.Bool("recursive")
	}
	if cmd.IsSet("compare") {
		cfg.Compare = cmd.Bool("compare")
	}
	if cmd.IsSet("absolute-paths") {
		cfg.AbsolutePaths = cmd.Bool("absolute-paths")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = int(cmd.Int("workers"))
	}
	if cmd.IsSet("block-size") {
		cfg.BlockSize = int(cmd.Int("block-size"))
	}
	if cmd.IsSet("exe-ext") {
		cfg.ExeExtension = cmd.String("exe-ext")
	}
	if cmd.IsSet("known-ext") {
		cfg.KnownExtension = cmd.String("known-ext")
	}

	cfg.CSVPath = cmd.String("csv")
	cfg.JSONPath = cmd.String("json")
	cfg.YAMLPath = cmd.String("yaml")

	return cfg, nil
}
