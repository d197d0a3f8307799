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

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/exesum/pkg/config"
	serrors "github.com/NVIDIA/exesum/pkg/errors"
)

func TestScanCmdStructure(t *testing.T) {
	cmd := scanCmd()

	if cmd.Name != "scan" {
		t.Errorf("Name = %v, want scan", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
	if len(cmd.Flags) == 0 {
		t.Error("expected flags to be defined")
	}
}

func TestScanCmdRun(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "app.exe"), []byte("app"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := filepath.Join(t.TempDir(), "report.json")

	cmd := scanCmd()
	err := cmd.Run(context.Background(), []string{"scan", "--json", out, root})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected JSON export at %s: %v", out, err)
	}
}

func TestScanCmdMissingArgument(t *testing.T) {
	cmd := scanCmd()
	err := cmd.Run(context.Background(), []string{"scan"})
	if err == nil {
		t.Fatal("expected error without directory argument")
	}
	if !serrors.IsCode(err, serrors.ErrCodeInvalidRequest) {
		t.Errorf("expected INVALID_REQUEST, got %v", err)
	}
}

func TestScanCmdMissingDirectory(t *testing.T) {
	cmd := scanCmd()
	err := cmd.Run(context.Background(), []string{"scan", filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !serrors.IsCode(err, serrors.ErrCodeDirectoryNotFound) {
		t.Errorf("expected DIRECTORY_NOT_FOUND, got %v", err)
	}
	if exitCode(err) != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode(err))
	}
}

func TestScanCmdUnsupportedAlgorithm(t *testing.T) {
	cmd := scanCmd()
	err := cmd.Run(context.Background(), []string{"scan", "--algo", "crc32", t.TempDir()})
	if err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
	if !serrors.IsCode(err, serrors.ErrCodeUnsupportedAlgorithm) {
		t.Errorf("expected UNSUPPORTED_ALGORITHM, got %v", err)
	}
	if exitCode(err) != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode(err))
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"directory not found", serrors.New(serrors.ErrCodeDirectoryNotFound, "x"), 2},
		{"unsupported algorithm", serrors.New(serrors.ErrCodeUnsupportedAlgorithm, "x"), 2},
		{"invalid request", serrors.New(serrors.ErrCodeInvalidRequest, "x"), 2},
		{"file read", serrors.New(serrors.ErrCodeFileRead, "x"), 1},
		{"plain error", errors.New("x"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildConfigFlagPrecedence(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte("algorithm: md5\nworkers: 8\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// Create a minimal CLI command with the scan flags
	var got *config.Config
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.StringFlag{Name: "algo"},
			&cli.BoolFlag{Name: "recursive"},
			&cli.BoolFlag{Name: "compare"},
			&cli.BoolFlag{Name: "absolute-paths"},
			&cli.StringFlag{Name: "csv"},
			&cli.StringFlag{Name: "json"},
			&cli.StringFlag{Name: "yaml"},
			&cli.IntFlag{Name: "workers"},
			&cli.IntFlag{Name: "block-size"},
			&cli.StringFlag{Name: "exe-ext"},
			&cli.StringFlag{Name: "known-ext"},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			var err error
			got, err = buildConfig(c)
			return err
		},
	}

	err := cmd.Run(context.Background(), []string{
		"test", "--config", cfgFile, "--algo", "sha512", "--csv", "out.csv",
	})
	if err != nil {
		t.Fatalf("failed to run command: %v", err)
	}

	if got.Algorithm != "sha512" {
		t.Errorf("flag should override config file: got %q", got.Algorithm)
	}
	if got.Workers != 8 {
		t.Errorf("config file should override defaults: got %d", got.Workers)
	}
	if got.BlockSize != config.DefaultBlockSize {
		t.Errorf("untouched values should keep defaults: got %d", got.BlockSize)
	}
	if got.CSVPath != "out.csv" {
		t.Errorf("export path not applied: got %q", got.CSVPath)
	}
}

func TestRootCmdStructure(t *testing.T) {
	cmd := rootCmd()

	if cmd.Name != name {
		t.Errorf("Name = %v, want %v", cmd.Name, name)
	}
	if len(cmd.Commands) == 0 {
		t.Error("expected subcommands to be registered")
	}
	if cmd.Version == "" {
		t.Error("Version should not be empty")
	}
}
