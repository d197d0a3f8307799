/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	serrors "github.com/NVIDIA/exesum/pkg/errors"
)

const (
	name           = "exesum"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Hash executable files and compare digests against known values",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			scanCmd(),
		},
	}
}

// Execute runs the root command and exits the process on failure.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps invalid-input failures (bad directory, bad algorithm, bad
// flags or config) to exit code 2; anything else fails with 1.
func exitCode(err error) int {
	switch serrors.CodeOf(err) {
	case serrors.ErrCodeDirectoryNotFound,
		serrors.ErrCodeUnsupportedAlgorithm,
		serrors.ErrCodeInvalidRequest:
		return 2
	default:
		return 1
	}
}
