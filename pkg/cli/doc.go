// Package cli implements the command-line interface for the exesum tool.
//
// # Overview
//
// The exesum CLI hashes executable files under a directory tree and can
// compare the computed digests against known-good values kept in plain
// text manifests. It is designed for operators verifying the integrity of
// deployed binaries.
//
// # Commands
//
// scan - Hash executable files under a directory:
//
//	exesum scan [--recursive] [--compare] [--algo sha256] DIRECTORY
//
// Hashes every matching file under DIRECTORY and prints one block per file
// to stdout. With --compare, digests are classified as MATCH, MISMATCH, or
// UNKNOWN against the known values parsed from manifests in the same tree.
//
// # Scan Flags
//
//	--algo, -a        Digest algorithm (default: sha256)
//	--recursive, -r   Descend into subdirectories
//	--compare, -c     Compare against known values
//	--absolute-paths  Report absolute paths instead of root-relative ones
//	--csv FILE        Export results as CSV
//	--json FILE       Export results as JSON
//	--yaml FILE       Export the full report envelope as YAML
//	--workers N       Hash N files in parallel (default: 1)
//	--config FILE     YAML file with scan defaults
//
// # Exit Codes
//
//	0  Success
//	1  General error (export failure, unexpected I/O error)
//	2  Invalid input (missing directory, unsupported algorithm, bad flags)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/scanner - Scan pipeline orchestration
//   - pkg/collector - File discovery, hashing, and manifest parsing
//   - pkg/validator - Digest comparison
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/exesum/pkg/cli.version=1.0.0'"
package cli
