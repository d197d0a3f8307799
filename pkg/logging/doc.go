// Package logging provides structured logging utilities shared by all
// exesum components.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults and conventions for consistent logging: structured JSON output
// to stderr, environment-based log level configuration (LOG_LEVEL),
// module/version context injection, and source location tracking for debug
// logs.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("exesum", version)
//
//	    slog.Info("scan started", "root", root)
//	    slog.Debug("detailed state", "records", len(records))
//	    slog.Error("scan failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("exesum", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug exesum scan .
//
// Supported levels (case-insensitive): debug, info (default), warn/warning,
// error.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "scan complete",
//	    "module": "exesum",
//	    "version": "v1.0.0",
//	    "records": 42
//	}
//
// Logs go to stderr so that the console result stream on stdout stays
// machine-consumable.
package logging
