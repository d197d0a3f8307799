// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeFileRead,
//	    "failed to hash file",
//	    ioErr,
//	    map[string]interface{}{
//	        "path": path,
//	        "algorithm": algo,
//	    },
//	)
//
// Fatal codes (ErrCodeDirectoryNotFound, ErrCodeUnsupportedAlgorithm) abort
// a scan before any output is produced; recoverable codes (ErrCodeFileRead,
// ErrCodeKnownValueParse) are accumulated while the scan continues.
package errors
