package scanner

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/exesum/pkg/collector"
	"github.com/NVIDIA/exesum/pkg/config"
	"github.com/NVIDIA/exesum/pkg/digest"
	serrors "github.com/NVIDIA/exesum/pkg/errors"
	"github.com/NVIDIA/exesum/pkg/header"
	"github.com/NVIDIA/exesum/pkg/record"
	"github.com/NVIDIA/exesum/pkg/serializer"
	"github.com/NVIDIA/exesum/pkg/validator"
)

// DirScanner hashes executable files under a directory root, optionally
// compares the digests against known values, and serializes the results.
type DirScanner struct {
	// Version is the scanner version.
	Version string

	// Config is the scan configuration. Required.
	Config *config.Config

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Console is the serializer for primary output. If nil, a console
	// writer on stdout is used.
	Console serializer.Serializer
}

// Scan runs the full pipeline: discover, hash, optionally compare, then
// serialize. Fatal conditions (invalid root, unsupported algorithm, bad
// configuration) abort before any output is produced; per-file failures
// are reported in the returned report and do not stop the run.
func (s *DirScanner) Scan(ctx context.Context) (*Report, error) {
	start := time.Now()

	if s.Config == nil {
		return nil, serrors.New(serrors.ErrCodeInvalidRequest, "scan configuration cannot be nil")
	}
	cfg := s.Config

	if err := cfg.NormalizeRoot(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Fatal preconditions, checked in order, before any output exists.
	if stat, err := os.Stat(cfg.Root); err != nil || !stat.IsDir() {
		return nil, serrors.New(serrors.ErrCodeDirectoryNotFound, "'"+cfg.Root+"' is not a directory")
	}
	if _, err := digest.NewHasher(cfg.Algorithm); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := slog.With("run", runID, "root", cfg.Root, "algorithm", cfg.Algorithm)
	log.Debug("starting scan",
		"recursive", cfg.Recursive,
		"compare", cfg.Compare,
		"workers", cfg.Workers)

	factory := s.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory(cfg)
	}

	records, warnings, err := factory.CreateExeCollector().Collect(ctx)
	if err != nil {
		scanTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	filesHashedTotal.WithLabelValues("success").Add(float64(len(records)))
	filesHashedTotal.WithLabelValues("error").Add(float64(len(warnings)))

	if cfg.Compare {
		known, knownWarnings, err := factory.CreateKnownValueCollector().Collect(ctx)
		if err != nil {
			scanTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		warnings = append(warnings, knownWarnings...)

		summary, err := validator.New(validator.WithVersion(s.Version)).Validate(ctx, records, known)
		if err != nil {
			scanTotal.WithLabelValues("error").Inc()
			return nil, err
		}

		compareTotal.WithLabelValues(strings.ToLower(record.StatusMatch.String())).Add(float64(summary.Matched))
		compareTotal.WithLabelValues(strings.ToLower(record.StatusMismatch.String())).Add(float64(summary.Mismatched))
		compareTotal.WithLabelValues(strings.ToLower(record.StatusUnknown.String())).Add(float64(summary.Unknown))

		log.Info("comparison summary",
			"matched", summary.Matched,
			"mismatched", summary.Mismatched,
			"unknown", summary.Unknown,
			"status", summary.Status)
	}

	for _, w := range warnings {
		log.Warn("scan warning", "error", w.Error())
	}

	report := NewReport()
	report.Init(header.KindScanReport, APIVersion, s.Version)
	report.Metadata["run"] = runID
	report.Metadata["root"] = cfg.Root
	report.Metadata["algorithm"] = cfg.Algorithm
	report.Results = records
	for _, w := range warnings {
		report.Errors = append(report.Errors, w.Error())
	}

	if err := s.writeOutputs(ctx, report); err != nil {
		scanTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	scanDuration.Observe(time.Since(start).Seconds())
	scanTotal.WithLabelValues("success").Inc()
	scanRecordCount.Set(float64(len(records)))

	log.Debug("scan completed",
		"files", len(records),
		"warnings", len(warnings),
		"duration", time.Since(start))

	return report, nil
}

// writeOutputs serializes the report to the console and to each configured
// export file. The record slice is the payload for the row-oriented
// formats; the YAML export carries the full report envelope.
func (s *DirScanner) writeOutputs(ctx context.Context, report *Report) error {
	console := s.Console
	if console == nil {
		console = serializer.NewWriter(serializer.FormatConsole, os.Stdout,
			serializer.WithStatusColumn(s.Config.Compare))
	}
	if err := console.Serialize(ctx, report.Results); err != nil {
		return err
	}

	exports := []struct {
		format  serializer.Format
		path    string
		payload any
	}{
		{serializer.FormatCSV, s.Config.CSVPath, report.Results},
		{serializer.FormatJSON, s.Config.JSONPath, report.Results},
		{serializer.FormatYAML, s.Config.YAMLPath, report},
	}

	for _, e := range exports {
		if strings.TrimSpace(e.path) == "" {
			continue
		}

		w := serializer.NewFileWriterOrStdout(e.format, e.path,
			serializer.WithStatusColumn(s.Config.Compare))
		err := w.Serialize(ctx, e.payload)
		if closer, ok := w.(serializer.Closer); ok {
			if cerr := closer.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		if err != nil {
			return err
		}
		slog.Debug("wrote export", "format", e.format, "path", e.path)
	}

	return nil
}
