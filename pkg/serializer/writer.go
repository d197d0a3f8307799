package serializer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/exesum/pkg/record"
)

// Format represents the output format type
type Format string

const (
	// FormatConsole outputs human-readable per-file blocks
	FormatConsole Format = "console"
	// FormatCSV outputs data in CSV format
	FormatCSV Format = "csv"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// emptyMessage is printed by the console format when a scan finds nothing.
const emptyMessage = "No executable files found."

func (f Format) IsUnknown() bool {
	switch f {
	case FormatConsole, FormatCSV, FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats
// for serialization.
func SupportedFormats() []string {
	return []string{
		string(FormatConsole),
		string(FormatCSV),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// Option is a functional option for configuring Writer instances.
type Option func(*Writer)

// WithStatusColumn returns an Option that controls whether console and CSV
// output include the comparison status. Set for compare-mode scans only.
func WithStatusColumn(include bool) Option {
	return func(w *Writer) {
		w.includeStatus = include
	}
}

// Writer handles serialization of scan results to various formats.
// Close must be called to release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format        Format
	output        io.Writer
	closer        io.Closer
	includeStatus bool
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used.
// If format is unknown, defaults to console format.
func NewWriter(format Format, output io.Writer, opts ...Option) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to console", "format", format)
		format = FormatConsole
	}
	w := &Writer{
		format: format,
		output: output,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewFileWriterOrStdout creates a new Writer that outputs to the specified file path in the given format.
// If the file cannot be created or path is empty, it falls back to stdout.
// Remember to call Close() on the returned Writer to ensure the file is properly closed.
func NewFileWriterOrStdout(format Format, path string, opts ...Option) Serializer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewWriter(format, os.Stdout, opts...)
	}

	file, err := os.Create(trimmed)
	if err != nil {
		slog.Error("failed to create output file, falling back to stdout", "error", err, "path", trimmed)
		return NewWriter(format, os.Stdout, opts...)
	}

	w := NewWriter(format, file, opts...)
	w.closer = file
	return w
}

// Close releases any resources associated with the Writer.
// It should be called when done writing, especially for file-based writers.
// It's safe to call Close multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		err := w.closer.Close()
		w.closer = nil
		return err
	}
	return nil
}

// Serialize writes the scan results in the configured format.
// Console and CSV formats require a []*record.Record; JSON and YAML accept
// any serializable value (typically the record slice or the full report).
// Context is provided for consistency with the Serializer interface,
// but is not actively used for file/stdout writes (which are fast and blocking).
func (w *Writer) Serialize(ctx context.Context, results any) error {
	switch w.format {
	case FormatConsole:
		return w.serializeConsole(results)
	case FormatCSV:
		return w.serializeCSV(results)
	case FormatJSON:
		return w.serializeJSON(results)
	case FormatYAML:
		return w.serializeYAML(results)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) serializeConsole(results any) error {
	records, err := toRecords(results)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w.output, emptyMessage)
		return err
	}

	for _, r := range records {
		fmt.Fprintf(w.output, "Filepath: %s\n", r.FilePath)
		fmt.Fprintf(w.output, "Hash: %s\n", r.Hash)
		if w.includeStatus {
			fmt.Fprintf(w.output, "Status: %s\n", r.Status)
		}
		if _, err := fmt.Fprintln(w.output, "---"); err != nil {
			return fmt.Errorf("failed to write console output: %w", err)
		}
	}
	return nil
}

func (w *Writer) serializeCSV(results any) error {
	records, err := toRecords(results)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w.output)
	if err := cw.Write(record.Columns(w.includeStatus)); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Row(w.includeStatus)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

func (w *Writer) serializeJSON(results any) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(results any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return nil
}

// toRecords narrows the serialization input for the row-oriented formats.
func toRecords(results any) ([]*record.Record, error) {
	records, ok := results.([]*record.Record)
	if !ok {
		return nil, fmt.Errorf("unsupported input type %T: expected []*record.Record", results)
	}
	return records, nil
}
