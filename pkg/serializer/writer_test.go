package serializer

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/exesum/pkg/record"
)

func sampleRecords() []*record.Record {
	a := record.New("aaa111", "sha256", 10, 1700000000, "bin/app.exe")
	a.Status = record.StatusMatch
	b := record.New("bbb222", "sha256", 20, 1700000001, "tool.exe")
	b.Status = record.StatusMismatch
	return []*record.Record{a, b}
}

func TestSerializeConsole(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatConsole, &buf)

	if err := w.Serialize(context.Background(), sampleRecords()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Filepath: bin/app.exe", "Hash: aaa111", "---"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Status:") {
		t.Errorf("status should be omitted without the status column option:\n%s", out)
	}
}

func TestSerializeConsoleWithStatus(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatConsole, &buf, WithStatusColumn(true))

	if err := w.Serialize(context.Background(), sampleRecords()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Status: MATCH") || !strings.Contains(out, "Status: MISMATCH") {
		t.Errorf("expected statuses in console output:\n%s", out)
	}
}

func TestSerializeConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatConsole, &buf)

	if err := w.Serialize(context.Background(), []*record.Record{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != emptyMessage {
		t.Errorf("expected %q, got %q", emptyMessage, got)
	}
}

func TestSerializeCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, &buf, WithStatusColumn(true))

	records := sampleRecords()
	if err := w.Serialize(context.Background(), records); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV back: %v", err)
	}

	if len(rows) != len(records)+1 {
		t.Fatalf("expected header + %d rows, got %d", len(records), len(rows))
	}

	wantHeader := record.Columns(true)
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header column %d: expected %q, got %q", i, col, rows[0][i])
		}
	}

	// size and modified_time survive the round trip as decimal strings
	if rows[1][2] != "10" || rows[1][3] != "1700000000" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
	if rows[1][6] != "MATCH" || rows[2][6] != "MISMATCH" {
		t.Errorf("unexpected status cells: %v, %v", rows[1], rows[2])
	}
}

func TestSerializeCSVNoStatusColumn(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, &buf)

	if err := w.Serialize(context.Background(), sampleRecords()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV back: %v", err)
	}
	if len(rows[0]) != 6 {
		t.Errorf("expected 6 columns, got %d: %v", len(rows[0]), rows[0])
	}
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	if err := w.Serialize(context.Background(), sampleRecords()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON produced: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(decoded))
	}

	// numeric fields serialize as strings
	if got, ok := decoded[0]["size"].(string); !ok || got != "10" {
		t.Errorf("expected size as string \"10\", got %v", decoded[0]["size"])
	}
	if got, ok := decoded[0]["modified_time"].(string); !ok || got != "1700000000" {
		t.Errorf("expected modified_time as string, got %v", decoded[0]["modified_time"])
	}
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	if err := w.Serialize(context.Background(), sampleRecords()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "hash: aaa111") {
		t.Errorf("unexpected YAML output:\n%s", buf.String())
	}
}

func TestSerializeRejectsWrongType(t *testing.T) {
	w := NewWriter(FormatCSV, &bytes.Buffer{})
	if err := w.Serialize(context.Background(), "not records"); err == nil {
		t.Error("expected type error for non-record input")
	}
}

func TestNewWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("bogus"), &buf)

	if err := w.Serialize(context.Background(), []*record.Record{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), emptyMessage) {
		t.Errorf("expected console fallback, got:\n%s", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w := NewFileWriterOrStdout(FormatJSON, path)
	if err := w.Serialize(context.Background(), sampleRecords()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if closer, ok := w.(Closer); ok {
		if err := closer.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON in file: %v", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w := NewFileWriterOrStdout(FormatCSV, path)

	closer := w.(Closer)
	if err := closer.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
