package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hexvue/hv/internal/format"
)

// captureRun executes Run with stdout redirected to a pipe and returns
// what was written. Output stays well under the pipe buffer, so the
// single read after Run returns is safe.
func captureRun(t *testing.T, opts Options) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	runErr := Run(opts)
	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out), runErr
}

func writeInput(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunDumpMode(t *testing.T) {
	opts := Options{
		Path:   writeInput(t, []byte("012")),
		Cols:   10,
		Format: format.LowerHex,
		Color:  ColorOff,
		Prefix: true,
	}
	out, err := captureRun(t, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "0x000000: 0x30 0x31 0x32 " + strings.Repeat(" ", 35) + "012\n   bytes: 3\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRunArrayMode(t *testing.T) {
	opts := Options{
		Path:      writeInput(t, []byte{0x42, 0x43, 0x44}),
		Cols:      10,
		Format:    format.LowerHex,
		Color:     ColorOff,
		Prefix:    true,
		ArrayLang: "r",
	}
	out, err := captureRun(t, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "let ARRAY: [u8; 3] = [\n    0x42, 0x43, 0x44\n];\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRunWaveMode(t *testing.T) {
	// Wave mode never touches the input stream; no path is needed.
	opts := Options{WaveMode: true, WaveLen: 5, Places: 2}
	out, err := captureRun(t, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "0.00,0.31,0.59,0.81,0.95,\n" {
		t.Errorf("unexpected wave output: %q", out)
	}
}

func TestRunTruncation(t *testing.T) {
	opts := Options{
		Path:   writeInput(t, []byte("0123456789")),
		Cols:   10,
		Len:    5,
		Format: format.LowerHex,
		Color:  ColorOff,
		Prefix: true,
	}
	out, err := captureRun(t, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasSuffix(out, "   bytes: 5\n") {
		t.Errorf("expected 5-byte summary, got %q", out)
	}
}

func TestRunUnsupportedFormat(t *testing.T) {
	opts := Options{
		Path:   writeInput(t, []byte{0x42}),
		Cols:   10,
		Format: format.Pointer,
		Color:  ColorOff,
		Prefix: true,
	}
	_, err := captureRun(t, opts)
	if !errors.Is(err, format.ErrUnimplemented) {
		t.Errorf("expected ErrUnimplemented, got %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	opts := Options{
		Path:   filepath.Join(t.TempDir(), "missing"),
		Cols:   10,
		Format: format.LowerHex,
	}
	_, err := captureRun(t, opts)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestOpenInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte{0x01, 0x02}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	in, err := openInput(path)
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	defer in.Close()

	buf := make([]byte, 2)
	if _, err := in.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if buf[0] != 0x01 || buf[1] != 0x02 {
		t.Errorf("unexpected content: %v", buf)
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	_, err := openInput(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestOpenInputDirectory(t *testing.T) {
	_, err := openInput(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory input")
	}
}

func TestOpenInputStdinNotTerminal(t *testing.T) {
	// Test processes run without a terminal on stdin, so the empty
	// path resolves to stdin rather than the no-input error.
	in, err := openInput("")
	if err != nil {
		t.Fatalf("openInput: %v", err)
	}
	in.Close()
}
