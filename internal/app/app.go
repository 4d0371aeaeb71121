// Package app wires the resolved command-line configuration to the
// chunker and renderers and manages input selection. It owns no
// rendering logic of its own.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/hexvue/hv/internal/format"
	"github.com/hexvue/hv/internal/page"
	"github.com/hexvue/hv/internal/render"
	"github.com/hexvue/hv/internal/wave"
)

// ErrNoInput indicates that no file path was given and stdin is an
// interactive terminal with nothing piped in.
var ErrNoInput = errors.New("no input provided, run with --help for list of options")

// Options is the fully resolved configuration handed in by the CLI
// layer. The core consumes it as-is; no environment probing happens
// past this point.
type Options struct {
	// Path is the input file; empty means read stdin.
	Path string
	// Cols is the column width in bytes per row.
	Cols uint64
	// Len truncates input after this many bytes (0 = unlimited).
	Len uint64
	// Format selects the numeric base for dump tokens.
	Format format.Format
	// Color is the presentation policy for terminal colorization.
	Color ColorMode
	// Prefix includes numeric base markers in dump tokens.
	Prefix bool
	// ArrayLang switches to array-literal output for the given
	// language code; empty selects dump mode.
	ArrayLang string
	// WaveLen is the wave sequence length; only meaningful when
	// WaveMode is set.
	WaveLen uint64
	// WaveMode switches entirely to the wave generator.
	WaveMode bool
	// Places is the number of decimal places for wave values.
	Places int
}

// Run executes one invocation: wave mode if requested, otherwise chunk
// the input and hand the page to the array or dump renderer. Output
// goes to stdout, which the process writes alone, in one pass.
func Run(opts Options) error {
	stdout := os.Stdout

	if opts.WaveMode {
		return wave.Write(stdout, opts.WaveLen, opts.Places)
	}

	in, err := openInput(opts.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	pg, err := page.Chunk(in, opts.Len, opts.Cols)
	if err != nil {
		return err
	}

	if opts.ArrayLang != "" {
		return render.Array(stdout, pg, opts.ArrayLang)
	}

	return render.Dump(stdout, pg, render.Config{
		Cols:     opts.Cols,
		Format:   opts.Format,
		Prefix:   opts.Prefix,
		Colorize: opts.Color.Enabled(),
	})
}

// openInput opens the input stream: the named file when a path is
// given, stdin otherwise. Reading stdin requires piped or redirected
// input; an interactive terminal with no file is an error rather than
// a silent hang.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, ErrNoInput
		}
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s: is a directory", path)
	}
	return f, nil
}
