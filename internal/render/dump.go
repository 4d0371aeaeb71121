// Package render turns a chunked Page into its final text forms: the
// classic offset/hex/ASCII dump or a source-code array literal. The two
// are mutually exclusive for a given invocation; renderers only read
// the Page.
package render

import (
	"fmt"
	"io"

	"github.com/hexvue/hv/internal/format"
	"github.com/hexvue/hv/internal/page"
)

// Config carries the resolved rendering configuration for dump mode.
type Config struct {
	// Cols is the number of bytes rendered per row.
	Cols uint64
	// Format selects the numeric base for byte tokens.
	Format format.Format
	// Prefix includes the numeric base marker (0x, 0o, 0b) in tokens.
	Prefix bool
	// Colorize wraps tokens in terminal palette escapes.
	Colorize bool
}

// tokenWidth is the rendered width of one byte token plus its trailing
// space in the default format ("0xNN "); short rows are padded by this
// much per missing byte so the ASCII column stays aligned.
const tokenWidth = 5

// Dump writes the page as an offset/hex/ASCII triptych followed by a
// byte-count summary. The offset column is a running counter of bytes
// emitted so far. An unsupported numeric format aborts with the
// formatter's error; callers should treat that as a configuration
// error.
func Dump(w io.Writer, p *page.Page, cfg Config) error {
	var offset uint64
	for _, line := range p.Body {
		if _, err := fmt.Fprintf(w, "%s: ", format.Offset(offset)); err != nil {
			return err
		}

		ascii := make([]byte, 0, len(line.Body))
		for _, b := range line.Body {
			offset++
			tok, err := cfg.Format.Render(b, cfg.Prefix)
			if err != nil {
				return err
			}
			if cfg.Colorize {
				tok = paint(tok, b)
			}
			if _, err := fmt.Fprintf(w, "%s ", tok); err != nil {
				return err
			}
			ascii = appendASCII(ascii, b, cfg.Colorize)
		}

		if line.Bytes < cfg.Cols {
			pad := int(tokenWidth * (cfg.Cols - line.Bytes))
			if _, err := fmt.Fprintf(w, "%*s", pad, ""); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s\n", ascii); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "   bytes: %d\n", p.Bytes)
	return err
}

// appendASCII appends the printable rendering of b: the character
// itself for bytes 32-126, a dot otherwise, colorized with the same
// palette rule as the hex column when requested.
func appendASCII(dst []byte, b byte, colorize bool) []byte {
	ch := byte('.')
	if b > 31 && b < 127 {
		ch = b
	}
	if colorize {
		return append(dst, paint(string(ch), b)...)
	}
	return append(dst, ch)
}
