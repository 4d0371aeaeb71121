package render

import (
	"fmt"
	"io"

	"github.com/hexvue/hv/internal/format"
	"github.com/hexvue/hv/internal/page"
)

// unknownLang is emitted in place of the opening and closing delimiters
// for an unrecognized language code. This is a deliberate soft fail:
// the diagnostic lands in the output stream instead of aborting the
// run.
const unknownLang = "unknown array format"

// arrayHeader returns the opening declaration line for lang, with the
// total byte count interpolated where the target syntax fixes the array
// size.
func arrayHeader(lang string, bytes uint64) string {
	switch lang {
	case "r":
		return fmt.Sprintf("let ARRAY: [u8; %d] = [", bytes)
	case "c":
		return fmt.Sprintf("unsigned char ARRAY[%d] = {", bytes)
	case "g":
		return fmt.Sprintf("a := [%d]byte{", bytes)
	case "p":
		return "a = ["
	case "k":
		return "val a = byteArrayOf("
	case "j":
		return "byte[] a = new byte[]{"
	case "s":
		return "let a: [UInt8] = ["
	case "f":
		return "let a = [|"
	default:
		return unknownLang
	}
}

// arrayFooter returns the closing delimiter line for lang.
func arrayFooter(lang string) string {
	switch lang {
	case "r":
		return "];"
	case "c", "j":
		return "};"
	case "g":
		return "}"
	case "p", "s":
		return "]"
	case "k":
		return ")"
	case "f":
		return "|]"
	default:
		return unknownLang
	}
}

// Array writes the page as a source-code array literal for the given
// language code. Bytes are always rendered as prefixed lowercase hex
// regardless of any configured format, since the target language needs
// a valid literal token. The final byte omits its trailing separator,
// except in the Go variant, which keeps the trailing comma its
// composite-literal syntax tolerates.
func Array(w io.Writer, p *page.Page, lang string) error {
	if _, err := fmt.Fprintln(w, arrayHeader(lang, p.Bytes)); err != nil {
		return err
	}

	var i uint64
	for _, line := range p.Body {
		if _, err := fmt.Fprint(w, "    "); err != nil {
			return err
		}
		for _, b := range line.Body {
			i++
			tok, err := format.LowerHex.Render(b, true)
			if err != nil {
				return err
			}
			last := i == p.Bytes && lang != "g"
			switch {
			case last && lang == "f":
				_, err = fmt.Fprintf(w, "%suy", tok)
			case last:
				_, err = fmt.Fprint(w, tok)
			case lang == "f":
				_, err = fmt.Fprintf(w, "%suy; ", tok)
			default:
				_, err = fmt.Fprintf(w, "%s, ", tok)
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, arrayFooter(lang))
	return err
}
