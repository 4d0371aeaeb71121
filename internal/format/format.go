// Package format renders single bytes in a selectable numeric base and
// formats dump offsets. Four bases are implemented; the remaining
// variants are recognized but deterministically fail with a typed
// unimplemented error so callers can surface them as configuration
// errors.
package format

import "fmt"

// Format selects the numeric base used to render each byte.
type Format int

// Format variants. Octal, LowerHex, UpperHex and Binary carry rendering
// rules; Pointer, LowerExp, UpperExp and Unknown are placeholders that
// fail when rendering is attempted.
const (
	Octal Format = iota
	LowerHex
	UpperHex
	Pointer
	Binary
	LowerExp
	UpperExp
	Unknown
)

// String returns the variant name.
func (f Format) String() string {
	switch f {
	case Octal:
		return "Octal"
	case LowerHex:
		return "LowerHex"
	case UpperHex:
		return "UpperHex"
	case Pointer:
		return "Pointer"
	case Binary:
		return "Binary"
	case LowerExp:
		return "LowerExp"
	case UpperExp:
		return "UpperExp"
	default:
		return "Unknown"
	}
}

// Parse maps a format flag letter to its Format. Unrecognized letters
// map to Unknown, which fails at render time.
func Parse(s string) Format {
	switch s {
	case "o":
		return Octal
	case "x":
		return LowerHex
	case "X":
		return UpperHex
	case "p":
		return Pointer
	case "b":
		return Binary
	case "e":
		return LowerExp
	case "E":
		return UpperExp
	default:
		return Unknown
	}
}

// Render formats a byte in the receiver's base. Numeric width is always
// derived from the fixed 8-bit byte width: octal is 4 digits, hex 2,
// binary 8, each zero padded. With prefix the base marker (0o, 0x, 0b)
// is prepended. Unimplemented variants return an UnimplementedError.
func (f Format) Render(b byte, prefix bool) (string, error) {
	if prefix {
		switch f {
		case Octal:
			return fmt.Sprintf("0o%04o", b), nil
		case LowerHex:
			return fmt.Sprintf("0x%02x", b), nil
		case UpperHex:
			return fmt.Sprintf("0x%02X", b), nil
		case Binary:
			return fmt.Sprintf("0b%08b", b), nil
		default:
			return "", &UnimplementedError{Format: f}
		}
	}
	switch f {
	case Octal:
		return fmt.Sprintf("%04o", b), nil
	case LowerHex:
		return fmt.Sprintf("%02x", b), nil
	case UpperHex:
		return fmt.Sprintf("%02X", b), nil
	case Binary:
		return fmt.Sprintf("%08b", b), nil
	default:
		return "", &UnimplementedError{Format: f}
	}
}

// Offset formats a dump address: 0x prefix and at least six lowercase
// hex digits, zero padded.
func Offset(n uint64) string {
	return fmt.Sprintf("0x%06x", n)
}
