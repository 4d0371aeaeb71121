package render

import "github.com/fatih/color"

// byteColor maps a byte value to its 256-color terminal palette index.
// A zero byte maps to 0x16 so it stays visible against common terminal
// backgrounds; every other value maps to itself.
func byteColor(b byte) uint8 {
	if b < 1 {
		return 0x16
	}
	return b
}

// paint wraps s in an SGR 38;5;N foreground sequence for the palette
// index of b. Color output is forced on the instance so an explicit
// colorize request wins even when stdout is not a terminal.
func paint(s string, b byte) string {
	c := color.New(color.Attribute(38), color.Attribute(5), color.Attribute(byteColor(b)))
	c.EnableColor()
	return c.Sprint(s)
}
