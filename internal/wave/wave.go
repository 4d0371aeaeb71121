// Package wave generates a synthetic sine sequence. It shares only the
// CLI entry point with the dump path, not the data model.
package wave

import (
	"fmt"
	"io"
	"math"
)

// Write emits length values of sin((y/length) * π/2) for y in
// [0, length), each formatted to places decimals and followed by a
// comma. A line break is inserted after every 10th value and once at
// the end. A zero length produces no values, only the trailing line
// break; the loop never runs, so no division occurs.
func Write(w io.Writer, length uint64, places int) error {
	for y := uint64(0); y < length; y++ {
		x := math.Sin((float64(y) / float64(length)) * math.Pi / 2)
		if _, err := fmt.Fprintf(w, "%.*f,", places, x); err != nil {
			return err
		}
		if y%10 == 9 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
