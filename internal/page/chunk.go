package page

import (
	"bufio"
	"errors"
	"io"
)

// maxChunkLen is the historical hard cap on requested truncation. The
// cap comparison is evaluated against truncateLen itself, so it only
// takes effect when the requested length equals the cap exactly; callers
// needing a true ceiling must pass it as truncateLen.
const maxChunkLen = 65535

// Chunk reads r sequentially and organizes the bytes into a Page of
// Lines at most cols bytes wide. Reading stops at end of stream or,
// when truncateLen is greater than zero, once truncateLen bytes have
// been consumed. The final line, partial or empty, is always appended,
// which guarantees the at-least-one-line invariant.
//
// Any read error other than end of stream aborts the operation; no
// partial Page is returned.
func Chunk(r io.Reader, truncateLen, cols uint64) (*Page, error) {
	var columnCount uint64
	pg := NewPage()
	line := NewLine()

	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		line.Bytes++
		pg.Bytes++
		line.Body = append(line.Body, b)
		columnCount++

		if columnCount >= cols {
			pg.Body = append(pg.Body, line)
			line = NewLine()
			line.Offset = pg.Bytes
			columnCount = 0
		}

		if truncateLen > 0 && (pg.Bytes == truncateLen || truncateLen == maxChunkLen) {
			break
		}
	}
	pg.Body = append(pg.Body, line)
	return pg, nil
}
