// Package page provides the chunked data model for hex output.
// A byte stream is read once and organized into a Page of fixed-width
// Lines; renderers only ever read the result.
package page

// Line is a single row of bytes within a Page. It holds up to the
// configured column width of raw bytes plus its offset within the page
// (the count of bytes emitted before it). A Line is append-only while
// being filled and is never mutated after it is attached to a Page.
type Line struct {
	// Offset is the position of this line's first byte within the page.
	Offset uint64
	// Body holds the raw byte values for this line.
	Body []byte
	// Bytes is the number of bytes in this line, maintained incrementally.
	Bytes uint64
}

// NewLine returns an empty Line.
func NewLine() *Line {
	return &Line{Body: []byte{}}
}

// Page is the full chunked representation of one input stream: an
// ordered sequence of Lines plus a running byte total. A Page always
// contains at least one Line (possibly empty), so renderers can assume
// a non-empty body even for zero-byte input.
type Page struct {
	// Offset is the starting offset of the page.
	Offset uint64
	// Body is the ordered sequence of lines forming the page.
	Body []*Line
	// Bytes is the total byte count across all lines.
	Bytes uint64
}

// NewPage returns an empty Page.
func NewPage() *Page {
	return &Page{Body: []*Line{}}
}
