// Package directive parses the delimited directive blobs that drive a
// regeneration run: the plugin-selection blob and the extra-substitution
// blob. Both share the entry/field grammar and are scanned with the
// same cursor.
package directive

import "bytes"

// Cursor is a monotonically advancing scanner over a byte buffer.
// Yielded slices alias the underlying buffer; the cursor never copies.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Done reports whether the cursor has reached the end of the buffer.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.buf)
}

// PeekUntil returns the slice from the cursor up to (excluding) the
// next occurrence of delim without advancing. The second return is
// false when delim does not occur again.
func (c *Cursor) PeekUntil(delim byte) ([]byte, bool) {
	i := bytes.IndexByte(c.buf[c.pos:], delim)
	if i < 0 {
		return nil, false
	}
	return c.buf[c.pos : c.pos+i], true
}

// NextUntil returns the slice from the cursor up to (excluding) the
// next occurrence of delim and advances the cursor past the delimiter.
// The second return is false when delim does not occur again, in which
// case the cursor does not move.
func (c *Cursor) NextUntil(delim byte) ([]byte, bool) {
	s, ok := c.PeekUntil(delim)
	if !ok {
		return nil, false
	}
	c.pos += len(s) + 1
	return s, true
}

// Rest returns the remaining slice and advances the cursor to the end.
// The second return is false when the cursor is already at the end.
func (c *Cursor) Rest() ([]byte, bool) {
	if c.Done() {
		return nil, false
	}
	s := c.buf[c.pos:]
	c.pos = len(c.buf)
	return s, true
}
