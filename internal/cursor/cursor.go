package cursor

import "bytes"

// Cursor is a consuming view over a single input fragment. It never copies:
// every returned slice aliases the original data, and consumed bytes are cut
// off by advancing the view.
type Cursor struct {
	data []byte
}

func New(data []byte) Cursor {
	return Cursor{data: data}
}

// Scan looks for the delimiter. If found, the bytes preceding it are
// returned and both them and the delimiter itself are consumed. Otherwise,
// nothing is consumed.
func (c *Cursor) Scan(delim byte) (segment []byte, found bool) {
	boundary := bytes.IndexByte(c.data, delim)
	if boundary == -1 {
		return nil, false
	}

	segment = c.data[:boundary]
	c.data = c.data[boundary+1:]

	return segment, true
}

// Take consumes at most n bytes, possibly less if the view is shorter.
func (c *Cursor) Take(n int) []byte {
	if n > len(c.data) {
		n = len(c.data)
	}

	taken := c.data[:n]
	c.data = c.data[n:]

	return taken
}

// Next consumes and returns a single byte. Must not be called on an empty
// cursor.
func (c *Cursor) Next() byte {
	char := c.data[0]
	c.data = c.data[1:]

	return char
}

// Peek returns the next byte without consuming it. Must not be called on an
// empty cursor.
func (c *Cursor) Peek() byte {
	return c.data[0]
}

// Flush consumes and returns everything left in the view.
func (c *Cursor) Flush() []byte {
	rest := c.data
	c.data = nil

	return rest
}

// Rest returns everything left in the view without consuming it.
func (c *Cursor) Rest() []byte {
	return c.data
}

func (c *Cursor) Len() int {
	return len(c.data)
}

func (c *Cursor) Empty() bool {
	return len(c.data) == 0
}
