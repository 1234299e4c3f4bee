package scan

import "strings"

// Cursor is a read position inside a bounded piece of text. It is a value
// type: every method leaves the receiver alone and returns a new cursor.
type Cursor struct {
	text string
	pos  int
	end  int
}

// NewCursor returns a cursor at the start of text, bounded by its length.
func NewCursor(text string) Cursor {
	return Cursor{text: text, end: len(text)}
}

// Pos returns the current offset.
func (c Cursor) Pos() int { return c.pos }

// End returns the bound of the cursor.
func (c Cursor) End() int { return c.end }

// Done reports whether the cursor reached its bound.
func (c Cursor) Done() bool { return c.pos >= c.end }

// Text returns the bounded text.
func (c Cursor) Text() string { return c.text[:c.end] }

// Seek moves to an absolute offset, clamped to the bounds.
func (c Cursor) Seek(pos int) Cursor {
	switch {
	case pos < 0:
		pos = 0
	case pos > c.end:
		pos = c.end
	}
	c.pos = pos
	return c
}

// Advance moves n bytes forward.
func (c Cursor) Advance(n int) Cursor {
	return c.Seek(c.pos + n)
}

// Limit returns a cursor whose bound is end, clamped to the current bound.
func (c Cursor) Limit(end int) Cursor {
	if end < c.end && end >= 0 {
		c.end = end
	}
	if c.pos > c.end {
		c.pos = c.end
	}
	return c
}

// Slice returns the bounded text between two offsets, clamped.
func (c Cursor) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > c.end {
		to = c.end
	}
	if from >= to {
		return ""
	}
	return c.text[from:to]
}

// Snippet returns up to n bytes of text from the current position.
func (c Cursor) Snippet(n int) string {
	return c.Slice(c.pos, c.pos+n)
}

// Find moves past the next occurrence of marker.
func (c Cursor) Find(marker string) (Cursor, bool) {
	p := FindToken(c.Text(), marker, c.pos)
	if p == NotFound {
		return c, false
	}
	return c.Seek(p), true
}

// Index returns the offset of the next occurrence of s, or NotFound.
func (c Cursor) Index(s string) int {
	p := FindToken(c.Text(), s, c.pos)
	if p == NotFound {
		return NotFound
	}
	return p - len(s)
}

// LastIndex returns the offset of the last occurrence of s lying entirely
// between from and the current position, or NotFound.
func (c Cursor) LastIndex(s string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > c.pos {
		return NotFound
	}
	i := strings.LastIndex(c.text[from:c.pos], s)
	if i < 0 {
		return NotFound
	}
	return from + i
}

// Value extracts the next start/end delimited value and returns a cursor
// positioned on the end delimiter.
func (c Cursor) Value(start, end string) (Cursor, string, bool) {
	p, v, ok := StringValue(c.Text(), c.pos, start, end)
	if !ok {
		return c, "", false
	}
	return c.Seek(p), v, true
}

// Scope returns the balanced text from the current position, see ScopedText.
func (c Cursor) Scope(open, close byte, level int) string {
	return ScopedText(c.Text(), c.pos, open, close, level)
}
