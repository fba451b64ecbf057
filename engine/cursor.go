package engine

// cursor is a position into an Input, represented as an absolute offset
// plus a cached chunk and intra-chunk index, so that sequential advances
// (the overwhelmingly common case) cost O(1) without re-consulting the
// Input. Arbitrary seeks fall back to Input.GetChunk.
type cursor struct {
	input Input
	chunk Chunk
	pos   int
}

func (c *cursor) reset(input Input) {
	c.input = input
	c.pos = 0
	c.chunk = input.GetChunk(0)
}

func (c *cursor) inChunk(p int) bool {
	return p >= c.chunk.Base && p < c.chunk.Base+len(c.chunk.Data)
}

func (c *cursor) loadChunkFor(p int) {
	if c.inChunk(p) {
		return
	}
	if p == c.chunk.Base+len(c.chunk.Data) {
		c.chunk = c.input.GetNextChunk(c.chunk.Token)
		return
	}
	c.chunk = c.input.GetChunk(p)
}

// Peek returns the byte at the cursor's current offset, or NUL past the
// end of the input.
func (c *cursor) Peek() byte {
	c.loadChunkFor(c.pos)
	i := c.pos - c.chunk.Base
	if i < 0 || i >= len(c.chunk.Data) {
		return 0
	}
	return c.chunk.Data[i]
}

// Advance moves the cursor forward by one byte.
func (c *cursor) Advance() {
	c.pos++
}

// Offset returns the cursor's current absolute position.
func (c *cursor) Offset() int { return c.pos }

// Seek repositions the cursor to an arbitrary absolute offset. After
// Seek(p), Offset() == p.
func (c *cursor) Seek(p int) {
	c.pos = p
}
