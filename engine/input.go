// Package engine implements the parse context: the cursor over a
// (possibly chunked) byte input, the style-span emitter, and the
// save/restore discipline grammar matchers rely on to backtrack without
// leaking side effects.
package engine

// ChunkToken opaquely identifies a chunk returned by an Input, so that
// GetNextChunk can be asked for the chunk that follows it without the
// engine needing to know anything about how chunks are stored.
type ChunkToken any

// Chunk is a contiguous run of bytes starting at Base within the overall
// input.
type Chunk struct {
	Token ChunkToken
	Data  []byte
	Base  int
}

// Input is a random-access byte stream over possibly chunked storage.
// Reads past end-of-stream are expected to yield a NUL sentinel byte via
// the Cursor built on top of it, not an error: there are no invalid
// inputs in this engine.
type Input interface {
	// GetChunk returns the chunk containing pos.
	GetChunk(pos int) Chunk
	// GetNextChunk returns the chunk immediately following one
	// previously returned for this Input, identified by its token.
	GetNextChunk(tok ChunkToken) Chunk
}

// StringInput is a single-chunk Input over an in-memory byte slice,
// covering the common case of a buffer that is not otherwise chunked.
type StringInput struct {
	data []byte
}

// NewStringInput wraps s as a single-chunk Input.
func NewStringInput(s []byte) *StringInput {
	return &StringInput{data: s}
}

func (in *StringInput) GetChunk(pos int) Chunk {
	return Chunk{Token: in, Data: in.data, Base: 0}
}

func (in *StringInput) GetNextChunk(tok ChunkToken) Chunk {
	return Chunk{Token: nil, Data: nil, Base: len(in.data)}
}
