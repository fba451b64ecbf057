package engine

import "github.com/eyelash/prism/cache"

// SaveState is a ParseContext save point: cursor offset plus emitter
// state. Every matcher that may backtrack takes one of these on entry
// and restores it on failure.
type SaveState struct {
	pos     int
	emitter emitterState
}

// ScopeMark is the token EnterScope returns; pass it to LeaveScope to
// restore the previous cache scope.
type ScopeMark struct {
	prev *cache.Node
}

// ParseContext couples the cursor, span emitter, viewport, cache cursor
// and high-water mark for a single highlight query. It is the sole
// mutable state during a query and does not outlive it.
type ParseContext struct {
	cur    cursor
	em     spanEmitter
	arena  *cache.Arena
	node   *cache.Node
	maxPos int

	// checkpointGate is AND-ed down through Sequence (only when the
	// remainder of the sequence always_succeeds) and forced false inside
	// And/Not; it answers "could something after this position still
	// force a rewind across it within this query".
	checkpointGate bool
}

// New constructs a ParseContext over input, rooted at root, for the
// viewport [ws, we).
func New(input Input, root *cache.Node, arena *cache.Arena, ws, we int) *ParseContext {
	ctx := &ParseContext{
		arena:          arena,
		node:           root,
		checkpointGate: true,
	}
	ctx.cur.reset(input)
	ctx.em.win = window{ws: ws, we: we}
	return ctx
}

// NewNoCheckpoints builds a ParseContext like New, but with checkpointing
// disabled for the whole query. Language-predicate matching (§4.6) reuses
// the engine this way: file-name matching is a one-off, single-chunk
// match where a cache would never pay for itself.
func NewNoCheckpoints(input Input, ws, we int) *ParseContext {
	ctx := New(input, &cache.Node{}, nil, ws, we)
	ctx.checkpointGate = false
	return ctx
}

// Peek returns the byte at the cursor's current position.
func (ctx *ParseContext) Peek() byte { return ctx.cur.Peek() }

// Advance moves the cursor forward one byte.
func (ctx *ParseContext) Advance() { ctx.cur.Advance() }

// Offset returns the cursor's current absolute position.
func (ctx *ParseContext) Offset() int { return ctx.cur.Offset() }

// BeforeWindowEnd reports whether the cursor is still short of we.
func (ctx *ParseContext) BeforeWindowEnd() bool { return ctx.cur.Offset() < ctx.em.win.we }

// Save captures cursor and emitter state for a later Restore.
func (ctx *ParseContext) Save() SaveState {
	return SaveState{pos: ctx.cur.Offset(), emitter: ctx.em.save()}
}

// Restore rewinds the cursor and truncates the emitted-span list back to
// the save point, updating the contamination bound to the offset being
// abandoned.
func (ctx *ParseContext) Restore(s SaveState) {
	if abandoned := ctx.cur.Offset(); abandoned > ctx.maxPos {
		ctx.maxPos = abandoned
	}
	ctx.cur.Seek(s.pos)
	ctx.em.restore(s.emitter)
}

// ChangeStyle flushes the current run and installs newStyle, returning
// the style that was active before the call.
func (ctx *ParseContext) ChangeStyle(newStyle Style) Style {
	return ctx.em.changeStyle(ctx.cur.Offset(), newStyle)
}

// CurrentStyle returns the style presently active in the emitter.
func (ctx *ParseContext) CurrentStyle() Style { return ctx.em.style }

// Spans returns the spans accumulated so far.
func (ctx *ParseContext) Spans() []Span { return ctx.em.spans }

// CheckpointGate reports whether the calling context structurally permits
// checkpointing at the current position (see Repeat's gating rule in
// package matcher). It says nothing about the active style; callers must
// additionally require CurrentStyle() == StyleDefault.
func (ctx *ParseContext) CheckpointGate() bool { return ctx.checkpointGate }

// WithCheckpointGate runs fn with the checkpoint gate temporarily set to
// gate, restoring the previous value afterward. Sequence uses this to AND
// the gate with "does the remaining tail always succeed"; And/Not use it
// to force the gate closed for their (always-discarded) sub-match.
func (ctx *ParseContext) WithCheckpointGate(gate bool, fn func() bool) bool {
	prev := ctx.checkpointGate
	ctx.checkpointGate = prev && gate
	ok := fn()
	ctx.checkpointGate = prev
	return ok
}

// EnterScope descends into (creating if necessary) the child cache scope
// for a repetition entered at the current offset, returning a mark to
// restore the previous scope with LeaveScope.
func (ctx *ParseContext) EnterScope() ScopeMark {
	prev := ctx.node
	pos := ctx.cur.Offset()
	mp := ctx.maxPos
	if pos > mp {
		mp = pos
	}
	ctx.node = prev.FindOrAddChild(pos, mp, ctx.arena)
	return ScopeMark{prev: prev}
}

// LeaveScope restores the cache scope active before the matching
// EnterScope call.
func (ctx *ParseContext) LeaveScope(mark ScopeMark) {
	ctx.node = mark.prev
}

// SkipToCheckpoint seeks the cursor to the greatest checkpoint at or
// before the viewport start recorded in the current scope, seeding
// maxPos with the checkpoint's own contamination bound.
func (ctx *ParseContext) SkipToCheckpoint() {
	cp := ctx.node.FindCheckpoint(ctx.em.win.ws)
	ctx.cur.Seek(cp.Pos)
	if cp.MaxPos > ctx.maxPos {
		ctx.maxPos = cp.MaxPos
	}
}

// AddCheckpoint records a checkpoint at the cursor's current position in
// the current scope.
func (ctx *ParseContext) AddCheckpoint() {
	pos := ctx.cur.Offset()
	mp := ctx.maxPos
	if pos > mp {
		mp = pos
	}
	ctx.node.AddCheckpoint(pos, mp)
}
