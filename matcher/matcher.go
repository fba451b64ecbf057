// Package matcher implements the composable PEG-style grammar: a small
// set of matcher variants sharing one match(ctx) -> bool contract,
// dispatched through a tagged union rather than virtual calls.
package matcher

import "github.com/eyelash/prism/engine"

type kind uint8

const (
	kindAnyByte kind = iota
	kindByte
	kindRange
	kindLiteral
	kindSequence
	kindChoice
	kindRepeat
	kindAnd
	kindNot
	kindHighlight
	kindReference
)

// Matcher is one node of a grammar tree. Its behavior is selected by kind;
// only the fields relevant to that kind are populated. Matchers are
// immutable once built (Reference/Recursive aside, which are resolved
// exactly once before use) and own their children.
type Matcher struct {
	kind kind

	b      byte // kindByte
	lo, hi byte // kindRange
	lit    []byte // kindLiteral

	children  []*Matcher // kindSequence, kindChoice
	tailAlway []bool     // kindSequence: tailAlway[i] = children[i+1:] always succeed

	child *Matcher // kindRepeat, kindAnd, kindNot, kindHighlight
	min   int      // kindRepeat
	max   int      // kindRepeat (0 = unbounded)

	style engine.Style // kindHighlight

	target *Matcher // kindReference: nil until Define

	alwaysComputed bool
	always         bool
	badRepeatBody  bool // set during validation if this Repeat's body always_succeeds
}

// AnyByte consumes one byte if it is non-NUL; fails at end-of-stream.
func AnyByte() *Matcher { return &Matcher{kind: kindAnyByte} }

// Byte matches exactly the byte c.
func Byte(c byte) *Matcher { return &Matcher{kind: kindByte, b: c} }

// Range matches one byte b with lo <= b <= hi.
func Range(lo, hi byte) *Matcher { return &Matcher{kind: kindRange, lo: lo, hi: hi} }

// Literal matches the byte sequence s exactly, backtracking fully on the
// first mismatch. An empty literal always succeeds.
func Literal(s string) *Matcher { return &Matcher{kind: kindLiteral, lit: []byte(s)} }

// Sequence runs its children in order, restoring full entry state on any
// failure.
func Sequence(ms ...*Matcher) *Matcher { return &Matcher{kind: kindSequence, children: ms} }

// Choice tries each child in turn against the entry state, returning on
// the first success.
func Choice(ms ...*Matcher) *Matcher { return &Matcher{kind: kindChoice, children: ms} }

// Repeat runs m at least min and at most max times (unbounded if max is
// 0). It is a static error for m to be always_succeeds; Build rejects
// such grammars.
func Repeat(m *Matcher, min, max int) *Matcher {
	return &Matcher{kind: kindRepeat, child: m, min: min, max: max}
}

// Optional is Repeat(m, 0, 1): it always succeeds.
func Optional(m *Matcher) *Matcher { return Repeat(m, 0, 1) }

// OneOrMore runs m once, then any number of further times.
func OneOrMore(m *Matcher) *Matcher { return Sequence(m, Repeat(m, 0, 0)) }

// And is positive lookahead: runs m, restores state, returns m's verdict.
func And(m *Matcher) *Matcher { return &Matcher{kind: kindAnd, child: m} }

// Not is negative lookahead: runs m, restores state, returns the inverse.
func Not(m *Matcher) *Matcher { return &Matcher{kind: kindNot, child: m} }

// Highlight sets the span style to style for the duration of m, restoring
// the previous style on exit. If m fails, the entry state is restored and
// no span is emitted.
func Highlight(style engine.Style, m *Matcher) *Matcher {
	return &Matcher{kind: kindHighlight, style: style, child: m}
}

// But consumes one byte iff m does not match: Sequence(Not(m), AnyByte).
func But(m *Matcher) *Matcher { return Sequence(Not(m), AnyByte()) }

// End matches only at end-of-stream (the NUL sentinel).
func End() *Matcher { return Not(AnyByte()) }

// EndsWith matches any run of bytes terminated by m:
// Sequence(Repeat(But(Sequence(m, End))), m, End).
func EndsWith(m *Matcher) *Matcher {
	return Sequence(Repeat(But(Sequence(m, End())), 0, 0), m, End())
}

// Declare creates an unresolved rule reference; Define must be called on
// it exactly once (directly, or via Recursive) before the grammar is
// built. This is how mutually- and self-recursive rules are expressed
// without back-pointers: the placeholder is a plain value, resolved by
// assignment rather than by an ownership cycle.
func Declare() *Matcher { return &Matcher{kind: kindReference} }

// Define resolves a rule previously created with Declare.
func Define(rule *Matcher, body *Matcher) {
	if rule.kind != kindReference {
		panic("matcher: Define called on a matcher that was not created with Declare")
	}
	rule.target = body
}

// Recursive builds the fixed point of f: a matcher that can refer to
// itself, used for balanced constructs like nested block comments.
func Recursive(f func(self *Matcher) *Matcher) *Matcher {
	self := Declare()
	Define(self, f(self))
	return self
}

// Match runs the matcher against ctx. A success leaves the cursor and
// emitter at the position reached; a failure restores them to the state
// at entry.
func (m *Matcher) Match(ctx *engine.ParseContext) bool {
	switch m.kind {
	case kindAnyByte:
		if ctx.Peek() == 0 {
			return false
		}
		ctx.Advance()
		return true

	case kindByte:
		if ctx.Peek() != m.b {
			return false
		}
		ctx.Advance()
		return true

	case kindRange:
		c := ctx.Peek()
		if c < m.lo || c > m.hi {
			return false
		}
		ctx.Advance()
		return true

	case kindLiteral:
		save := ctx.Save()
		for _, c := range m.lit {
			if ctx.Peek() != c {
				ctx.Restore(save)
				return false
			}
			ctx.Advance()
		}
		return true

	case kindSequence:
		save := ctx.Save()
		for i, c := range m.children {
			// Falls back to false (no checkpointing) if Build has not
			// yet populated tailAlway; Build always populates it before
			// a grammar is used.
			gate := false
			if i < len(m.tailAlway) {
				gate = m.tailAlway[i]
			}
			ok := ctx.WithCheckpointGate(gate, func() bool { return c.Match(ctx) })
			if !ok {
				ctx.Restore(save)
				return false
			}
		}
		return true

	case kindChoice:
		save := ctx.Save()
		for _, c := range m.children {
			if c.Match(ctx) {
				return true
			}
			ctx.Restore(save)
		}
		return false

	case kindRepeat:
		return m.matchRepeat(ctx)

	case kindAnd:
		save := ctx.Save()
		ok := ctx.WithCheckpointGate(false, func() bool { return m.child.Match(ctx) })
		ctx.Restore(save)
		return ok

	case kindNot:
		save := ctx.Save()
		ok := ctx.WithCheckpointGate(false, func() bool { return m.child.Match(ctx) })
		ctx.Restore(save)
		return !ok

	case kindHighlight:
		save := ctx.Save()
		old := ctx.ChangeStyle(m.style)
		if !m.child.Match(ctx) {
			ctx.Restore(save)
			return false
		}
		ctx.ChangeStyle(old)
		return true

	case kindReference:
		if m.target == nil {
			panic("matcher: undefined rule referenced (Declare without matching Define)")
		}
		return m.target.Match(ctx)
	}
	panic("matcher: unreachable matcher kind")
}

// matchRepeat is the incremental repetition driver: the only place
// checkpoints are read or written.
func (m *Matcher) matchRepeat(ctx *engine.ParseContext) bool {
	save := ctx.Save()
	count := 0
	for count < m.min {
		if !m.child.Match(ctx) {
			ctx.Restore(save)
			return false
		}
		count++
	}

	canCheckpoint := ctx.CheckpointGate() && ctx.CurrentStyle() == engine.StyleDefault
	if !canCheckpoint {
		for m.max == 0 || count < m.max {
			if !m.child.Match(ctx) {
				break
			}
			count++
		}
		return true
	}

	mark := ctx.EnterScope()
	ctx.SkipToCheckpoint()
	for ctx.BeforeWindowEnd() && (m.max == 0 || count < m.max) {
		if !m.child.Match(ctx) {
			break
		}
		count++
		ctx.AddCheckpoint()
	}
	ctx.LeaveScope(mark)
	return true
}
