package matcher

import (
	"testing"

	"github.com/eyelash/prism/cache"
	"github.com/eyelash/prism/engine"
)

func newCtx(s string, ws, we int) *engine.ParseContext {
	c := cache.New()
	return engine.New(engine.NewStringInput([]byte(s)), c.Root(), c.Arena(), ws, we)
}

func TestPrimitiveMatchers(t *testing.T) {
	tests := []struct {
		name  string
		m     *Matcher
		input string
		want  bool
		atEnd int
	}{
		{"AnyByte matches any non-empty byte", AnyByte(), "x", true, 1},
		{"AnyByte fails at EOF", AnyByte(), "", false, 0},
		{"Byte matches exact byte", Byte('a'), "abc", true, 1},
		{"Byte fails on mismatch", Byte('a'), "b", false, 0},
		{"Range matches inside bounds", Range('0', '9'), "5", true, 1},
		{"Range fails outside bounds", Range('0', '9'), "a", false, 0},
		{"Literal matches full string", Literal("int"), "int x", true, 3},
		{"Literal fails and restores on partial match", Literal("int"), "inx", false, 0},
		{"empty Literal always succeeds", Literal(""), "x", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newCtx(tt.input, 0, len(tt.input))
			got := tt.m.Match(ctx)
			if got != tt.want {
				t.Fatalf("Match() = %v, want %v", got, tt.want)
			}
			if ctx.Offset() != tt.atEnd {
				t.Fatalf("Offset() = %d, want %d", ctx.Offset(), tt.atEnd)
			}
		})
	}
}

func TestSequenceFailureRestoresFully(t *testing.T) {
	ctx := newCtx("ab!", 0, 3)
	m := Sequence(Byte('a'), Byte('b'), Byte('x'))
	if m.Match(ctx) {
		t.Fatalf("Sequence should fail when the third child fails")
	}
	if ctx.Offset() != 0 {
		t.Fatalf("Offset() after failed Sequence = %d, want 0", ctx.Offset())
	}
}

func TestChoiceTriesEachAlternativeFromEntryState(t *testing.T) {
	ctx := newCtx("cd", 0, 2)
	m := Choice(Literal("ab"), Literal("cd"))
	if !m.Match(ctx) {
		t.Fatalf("Choice should succeed via its second alternative")
	}
	if ctx.Offset() != 2 {
		t.Fatalf("Offset() = %d, want 2", ctx.Offset())
	}
}

func TestAndIsLookaheadOnly(t *testing.T) {
	ctx := newCtx("abc", 0, 3)
	m := And(Literal("ab"))
	if !m.Match(ctx) {
		t.Fatalf("And(ab) should succeed")
	}
	if ctx.Offset() != 0 {
		t.Fatalf("And should not consume input, Offset() = %d, want 0", ctx.Offset())
	}
}

func TestNotIsNegatedLookahead(t *testing.T) {
	ctx := newCtx("abc", 0, 3)
	m := Not(Literal("xy"))
	if !m.Match(ctx) {
		t.Fatalf("Not(xy) should succeed since xy does not match")
	}
	if ctx.Offset() != 0 {
		t.Fatalf("Not should not consume input, Offset() = %d, want 0", ctx.Offset())
	}
}

func TestButConsumesOneByteWhenLookaheadFails(t *testing.T) {
	ctx := newCtx("a*/", 0, 3)
	m := But(Literal("*/"))
	if !m.Match(ctx) {
		t.Fatalf("But(*/) should succeed on 'a'")
	}
	if ctx.Offset() != 1 {
		t.Fatalf("Offset() = %d, want 1", ctx.Offset())
	}
	if m.Match(ctx) {
		t.Fatalf("But(*/) should fail once positioned on '*/'")
	}
	if ctx.Offset() != 1 {
		t.Fatalf("failed But should not consume, Offset() = %d, want 1", ctx.Offset())
	}
}

func TestEndsWithRequiresTerminatorAtInputEnd(t *testing.T) {
	lang := MustBuild("t", Sequence(EndsWith(Literal(".c")), End()))
	tests := []struct {
		input string
		want  bool
	}{
		{"main.c", true},
		{"main.cpp", false},
		{".c", true},
		{"c", false},
	}
	for _, tt := range tests {
		ctx := engine.NewNoCheckpoints(engine.NewStringInput([]byte(tt.input)), 0, len(tt.input))
		if got := lang.Root.Match(ctx); got != tt.want {
			t.Errorf("EndsWith(.c).Match(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHighlightRestoresPreviousStyleOnFailure(t *testing.T) {
	ctx := newCtx("ab", 0, 2)
	ctx.ChangeStyle(engine.StyleString)
	m := Highlight(engine.StyleKeyword, Literal("xy"))
	if m.Match(ctx) {
		t.Fatalf("Highlight(xy) should fail, xy is not a prefix of ab")
	}
	if ctx.CurrentStyle() != engine.StyleString {
		t.Fatalf("style after failed Highlight = %v, want the style active before it (StyleString)", ctx.CurrentStyle())
	}
}

func TestRecursiveBalancedNestedComment(t *testing.T) {
	var comment *Matcher
	comment = Recursive(func(self *Matcher) *Matcher {
		return Sequence(
			Literal("(*"),
			Repeat(Choice(self, But(Literal("*)"))), 0, 0),
			Literal("*)"),
		)
	})
	lang := MustBuild("t", Sequence(comment, End()))

	tests := []struct {
		input string
		want  bool
	}{
		{"(* a (* b *) c *)", true},
		{"(* a *) trailing", false}, // End() requires full consumption
		{"(* unterminated", false},
	}
	for _, tt := range tests {
		ctx := engine.NewNoCheckpoints(engine.NewStringInput([]byte(tt.input)), 0, len(tt.input))
		if got := lang.Root.Match(ctx); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBuildRejectsRepeatOverAlwaysSucceedingBody(t *testing.T) {
	_, err := Build("t", Repeat(Optional(Byte('a')), 0, 0))
	if err == nil {
		t.Fatalf("Build should reject Repeat over a body that always succeeds")
	}
}

func TestMustBuildPanicsOnInvalidGrammar(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustBuild should panic on a grammar Build rejects")
		}
	}()
	MustBuild("t", Repeat(Literal(""), 0, 0))
}

func TestBuildAcceptsSoundGrammar(t *testing.T) {
	_, err := Build("t", Repeat(Byte('a'), 0, 0))
	if err != nil {
		t.Fatalf("Build rejected a sound grammar: %v", err)
	}
}

// TestBacktrackingPurity is a property test (spec property 9): every
// combinator's failure must leave the cursor offset and emitted-span list
// exactly as they were on entry.
func TestBacktrackingPurity(t *testing.T) {
	failing := []struct {
		name string
		m    *Matcher
	}{
		{"Byte", Byte('z')},
		{"Range", Range('0', '9')},
		{"Literal", Literal("nope")},
		{"Sequence", Sequence(Byte('a'), Byte('z'))},
		{"Choice", Choice(Literal("xx"), Literal("yy"))},
		{"Not-of-matching", Not(Literal("ab"))},
		{"Highlight", Highlight(engine.StyleKeyword, Literal("zz"))},
	}
	for _, tt := range failing {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newCtx("ab", 0, 2)
			ctx.ChangeStyle(engine.StyleComment)
			beforeOffset := ctx.Offset()
			beforeSpans := len(ctx.Spans())

			if tt.m.Match(ctx) {
				t.Fatalf("expected this matcher to fail on input %q", "ab")
			}
			if ctx.Offset() != beforeOffset {
				t.Fatalf("Offset() changed across a failed match: %d -> %d", beforeOffset, ctx.Offset())
			}
			if len(ctx.Spans()) != beforeSpans {
				t.Fatalf("Spans() changed across a failed match: %d -> %d entries", beforeSpans, len(ctx.Spans()))
			}
		})
	}
}
