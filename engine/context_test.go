package engine

import (
	"testing"

	"github.com/eyelash/prism/cache"
)

func TestParseContextSaveRestoreRewindsCursorAndSpans(t *testing.T) {
	c := cache.New()
	ctx := New(NewStringInput([]byte("abcdef")), c.Root(), c.Arena(), 0, 6)

	save := ctx.Save()
	ctx.ChangeStyle(StyleKeyword)
	ctx.Advance()
	ctx.Advance()
	ctx.ChangeStyle(StyleDefault)

	ctx.Restore(save)

	if ctx.Offset() != 0 {
		t.Fatalf("Offset() after Restore = %d, want 0", ctx.Offset())
	}
	if len(ctx.Spans()) != 0 {
		t.Fatalf("Spans() after Restore = %v, want none", ctx.Spans())
	}
}

func TestParseContextRestoreRaisesMaxPosToAbandonedOffset(t *testing.T) {
	c := cache.New()
	ctx := New(NewStringInput([]byte("abcdef")), c.Root(), c.Arena(), 0, 6)

	save := ctx.Save()
	ctx.Advance()
	ctx.Advance()
	ctx.Advance()
	ctx.Restore(save)

	if ctx.maxPos != 3 {
		t.Fatalf("maxPos after abandoning offset 3 = %d, want 3", ctx.maxPos)
	}
}

func TestWithCheckpointGateANDsAndRestores(t *testing.T) {
	c := cache.New()
	ctx := New(NewStringInput([]byte("abc")), c.Root(), c.Arena(), 0, 3)

	if !ctx.CheckpointGate() {
		t.Fatalf("gate should start open (true) at the root of a query")
	}

	ctx.WithCheckpointGate(false, func() bool {
		if ctx.CheckpointGate() {
			t.Fatalf("gate should be closed inside WithCheckpointGate(false, ...)")
		}
		return true
	})

	if !ctx.CheckpointGate() {
		t.Fatalf("gate should be restored to true after WithCheckpointGate returns")
	}
}

func TestSkipToCheckpointFallsBackToScopeEntry(t *testing.T) {
	c := cache.New()
	ctx := New(NewStringInput([]byte("0123456789")), c.Root(), c.Arena(), 5, 10)

	mark := ctx.EnterScope()
	ctx.SkipToCheckpoint()
	if ctx.Offset() != 0 {
		t.Fatalf("Offset() after SkipToCheckpoint with no checkpoints recorded = %d, want 0 (scope entry)", ctx.Offset())
	}
	ctx.LeaveScope(mark)
}

func TestEnterScopeAddCheckpointSkipToCheckpointRoundTrip(t *testing.T) {
	c := cache.New()
	ctx := New(NewStringInput([]byte("0123456789abcdef0123456789abcdef")), c.Root(), c.Arena(), 20, 33)

	mark := ctx.EnterScope()
	for i := 0; i < 20; i++ {
		ctx.Advance()
		ctx.AddCheckpoint()
	}
	ctx.LeaveScope(mark)

	mark = ctx.EnterScope()
	ctx.SkipToCheckpoint()
	got := ctx.Offset()
	ctx.LeaveScope(mark)

	if got == 0 || got > 20 {
		t.Fatalf("Offset() after SkipToCheckpoint = %d, want a checkpoint at or before the viewport start 20", got)
	}
}

func TestNewNoCheckpointsDisablesGate(t *testing.T) {
	ctx := NewNoCheckpoints(NewStringInput([]byte("x.go")), 0, 4)
	if ctx.CheckpointGate() {
		t.Fatalf("NewNoCheckpoints should start with the checkpoint gate closed")
	}
}
