package engine

import (
	"reflect"
	"testing"
)

func TestSpanEmitterMergesAdjacentSameStyleRuns(t *testing.T) {
	e := spanEmitter{win: window{ws: 0, we: 100}}
	e.changeStyle(0, StyleKeyword)
	e.changeStyle(3, StyleKeyword) // no-op style change: should not split the run
	e.changeStyle(6, StyleDefault)

	if len(e.spans) != 1 || e.spans[0] != (Span{Start: 0, End: 6, Style: StyleKeyword}) {
		t.Fatalf("spans = %v, want single merged (0,6,keyword)", e.spans)
	}
}

func TestSpanEmitterDropsDefaultStyleRuns(t *testing.T) {
	e := spanEmitter{win: window{ws: 0, we: 100}}
	e.changeStyle(0, StyleDefault)
	e.changeStyle(5, StyleDefault)

	if len(e.spans) != 0 {
		t.Fatalf("spans = %v, want none (default style never emits)", e.spans)
	}
}

func TestSpanEmitterClipsToWindow(t *testing.T) {
	e := spanEmitter{win: window{ws: 3, we: 7}}
	e.changeStyle(0, StyleString)
	e.changeStyle(10, StyleDefault)

	want := []Span{{Start: 3, End: 7, Style: StyleString}}
	if !reflect.DeepEqual(e.spans, want) {
		t.Fatalf("spans = %v, want %v", e.spans, want)
	}
}

func TestSpanEmitterDropsRunEntirelyOutsideWindow(t *testing.T) {
	e := spanEmitter{win: window{ws: 10, we: 20}}
	e.changeStyle(0, StyleString)
	e.changeStyle(5, StyleDefault)

	if len(e.spans) != 0 {
		t.Fatalf("spans = %v, want none (run ends before window starts)", e.spans)
	}
}

func TestSpanEmitterSaveRestore(t *testing.T) {
	e := spanEmitter{win: window{ws: 0, we: 100}}
	e.changeStyle(0, StyleKeyword)
	e.changeStyle(3, StyleDefault)
	mark := e.save()

	e.changeStyle(3, StyleString)
	e.changeStyle(8, StyleDefault)
	if len(e.spans) != 2 {
		t.Fatalf("spans before restore = %v, want 2 entries", e.spans)
	}

	e.restore(mark)
	if len(e.spans) != 1 {
		t.Fatalf("spans after restore = %v, want 1 entry (second span undone)", e.spans)
	}
	if e.style != StyleDefault {
		t.Fatalf("style after restore = %v, want StyleDefault", e.style)
	}
}
