package engine

// Style is a small integer identifying a visual highlight category.
// StyleDefault is never emitted as a span. The constants below are
// numbered in declaration order, which puts comment at 3, keyword at 4
// and literal at 7, the values this engine's own worked examples (a
// C-like grammar highlighting comments, keywords and numeric literals)
// use.
type Style int

const (
	StyleDefault Style = iota
	StyleOperator
	StyleType
	StyleComment
	StyleKeyword
	StyleString
	StyleEscape
	StyleLiteral
	StyleFunction
)

// Span is a contiguous byte range tagged with a style, the engine's
// output atom.
type Span struct {
	Start int
	End   int
	Style Style
}

// window is the half-open viewport [WS, WE) spans are clipped to.
type window struct {
	ws, we int
}

// emitterState is the span emitter's save-point: everything change_style
// needs to roll back.
type emitterState struct {
	spansLen int
	start    int
	style    Style
}

// spanEmitter accumulates adjacent same-style byte ranges into a minimal
// span list, clipped to a viewport window. change_style is the sole path
// by which a span reaches the output list.
type spanEmitter struct {
	spans []Span
	start int
	style Style
	win   window
}

func (e *spanEmitter) emit(end int) {
	if e.start == end {
		return
	}
	if end <= e.win.ws || e.start >= e.win.we {
		return
	}
	if e.style == StyleDefault {
		return
	}
	start := e.start
	if start < e.win.ws {
		start = e.win.ws
	}
	if end > e.win.we {
		end = e.win.we
	}
	if n := len(e.spans); n > 0 {
		last := &e.spans[n-1]
		if last.End == start && last.Style == e.style {
			last.End = end
			return
		}
	}
	e.spans = append(e.spans, Span{Start: start, End: end, Style: e.style})
}

// changeStyle flushes the current run [start, pos) at the current style,
// then installs newStyle starting at pos, returning the old style.
func (e *spanEmitter) changeStyle(pos int, newStyle Style) Style {
	e.emit(pos)
	e.start = pos
	old := e.style
	e.style = newStyle
	return old
}

func (e *spanEmitter) save() emitterState {
	return emitterState{spansLen: len(e.spans), start: e.start, style: e.style}
}

func (e *spanEmitter) restore(s emitterState) {
	e.spans = e.spans[:s.spansLen]
	e.start = s.start
	e.style = s.style
}
