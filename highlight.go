package highlight

import (
	"github.com/eyelash/prism/cache"
	"github.com/eyelash/prism/engine"
	"github.com/eyelash/prism/grammars"
	"github.com/eyelash/prism/matcher"
)

// Span is a contiguous byte range tagged with a style.
type Span = engine.Span

// Style identifies a visual highlight category. StyleDefault is never
// emitted as a span.
type Style = engine.Style

const (
	StyleDefault  = engine.StyleDefault
	StyleOperator = engine.StyleOperator
	StyleType     = engine.StyleType
	StyleComment  = engine.StyleComment
	StyleKeyword  = engine.StyleKeyword
	StyleString   = engine.StyleString
	StyleEscape   = engine.StyleEscape
	StyleLiteral  = engine.StyleLiteral
	StyleFunction = engine.StyleFunction
)

// Input is a random-access byte stream over possibly chunked storage.
type Input = engine.Input

// StringInput is an in-memory, single-chunk Input.
type StringInput = engine.StringInput

// NewStringInput wraps s as an Input.
func NewStringInput(s []byte) *StringInput { return engine.NewStringInput(s) }

// Language is a named, built grammar returned by GetLanguage.
type Language = matcher.Language

// Cache is the incremental parse cache. It is constructed empty and
// borrowed mutably by one query at a time; invalidate edits between
// queries, never during one.
type Cache = cache.Cache

// NewCache returns an empty Cache.
func NewCache() *Cache { return cache.New() }

// GetLanguage resolves a language by file name, trying each registered
// grammar's predicate in turn. File-name matching reuses the same engine
// with checkpointing disabled, over a single-chunk StringInput.
func GetLanguage(fileName string) (*Language, bool) {
	in := engine.NewStringInput([]byte(fileName))
	for _, entry := range grammars.All() {
		ctx := engine.NewNoCheckpoints(in, 0, len(fileName))
		if entry.Predicate.Match(ctx) {
			return entry.Language, true
		}
	}
	return nil, false
}

// Highlight runs one query: selects the language's root matcher against
// input, rooted at c's cache tree, and returns the minimal span list
// covering [ws, we).
func Highlight(language *Language, input Input, c *Cache, ws, we int) []Span {
	ctx := engine.New(input, c.Root(), c.Arena(), ws, we)
	language.Root.Match(ctx)
	ctx.ChangeStyle(engine.StyleDefault)
	return ctx.Spans()
}
