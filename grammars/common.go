// Package grammars ships the concrete language definitions this module
// resolves through GetLanguage, and the registry that maps file names to
// them.
package grammars

import (
	"github.com/eyelash/prism/engine"
	"github.com/eyelash/prism/matcher"
)

// Local, unexported aliases for the style tags grammars highlight with, so
// individual grammar files read as plain style names rather than
// engine.StyleXxx throughout.
const (
	styleDefault  = engine.StyleDefault
	styleOperator = engine.StyleOperator
	styleType     = engine.StyleType
	styleComment  = engine.StyleComment
	styleKeyword  = engine.StyleKeyword
	styleString   = engine.StyleString
	styleEscape   = engine.StyleEscape
	styleLiteral  = engine.StyleLiteral
	styleFunction = engine.StyleFunction
)

// oneOf builds a Choice of single-byte matchers, one per byte in set.
func oneOf(set string) *matcher.Matcher {
	ms := make([]*matcher.Matcher, len(set))
	for i := 0; i < len(set); i++ {
		ms[i] = matcher.Byte(set[i])
	}
	return matcher.Choice(ms...)
}

// anyLiteral builds a Choice of Literal matchers, tried in the order given;
// callers list longer alternatives first so that e.g. "<<=" is tried
// before "<<" before "<".
func anyLiteral(lits ...string) *matcher.Matcher {
	ms := make([]*matcher.Matcher, len(lits))
	for i, s := range lits {
		ms[i] = matcher.Literal(s)
	}
	return matcher.Choice(ms...)
}

var hexDigit = matcher.Choice(
	matcher.Range('0', '9'),
	matcher.Range('a', 'f'),
	matcher.Range('A', 'F'),
)

var asciiLower = matcher.Range('a', 'z')
var asciiUpper = matcher.Range('A', 'Z')
var asciiDigit = matcher.Range('0', '9')

// identifier builds Sequence(begin, Repeat(cont, 0, 0)) for a C-family
// identifier: a letter or underscore followed by any number of letters,
// digits or underscores.
func identifier(begin, cont *matcher.Matcher) *matcher.Matcher {
	return matcher.Sequence(begin, matcher.Repeat(cont, 0, 0))
}

// wordBoundary is zero-width negative lookahead for another identifier
// character, so that e.g. matching the literal "if" does not also match
// the prefix of "ifdef".
func wordBoundary(identChar *matcher.Matcher) *matcher.Matcher {
	return matcher.Not(identChar)
}

// keyword matches the literal word exactly, rejecting it as a prefix of
// a longer identifier.
func keyword(word string, identChar *matcher.Matcher) *matcher.Matcher {
	return matcher.Sequence(matcher.Literal(word), wordBoundary(identChar))
}

// keywords is a Choice of keyword, one per word.
func keywords(identChar *matcher.Matcher, words ...string) *matcher.Matcher {
	ms := make([]*matcher.Matcher, len(words))
	for i, w := range words {
		ms[i] = keyword(w, identChar)
	}
	return matcher.Choice(ms...)
}

// digitsWithSeparator matches one or more digit-class bytes, allowing a
// single optional separator (e.g. "'" in C, "_" in Python) between any
// two digits.
func digitsWithSeparator(digit *matcher.Matcher, sep byte) *matcher.Matcher {
	return matcher.Sequence(
		digit,
		matcher.Repeat(matcher.Sequence(matcher.Optional(matcher.Byte(sep)), digit), 0, 0),
	)
}
