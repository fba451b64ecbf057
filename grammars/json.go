package grammars

import (
	"github.com/eyelash/prism/matcher"
)

var jsonEscape = matcher.Sequence(matcher.Byte('\\'), matcher.Choice(
	oneOf("btnfr\"\\/"),
	matcher.Sequence(matcher.Byte('u'), matcher.Repeat(hexDigit, 4, 4)),
))

var jsonString = matcher.Sequence(
	matcher.Byte('"'),
	matcher.Repeat(matcher.Choice(
		matcher.Highlight(styleEscape, jsonEscape),
		matcher.But(oneOf("\"\n")),
	), 0, 0),
	matcher.Optional(matcher.Byte('"')),
)

var jsonNumber = matcher.Sequence(
	matcher.Optional(matcher.Byte('-')),
	matcher.OneOrMore(asciiDigit),
	matcher.Optional(matcher.Sequence(matcher.Byte('.'), matcher.OneOrMore(asciiDigit))),
	matcher.Optional(matcher.Sequence(
		oneOf("eE"),
		matcher.Optional(oneOf("+-")),
		matcher.OneOrMore(asciiDigit),
	)),
)

var jsonLiterals = anyLiteral("null", "false", "true")

var jsonRules = matcher.Choice(
	oneOf(" \t\n\r"),
	oneOf(",:[]{}"),
	matcher.Highlight(styleString, jsonString),
	matcher.Highlight(styleLiteral, jsonNumber),
	matcher.Highlight(styleLiteral, jsonLiterals),
)

var jsonLanguage = matcher.MustBuild("json", matcher.Repeat(matcher.Choice(jsonRules, matcher.AnyByte()), 0, 0))

var jsonPredicate = matcher.EndsWith(matcher.Literal(".json"))
