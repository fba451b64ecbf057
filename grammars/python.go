package grammars

import (
	"github.com/eyelash/prism/matcher"
)

var pyIdentBegin = matcher.Choice(asciiLower, asciiUpper, matcher.Byte('_'))
var pyIdentChar = matcher.Choice(asciiLower, asciiUpper, asciiDigit, matcher.Byte('_'))
var pyIdentifier = identifier(pyIdentBegin, pyIdentChar)

var pyComment = matcher.Sequence(matcher.Byte('#'), matcher.Repeat(matcher.But(matcher.Byte('\n')), 0, 0))

var pyEscape = matcher.Sequence(matcher.Byte('\\'), matcher.AnyByte())

var pyString = matcher.Choice(
	matcher.Sequence(
		matcher.Literal(`"""`),
		matcher.Repeat(matcher.Choice(pyEscape, matcher.But(matcher.Literal(`"""`))), 0, 0),
		matcher.Optional(matcher.Literal(`"""`)),
	),
	matcher.Sequence(
		matcher.Literal("'''"),
		matcher.Repeat(matcher.Choice(pyEscape, matcher.But(matcher.Literal("'''"))), 0, 0),
		matcher.Optional(matcher.Literal("'''")),
	),
	matcher.Sequence(
		matcher.Byte('"'),
		matcher.Repeat(matcher.Choice(pyEscape, matcher.But(oneOf("\"\n"))), 0, 0),
		matcher.Optional(matcher.Byte('"')),
	),
	matcher.Sequence(
		matcher.Byte('\''),
		matcher.Repeat(matcher.Choice(pyEscape, matcher.But(oneOf("'\n"))), 0, 0),
		matcher.Optional(matcher.Byte('\'')),
	),
)

var pyLiterals = keywords(pyIdentChar, "None", "False", "True")

var pyDef = matcher.Sequence(
	matcher.Highlight(styleKeyword, keyword("def", pyIdentChar)),
	matcher.Repeat(matcher.Byte(' '), 0, 0),
	matcher.Optional(matcher.Highlight(styleFunction, pyIdentifier)),
)

var pyClass = matcher.Sequence(
	matcher.Highlight(styleKeyword, keyword("class", pyIdentChar)),
	matcher.Repeat(matcher.Byte(' '), 0, 0),
	matcher.Optional(matcher.Highlight(styleType, pyIdentifier)),
)

var pyKeywords = keywords(pyIdentChar,
	"lambda", "if", "elif", "else", "for", "in", "while",
	"break", "continue", "return", "import", "from", "as",
	"with", "try", "except", "finally", "raise", "yield",
	"pass", "global", "nonlocal", "del", "assert", "async", "await",
)

var pyOperatorWords = keywords(pyIdentChar, "and", "or", "not", "is", "in")

var pyOperators = anyLiteral(
	"**=", "//=", "<<=", ">>=",
	"==", "!=", "<=", ">=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"**", "//", "<<", ">>",
	"+", "-", "*", "/", "%",
	"&", "|", "^", "~",
	"<", ">", "=", ".", ",", ":",
)

var pyRules = matcher.Choice(
	oneOf(" \t\n\r"),
	matcher.Highlight(styleComment, pyComment),
	matcher.Highlight(styleString, pyString),
	matcher.Highlight(styleLiteral, pyLiterals),
	pyDef,
	pyClass,
	matcher.Highlight(styleKeyword, pyKeywords),
	matcher.Highlight(styleOperator, pyOperatorWords),
	pyOperators,
	pyIdentifier,
)

var pyLanguage = matcher.MustBuild("python", matcher.Repeat(matcher.Choice(pyRules, matcher.AnyByte()), 0, 0))

var pyPredicate = matcher.EndsWith(matcher.Literal(".py"))
