package grammars

import "github.com/eyelash/prism/matcher"

// Entry pairs a built language with the file-name predicate that selects
// it.
type Entry struct {
	Name      string
	Predicate *matcher.Matcher
	Language  *matcher.Language
}

var registry = []Entry{
	{Name: "c", Predicate: cPredicate, Language: cLanguage},
	{Name: "python", Predicate: pyPredicate, Language: pyLanguage},
	{Name: "json", Predicate: jsonPredicate, Language: jsonLanguage},
}

// All returns every registered language, in the order GetLanguage should
// try their predicates.
func All() []Entry { return registry }
