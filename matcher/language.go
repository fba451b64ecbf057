package matcher

import "fmt"

// Language is a named grammar: a root matcher (conventionally
// Repeat(Choice(rules..., AnyByte), 0, 0), so unmatched bytes are
// consumed silently) built once and passed into a highlight query. The
// grammar's cyclic references are resolved through Declare/Define before
// Build, so no process-wide registry is involved.
type Language struct {
	Name string
	Root *Matcher
}

// Build validates root (rejecting any Repeat whose body always_succeeds,
// per spec, the only static error this grammar language has) and
// computes always_succeeds for every reachable node, including the
// per-Sequence tail-always-succeeds table the checkpoint gate depends on.
func Build(name string, root *Matcher) (*Language, error) {
	visiting := make(map[*Matcher]bool)
	var bad []*Matcher
	computeAlwaysSucceeds(root, visiting, &bad)
	if len(bad) > 0 {
		return nil, fmt.Errorf("matcher: grammar %q has %d Repeat node(s) whose body always succeeds", name, len(bad))
	}
	return &Language{Name: name, Root: root}, nil
}

// MustBuild is Build, panicking on error. Grammars defined as package
// vars at init time use this; code assembling a grammar dynamically from
// untrusted pieces should call Build instead.
func MustBuild(name string, root *Matcher) *Language {
	lang, err := Build(name, root)
	if err != nil {
		panic(err)
	}
	return lang
}

// computeAlwaysSucceeds fills in m.always (and, for Sequence nodes,
// m.tailAlway) for m and everything reachable from it, appending to bad
// every Repeat whose body always_succeeds. Cycles (through Reference, for
// self-recursive rules) are broken conservatively: a matcher currently
// being computed reports false to its own recursive callers rather than
// deadlocking, and is not cached from that call.
func computeAlwaysSucceeds(m *Matcher, visiting map[*Matcher]bool, bad *[]*Matcher) bool {
	if m.alwaysComputed {
		return m.always
	}
	if visiting[m] {
		return false
	}
	visiting[m] = true

	var result bool
	switch m.kind {
	case kindAnyByte, kindByte, kindRange:
		result = false

	case kindLiteral:
		result = len(m.lit) == 0

	case kindSequence:
		n := len(m.children)
		tail := make([]bool, n)
		acc := true
		for i := n - 1; i >= 0; i-- {
			tail[i] = acc
			acc = acc && computeAlwaysSucceeds(m.children[i], visiting, bad)
		}
		m.tailAlway = tail
		result = acc

	case kindChoice:
		for _, c := range m.children {
			if computeAlwaysSucceeds(c, visiting, bad) {
				result = true
			}
		}

	case kindRepeat:
		if computeAlwaysSucceeds(m.child, visiting, bad) {
			m.badRepeatBody = true
			*bad = append(*bad, m)
		}
		result = m.min == 0

	case kindAnd:
		result = computeAlwaysSucceeds(m.child, visiting, bad)

	case kindNot:
		computeAlwaysSucceeds(m.child, visiting, bad)
		result = false

	case kindHighlight:
		result = computeAlwaysSucceeds(m.child, visiting, bad)

	case kindReference:
		if m.target == nil {
			panic("matcher: undefined rule referenced during Build (Declare without matching Define)")
		}
		result = computeAlwaysSucceeds(m.target, visiting, bad)

	default:
		panic("matcher: unreachable matcher kind")
	}

	delete(visiting, m)
	m.always = result
	m.alwaysComputed = true
	return result
}
