// Package cache implements the incremental parse cache: a tree of
// repetition-scope nodes, each holding an ordered list of checkpoints and
// an ordered list of child scopes, keyed by the source position at which
// the scope was entered.
package cache

import "sort"

// stride is the minimum byte distance between consecutive checkpoints in
// the same node. It bounds cache memory to O(buffer size / stride).
const stride = 16

// Checkpoint marks a position the parser was at rest between repetition
// iterations, together with the contamination bound observed while
// reaching it.
type Checkpoint struct {
	Pos    int
	MaxPos int
}

// Node is one repetition scope: the dynamic extent of a single Repeat
// matcher's optional tail at one source position.
type Node struct {
	startPos    int
	startMaxPos int
	checkpoints []Checkpoint
	children    []*Node
}

// StartPos is the offset at which this scope was first entered.
func (n *Node) StartPos() int { return n.startPos }

// LastCheckpoint returns the position of the most recent checkpoint, or
// StartPos if none has been recorded yet.
func (n *Node) LastCheckpoint() int {
	if len(n.checkpoints) == 0 {
		return n.startPos
	}
	return n.checkpoints[len(n.checkpoints)-1].Pos
}

// AddCheckpoint appends a checkpoint if pos is at least stride bytes past
// the last one recorded in this node.
func (n *Node) AddCheckpoint(pos, maxPos int) {
	if pos < n.LastCheckpoint()+stride {
		return
	}
	n.checkpoints = append(n.checkpoints, Checkpoint{Pos: pos, MaxPos: maxPos})
}

// FindCheckpoint returns the greatest checkpoint with Pos <= p, falling
// back to the scope's own entry point when no such checkpoint exists. The
// fallback is sound because the parent's checkpoint machinery guarantees
// startMaxPos already reflects everything peeked before this scope opened.
func (n *Node) FindCheckpoint(p int) Checkpoint {
	i := sort.Search(len(n.checkpoints), func(i int) bool { return n.checkpoints[i].Pos > p })
	if i == 0 {
		return Checkpoint{Pos: n.startPos, MaxPos: n.startMaxPos}
	}
	return n.checkpoints[i-1]
}

// FindOrAddChild returns the child scope that starts at pos, creating it
// (with the given contamination bound) if it does not already exist.
// Children are kept strictly sorted by StartPos.
func (n *Node) FindOrAddChild(pos, maxPos int, a *Arena) *Node {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].startPos >= pos })
	if i < len(n.children) && n.children[i].startPos == pos {
		return n.children[i]
	}
	child := a.allocNode(pos, maxPos)
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

// Invalidate removes every checkpoint whose MaxPos >= p and every child
// whose startMaxPos >= p, then recurses into the last surviving child if
// it starts at or after this node's (now-truncated) last checkpoint, since
// parsing beyond that child may have produced the state just removed.
func (n *Node) Invalidate(p int) {
	ci := sort.Search(len(n.checkpoints), func(i int) bool { return n.checkpoints[i].MaxPos >= p })
	n.checkpoints = n.checkpoints[:ci]

	cj := sort.Search(len(n.children), func(i int) bool { return n.children[i].startMaxPos >= p })
	n.children = n.children[:cj]

	if cj == 0 {
		return
	}
	last := n.children[cj-1]
	if last.startPos >= n.LastCheckpoint() {
		last.Invalidate(p)
	}
}

// Cache owns the root scope of the tree and the arena its nodes are
// allocated from. It is constructed empty and mutated monotonically
// during a query; Invalidate truncates it between queries, on edits.
type Cache struct {
	root  *Node
	arena Arena
}

// New returns an empty Cache, ready to be passed to Highlight.
func New() *Cache {
	c := &Cache{}
	c.root = c.arena.allocNode(0, 0)
	return c
}

// Root returns the cache's root scope node, corresponding to the
// top-level root repetition of a language's grammar.
func (c *Cache) Root() *Node { return c.root }

// Arena returns the node allocator backing this cache, so repetition
// scopes entered during a query can allocate children from it.
func (c *Cache) Arena() *Arena { return &c.arena }

// Invalidate must be called with the smallest offset touched by an edit
// (insertion or deletion point) before the next query against this cache.
func (c *Cache) Invalidate(p int) {
	c.root.Invalidate(p)
}
