// Package index is the core, providing the prefix tree that backs every
// completion lookup: amortized-fast inserts and bounded breadth-first
// retrieval of items whose key starts with a typed prefix.
package index

import "strings"

// Keyed is the single capability the index requires from a payload.
// The key must stay stable for the lifetime of the index; mutating an
// item's key after insertion does not move it in the tree.
type Keyed interface {
	Key() string
}

// Word satisfies Keyed for plain strings.
type Word string

// Key returns the word itself.
func (w Word) Key() string { return string(w) }

// Limit bounds how many items a query may return. The zero value means
// unlimited, which keeps "no limit" distinct from a bound of zero.
type Limit struct {
	n       int
	bounded bool
}

// NoLimit places no bound on the result count.
var NoLimit = Limit{}

// Max bounds a query to at most n results. Negative values clamp to zero.
func Max(n int) Limit {
	if n < 0 {
		n = 0
	}
	return Limit{n: n, bounded: true}
}

// Bounded reports whether the limit carries a numeric bound.
func (l Limit) Bounded() bool { return l.bounded }

func (l Limit) reached(count int) bool {
	return l.bounded && count >= l.n
}

// node is one tree vertex. The path of chars from the root to a node
// spells a prefix of at least one inserted key; results holds the items
// whose key terminates exactly here.
type node[T Keyed] struct {
	char     rune
	children []*node[T] // sorted by char, keys unique
	results  []T
}

// child returns the outgoing edge for r, or nil.
func (n *node[T]) child(r rune) *node[T] {
	lo, hi := 0, len(n.children)
	for lo < hi {
		mid := (lo + hi) / 2
		if n.children[mid].char < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(n.children) && n.children[lo].char == r {
		return n.children[lo]
	}
	return nil
}

// ensureChild returns the edge for r, creating and linking it if missing.
// New edges are spliced in char order so sibling iteration is deterministic.
func (n *node[T]) ensureChild(r rune) *node[T] {
	lo, hi := 0, len(n.children)
	for lo < hi {
		mid := (lo + hi) / 2
		if n.children[mid].char < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(n.children) && n.children[lo].char == r {
		return n.children[lo]
	}
	c := &node[T]{char: r}
	n.children = append(n.children, nil)
	copy(n.children[lo+1:], n.children[lo:])
	n.children[lo] = c
	return c
}

// Index is a prefix tree over items carrying string keys. Build it once
// with Insert calls, then treat it as read-only: Query never mutates, so
// a published index is safe for any number of concurrent readers. There
// is no delete; removing entries means building a fresh index and
// swapping the handle.
type Index[T Keyed] struct {
	root          *node[T]
	caseSensitive bool
	size          int
}

// New builds an index and bulk-inserts items in iteration order.
func New[T Keyed](items []T, caseSensitive bool) *Index[T] {
	ix := &Index[T]{
		root:          &node[T]{},
		caseSensitive: caseSensitive,
	}
	for _, item := range items {
		ix.Insert(item)
	}
	return ix
}

// CaseSensitive reports whether lookups fold case before traversal.
func (ix *Index[T]) CaseSensitive() bool { return ix.caseSensitive }

// Len returns the number of inserted items.
func (ix *Index[T]) Len() int { return ix.size }

// Insert walks the item's key one char at a time, creating edges as
// needed, and appends the item at the terminal node. Duplicate keys
// accumulate in insertion order. An empty key decorates the root.
func (ix *Index[T]) Insert(item T) {
	key := item.Key()
	if !ix.caseSensitive {
		key = strings.ToLower(key)
	}
	n := ix.root
	for _, r := range key {
		n = n.ensureChild(r)
	}
	n.results = append(n.results, item)
	ix.size++
}

// Query returns up to limit items whose key starts with text. The second
// return value is false only for empty text, the "no active query"
// sentinel; a well-formed query with zero matches returns an empty,
// non-nil slice. Matches come back exact-key items first, in insertion
// order, then descendants level by level.
func (ix *Index[T]) Query(text string, limit Limit) ([]T, bool) {
	if text == "" {
		return nil, false
	}
	if !ix.caseSensitive {
		text = strings.ToLower(text)
	}

	out := []T{}
	if limit.reached(0) {
		return out, true
	}

	n := ix.root
	for _, r := range text {
		if n = n.child(r); n == nil {
			return out, true
		}
	}

	for _, item := range n.results {
		out = append(out, item)
		if limit.reached(len(out)) {
			return out, true
		}
	}

	// Breadth-first over the matched subtree with an explicit worklist,
	// so deep or bushy trees never grow the call stack.
	queue := []*node[T]{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range cur.children {
			for _, item := range c.results {
				out = append(out, item)
				if limit.reached(len(out)) {
					return out, true
				}
			}
			queue = append(queue, c)
		}
	}
	return out, true
}
