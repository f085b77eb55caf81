// Package suggest wraps the prefix index into a completion engine:
// candidate management, rebuild-and-swap publishing, input gating and
// capitalization handling for interactive lookups.
package suggest

import (
	"sync"
	"sync/atomic"

	"github.com/bvik/typeahead/internal/utils"
	"github.com/bvik/typeahead/pkg/index"
	"github.com/charmbracelet/log"
)

// Suggestion is one completion candidate. Text is what gets indexed and
// matched; Display is what a host UI shows, falling back to Text when empty.
type Suggestion struct {
	Text    string
	Display string
}

// Key returns the indexed text.
func (s Suggestion) Key() string { return s.Text }

// DisplayText returns the display form, falling back to the indexed text.
func (s Suggestion) DisplayText() string {
	if s.Display != "" {
		return s.Display
	}
	return s.Text
}

// Completer holds the published prefix index plus the pending candidate
// set for the next rebuild. The published index is immutable: Complete
// reads it through an atomic handle, so any number of goroutines may
// query while a rebuild prepares its replacement off to the side.
type Completer struct {
	idx atomic.Pointer[index.Index[Suggestion]]

	mu      sync.Mutex
	pending []Suggestion

	caseSensitive bool
	maxLimit      int
	noFilter      bool
	blocklist     *Blocklist
}

// NewCompleter initializes a completer with an empty published index.
func NewCompleter(caseSensitive bool, maxLimit int) *Completer {
	c := &Completer{
		caseSensitive: caseSensitive,
		maxLimit:      maxLimit,
	}
	c.idx.Store(index.New[Suggestion](nil, caseSensitive))
	return c
}

// SetNoFilter disables input gating; useful for debugging raw entries.
// Not synchronized with Complete: call it during setup, before the
// completer is shared across goroutines.
func (c *Completer) SetNoFilter(noFilter bool) {
	c.noFilter = noFilter
}

// SetBlockedPrefixes installs the blocked-prefix filter. Passing an
// empty list removes it. Not synchronized with Complete: call it
// during setup, before the completer is shared across goroutines.
func (c *Completer) SetBlockedPrefixes(prefixes []string) {
	if len(prefixes) == 0 {
		c.blocklist = nil
		return
	}
	c.blocklist = NewBlocklist(prefixes)
}

// Add stages a candidate for the next Rebuild. It does not touch the
// published index.
func (c *Completer) Add(text, display string) {
	c.mu.Lock()
	c.pending = append(c.pending, Suggestion{Text: text, Display: display})
	c.mu.Unlock()
}

// Rebuild constructs a fresh index from the staged candidates and
// atomically swaps it in. In-flight queries keep reading the old index
// until the swap lands.
func (c *Completer) Rebuild() {
	c.mu.Lock()
	items := make([]Suggestion, len(c.pending))
	copy(items, c.pending)
	c.mu.Unlock()

	c.swap(items)
}

// RebuildWith replaces the staged candidate set wholesale and publishes
// an index built from it. This is the rebuild-on-data-change path: the
// index has no deletion, a changed candidate list means a new index.
func (c *Completer) RebuildWith(items []Suggestion) {
	c.mu.Lock()
	c.pending = append(c.pending[:0], items...)
	c.mu.Unlock()

	c.swap(items)
}

func (c *Completer) swap(items []Suggestion) {
	fresh := index.New(items, c.caseSensitive)
	c.idx.Store(fresh)
	log.Debugf("Published index with %d entries", fresh.Len())
}

// Complete returns up to limit suggestions whose text starts with prefix.
// A nil return means "no active query" (empty or gated-out prefix); an
// empty slice means the query ran and found nothing. When the completer
// is case-insensitive, the caller's capitalization pattern is re-applied
// to the returned text.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" {
		return nil
	}
	if !c.noFilter && !utils.IsValidInput(prefix) {
		log.Debugf("Filtered out input: %q", prefix)
		return nil
	}
	if c.blocklist != nil && c.blocklist.Blocked(prefix) {
		log.Debugf("Blocked prefix: %q", prefix)
		return nil
	}

	if limit <= 0 || limit > c.maxLimit {
		limit = c.maxLimit
	}

	var positions []bool
	lookup := prefix
	if !c.caseSensitive {
		lookup, positions = utils.CapitalPositions(prefix)
	}

	results, ok := c.idx.Load().Query(lookup, index.Max(limit))
	if !ok {
		return nil
	}

	if positions != nil {
		for i := range results {
			results[i].Text = utils.ApplyCapitals(results[i].Text, positions)
		}
	}
	return results
}

// Len reports the entry count of the published index.
func (c *Completer) Len() int {
	return c.idx.Load().Len()
}

// Stats returns counters about the engine state.
func (c *Completer) Stats() map[string]int {
	c.mu.Lock()
	pending := len(c.pending)
	c.mu.Unlock()

	blocked := 0
	if c.blocklist != nil {
		blocked = c.blocklist.Len()
	}
	return map[string]int{
		"indexedEntries":  c.Len(),
		"pendingEntries":  pending,
		"blockedPrefixes": blocked,
		"maxLimit":        c.maxLimit,
	}
}
