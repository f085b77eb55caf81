package suggest

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Blocklist answers "is any configured entry a prefix of this input".
// Entries live in a patricia trie so the check walks the input once
// instead of scanning the whole list per keystroke.
type Blocklist struct {
	trie *patricia.Trie
	size int
}

// NewBlocklist builds a blocklist from the given prefixes. Entries are
// folded to lower case; empty strings are skipped.
func NewBlocklist(prefixes []string) *Blocklist {
	bl := &Blocklist{trie: patricia.NewTrie()}
	for _, p := range prefixes {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if bl.trie.Insert(patricia.Prefix(p), true) {
			bl.size++
		}
	}
	return bl
}

// Blocked reports whether any blocklist entry prefixes the input.
func (bl *Blocklist) Blocked(input string) bool {
	blocked := false
	bl.trie.VisitPrefixes(patricia.Prefix(strings.ToLower(input)), func(p patricia.Prefix, item patricia.Item) error {
		blocked = true
		return nil
	})
	return blocked
}

// Len returns the number of distinct entries.
func (bl *Blocklist) Len() int { return bl.size }
