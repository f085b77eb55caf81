package index

import (
	"fmt"
	"strings"
	"testing"
)

// entry is a payload with a key that differs from its display text,
// to make sure the tree only ever looks at Key().
type entry struct {
	key string
	tag int
}

func (e entry) Key() string { return e.key }

func words(ws ...string) []Word {
	out := make([]Word, len(ws))
	for i, w := range ws {
		out[i] = Word(w)
	}
	return out
}

func texts(results []Word) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = string(r)
	}
	return out
}

func TestEmptyQuerySentinel(t *testing.T) {
	ix := New(words("apple", "app"), false)

	limits := []Limit{NoLimit, Max(0), Max(5)}
	for _, l := range limits {
		results, ok := ix.Query("", l)
		if ok {
			t.Errorf("empty text should report no active query, got list %v", results)
		}
		if results != nil {
			t.Errorf("sentinel should carry no list, got %v", results)
		}
	}
}

func TestNoMatchIsEmptyList(t *testing.T) {
	ix := New(words("apple", "app", "banana"), false)

	results, ok := ix.Query("zzz_not_present", NoLimit)
	if !ok {
		t.Fatal("a well-formed query must not report the no-query sentinel")
	}
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty list, got %v", results)
	}
}

func TestConcreteScenario(t *testing.T) {
	ix := New(words("apple", "app", "application", "banana"), false)

	cases := []struct {
		text  string
		limit Limit
		want  []string
	}{
		{"app", NoLimit, []string{"app", "apple", "application"}},
		{"app", Max(2), []string{"app", "apple"}},
		{"ban", NoLimit, []string{"banana"}},
		{"car", NoLimit, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			results, ok := ix.Query(tc.text, tc.limit)
			if !ok {
				t.Fatalf("query %q reported no active query", tc.text)
			}
			got := texts(results)
			if len(got) != len(tc.want) {
				t.Fatalf("query %q: expected %v, got %v", tc.text, tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("query %q: position %d expected %q, got %q", tc.text, i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	keys := []string{"apple", "app", "application", "banana", "band", "bandana", "can"}
	ix := New(words(keys...), false)

	for _, k := range keys {
		results, ok := ix.Query(k, NoLimit)
		if !ok {
			t.Fatalf("query %q reported no active query", k)
		}
		found := false
		for _, r := range results {
			if string(r) == k {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("inserted key %q missing from its own query results %v", k, texts(results))
		}
	}
}

func TestPrefixClosure(t *testing.T) {
	keys := []string{"apple", "Application", "banana", "band"}
	ix := New(words(keys...), false)

	for _, k := range keys {
		folded := strings.ToLower(k)
		for i := 1; i <= len(folded); i++ {
			p := folded[:i]
			results, ok := ix.Query(p, NoLimit)
			if !ok {
				t.Fatalf("query %q reported no active query", p)
			}
			found := false
			for _, r := range results {
				if string(r) == k {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("key %q not returned for its prefix %q", k, p)
			}
		}
	}
}

func TestLimitTruncation(t *testing.T) {
	var items []Word
	for i := 0; i < 30; i++ {
		items = append(items, Word(fmt.Sprintf("word%02d", i)))
	}
	ix := New(items, false)

	full, _ := ix.Query("word", NoLimit)
	if len(full) != 30 {
		t.Fatalf("expected all 30 results, got %d", len(full))
	}

	// Growing the limit must only extend the result list, never
	// reshuffle what an earlier limit returned.
	for l := 0; l <= 30; l++ {
		results, ok := ix.Query("word", Max(l))
		if !ok {
			t.Fatal("bounded query reported no active query")
		}
		if len(results) > l {
			t.Errorf("limit %d: got %d results", l, len(results))
		}
		for i, r := range results {
			if string(r) != string(full[i]) {
				t.Errorf("limit %d: position %d is %q, unbounded traversal has %q", l, i, r, full[i])
			}
		}
	}
}

func TestZeroLimit(t *testing.T) {
	ix := New(words("apple"), false)
	results, ok := ix.Query("a", Max(0))
	if !ok {
		t.Fatal("zero limit must still be a well-formed query")
	}
	if len(results) != 0 {
		t.Errorf("zero limit should yield an empty list, got %v", results)
	}
}

func TestCaseFolding(t *testing.T) {
	insensitive := New(words("Apple"), false)
	for _, q := range []string{"apple", "APPLE", "ApPlE"} {
		results, _ := insensitive.Query(q, NoLimit)
		if len(results) != 1 || string(results[0]) != "Apple" {
			t.Errorf("case-insensitive query %q: expected [Apple], got %v", q, texts(results))
		}
	}

	sensitive := New(words("Apple"), true)
	if results, _ := sensitive.Query("Apple", NoLimit); len(results) != 1 {
		t.Errorf("case-sensitive exact query should match, got %v", texts(results))
	}
	for _, q := range []string{"apple", "APPLE"} {
		if results, _ := sensitive.Query(q, NoLimit); len(results) != 0 {
			t.Errorf("case-sensitive query %q should not match, got %v", q, texts(results))
		}
	}
}

func TestDuplicateKeys(t *testing.T) {
	first := entry{key: "cat", tag: 1}
	second := entry{key: "cat", tag: 2}
	ix := New([]entry{first, second}, false)

	results, ok := ix.Query("cat", NoLimit)
	if !ok {
		t.Fatal("query reported no active query")
	}
	if len(results) != 2 {
		t.Fatalf("expected both duplicate-key items, got %d", len(results))
	}
	if results[0].tag != 1 || results[1].tag != 2 {
		t.Errorf("duplicates out of insertion order: %v", results)
	}
}

func TestEmptyKeyInsert(t *testing.T) {
	ix := New([]entry{{key: "", tag: 9}, {key: "a", tag: 1}}, false)

	if ix.Len() != 2 {
		t.Errorf("expected 2 inserted items, got %d", ix.Len())
	}
	// The empty key sits on the root; no non-empty query text is a
	// prefix of it, so it never surfaces in results.
	results, _ := ix.Query("a", NoLimit)
	if len(results) != 1 || results[0].tag != 1 {
		t.Errorf("empty-key item leaked into query results: %v", results)
	}
}

func TestBreadthFirstOrder(t *testing.T) {
	// One level per length: exact match, then all length+1 extensions
	// in char order, then length+2, regardless of insertion order.
	ix := New(words("abz", "abab", "ab", "abb", "aba", "abba"), false)

	results, _ := ix.Query("ab", NoLimit)
	want := []string{"ab", "aba", "abb", "abz", "abab", "abba"}
	got := texts(results)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestQueryDoesNotMutate(t *testing.T) {
	ix := New(words("apple", "app"), false)
	before := ix.Len()

	for i := 0; i < 100; i++ {
		ix.Query("ap", Max(1))
		ix.Query("nope", NoLimit)
	}
	if ix.Len() != before {
		t.Errorf("queries changed index size: %d -> %d", before, ix.Len())
	}
	results, _ := ix.Query("app", NoLimit)
	if len(results) != 2 {
		t.Errorf("index structure changed after queries, got %v", texts(results))
	}
}

// 10k words, shared prefixes, bounded retrieval per lookup.
func BenchmarkQuery(b *testing.B) {
	var items []Word
	for i := 0; i < 10000; i++ {
		items = append(items, Word(fmt.Sprintf("prefix%05d", i)))
	}
	ix := New(items, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Query("prefix", Max(24))
	}
}

func BenchmarkInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ix := New[Word](nil, false)
		for j := 0; j < 1000; j++ {
			ix.Insert(Word(fmt.Sprintf("word%04d", j)))
		}
	}
}
