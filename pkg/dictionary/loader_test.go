package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestReadTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	writeFile(t, path, `# comment line
apple
app	app (abbrev.)

banana
`)

	entries, err := ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile: %v", err)
	}
	want := []Entry{
		{Text: "apple"},
		{Text: "app", Display: "app (abbrev.)"},
		{Text: "banana"},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], entries[i])
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.bin")

	in := []Entry{
		{Text: "apple", Display: "Apple Inc."},
		{Text: "app"},
	}
	if err := WriteSnapshot(path, in); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	out, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d entries, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, in[i], out[i])
		}
	}
}

func TestLoaderMergesSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "01_base.txt"), "apple\nbanana\n")
	// The first snapshot entry is an exact duplicate and gets dropped;
	// the second shares the key but is a distinct item and stays.
	if err := WriteSnapshot(filepath.Join(dir, "02_extra.bin"), []Entry{
		{Text: "banana"},
		{Text: "banana", Display: "a fruit"},
		{Text: "cherry"},
	}); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	entries, err := NewLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []Entry{
		{Text: "apple"},
		{Text: "banana"},
		{Text: "banana", Display: "a fruit"},
		{Text: "cherry"},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], entries[i])
		}
	}
}

func TestLoaderEmptyDir(t *testing.T) {
	if _, err := NewLoader(t.TempDir()).Load(); err == nil {
		t.Error("expected an error for a directory without source files")
	}
}
