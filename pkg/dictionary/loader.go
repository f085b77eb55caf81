// Package dictionary loads completion candidates from a data directory.
// Two source formats are supported: plain text files, one entry per
// line, and msgpack snapshots previously exported by this package.
// The loader merges all sources into one deduplicated entry list; the
// caller rebuilds its index from that list whenever the data changes.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Entry is one candidate as it appears in a source file.
type Entry struct {
	Text    string `msgpack:"t"`
	Display string `msgpack:"d,omitempty"`
}

// Loader scans a directory for candidate source files.
type Loader struct {
	dirPath string
}

// NewLoader creates a loader over the given data directory.
func NewLoader(dirPath string) *Loader {
	return &Loader{dirPath: dirPath}
}

// Sources lists the candidate source files in the data directory,
// sorted by filename so merge order is stable between runs.
func (l *Loader) Sources() ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.txt", "*.bin"} {
		matches, err := filepath.Glob(filepath.Join(l.dirPath, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan for source files: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// Load reads every source file and returns the merged entry list with
// exact duplicates removed. Two entries count as duplicates only when
// both text and display match; distinct items sharing a key stay.
func (l *Loader) Load() ([]Entry, error) {
	files, err := l.Sources()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no source files found in %s", l.dirPath)
	}

	var merged []Entry
	seen := make(map[Entry]bool)
	for _, file := range files {
		var entries []Entry
		var err error
		if strings.HasSuffix(file, ".bin") {
			entries, err = ReadSnapshot(file)
		} else {
			entries, err = ReadTextFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		kept := 0
		for _, e := range entries {
			if seen[e] {
				continue
			}
			seen[e] = true
			merged = append(merged, e)
			kept++
		}
		log.Debugf("Loaded %d entries (%d new) from %s", len(entries), kept, file)
	}

	log.Debugf("Merged %d entries from %d source files", len(merged), len(files))
	return merged, nil
}

// ReadTextFile parses a plain text source: one entry per line, with an
// optional tab-separated display form. Blank lines and '#' comments are
// skipped.
func ReadTextFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		text, display, _ := strings.Cut(line, "\t")
		entries = append(entries, Entry{
			Text:    strings.TrimSpace(text),
			Display: strings.TrimSpace(display),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
