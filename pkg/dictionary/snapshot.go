package dictionary

import (
	"bufio"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot files carry a msgpack-encoded entry list. Compared to the
// text form they skip line parsing on startup and keep the on-disk
// size down for large candidate sets.

// WriteSnapshot exports entries to a msgpack snapshot file.
func WriteSnapshot(path string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	enc := msgpack.NewEncoder(writer)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	log.Debugf("Wrote snapshot with %d entries to %s", len(entries), path)
	return nil
}

// ReadSnapshot loads entries from a msgpack snapshot file.
func ReadSnapshot(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	dec := msgpack.NewDecoder(bufio.NewReader(file))
	if err := dec.Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
