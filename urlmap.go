package main

import (
	"fmt"
	"os"

	"git.jlel.se/jlelse/blogger2hugo/pkgs/bufferpool"
)

const urlMapFileName = "url_map.csv"

// urlMap collects the old → new URL pairs of all published posts, in the
// order they are processed. The driver owns the single instance.
type urlMap struct {
	entries []urlMapEntry
}

type urlMapEntry struct {
	oldURL, newURL string
}

func (m *urlMap) add(oldURL, newURL string) {
	m.entries = append(m.entries, urlMapEntry{oldURL: oldURL, newURL: newURL})
}

// writeFile serializes the map, one "old,new," line per entry (trailing
// comma kept), no header.
func (m *urlMap) writeFile(file string) error {
	buf := bufferpool.Get()
	defer bufferpool.Put(buf)
	for _, e := range m.entries {
		fmt.Fprintf(buf, "%s,%s,\n", e.oldURL, e.newURL)
	}
	if err := os.WriteFile(file, buf.Bytes(), 0666); err != nil {
		return configError("can not write url map %s: %s", file, err.Error())
	}
	return nil
}
