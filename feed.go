package main

import (
	"encoding/xml"
	"os"

	"github.com/samber/lo"
)

// Category schemes and kind terms used in Blogger Atom exports.
const (
	categoryKindScheme = "http://schemas.google.com/g/2005#kind"
	categoryTagScheme  = "http://www.blogger.com/atom/ns#"
	termPost           = "http://schemas.google.com/blogger/2008/kind#post"
)

type feed struct {
	XMLName xml.Name `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []entry  `xml:"entry"`
}

// entry is one record of the export. Besides posts it can also represent
// pages, comments or settings, the categories tell them apart.
type entry struct {
	Title      string     `xml:"title"`
	Published  string     `xml:"published"`
	Content    string     `xml:"content"`
	AuthorName string     `xml:"author>name"`
	Categories []category `xml:"category"`
	Links      []link     `xml:"link"`
}

type category struct {
	Scheme string `xml:"scheme,attr"`
	Term   string `xml:"term,attr"`
}

type link struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

func loadFeed(path string) (*feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("can not read export file %q: %s", path, err.Error())
	}
	f := &feed{}
	if err := xml.Unmarshal(data, f); err != nil {
		return nil, parseError(err, "can not parse %q, check that it is an exported Blogger XML file", path)
	}
	return f, nil
}

// postEntries keeps the entries representing posts, in document order.
func postEntries(f *feed) []entry {
	return lo.Filter(f.Entries, func(e entry, _ int) bool {
		return lo.SomeBy(e.Categories, func(c category) bool {
			return c.Scheme == categoryKindScheme && c.Term == termPost
		})
	})
}

// tags returns the user tags of the entry, in document order.
func (e *entry) tags() []string {
	var tags []string
	for _, c := range e.Categories {
		if c.Scheme == categoryTagScheme {
			tags = append(tags, c.Term)
		}
	}
	return tags
}

// alternateURL returns the entry's public URL. Drafts have none.
func (e *entry) alternateURL() string {
	for _, l := range e.Links {
		if l.Rel == "alternate" {
			return l.Href
		}
	}
	return ""
}
