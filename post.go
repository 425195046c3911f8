package main

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/araddon/dateparse"
)

// resolvedPost is the destination and metadata of one post, decided once
// by resolvePost. A post is a draft iff the entry has no alternate link,
// callers never check the link again. The legacy and new URL fields are
// only set for published posts.
type resolvedPost struct {
	title     string
	author    string
	tags      []string
	published string // YYYY-MM-DD
	slug      string
	folder    string
	draft     bool
	// Published posts only
	legacyPath string
	legacyURL  string
	newURL     string
}

func resolvePost(e *entry, cfg *config) (*resolvedPost, error) {
	published, err := dateparse.ParseAny(e.Published)
	if err != nil {
		return nil, parseError(err, "can not parse published timestamp %q of post %q", e.Published, e.Title)
	}
	rp := &resolvedPost{
		title:     e.Title,
		author:    e.AuthorName,
		tags:      e.tags(),
		published: published.Format("2006-01-02"),
	}
	alternate := e.alternateURL()
	if alternate == "" {
		rp.draft = true
		rp.slug = urlize(e.Title)
		rp.folder = filepath.Join(cfg.outputFolder, "draft_posts", rp.published+"-"+rp.slug)
		return rp, nil
	}
	alternateParsed, err := url.Parse(alternate)
	if err != nil {
		return nil, parseError(err, "can not parse alternate link %q of post %q", alternate, e.Title)
	}
	legacyPath := alternateParsed.Path
	rp.slug = strings.TrimSuffix(path.Base(legacyPath), path.Ext(legacyPath))
	rp.folder = filepath.Join(cfg.outputFolder, "post", fmt.Sprintf("%04d", published.Year()), rp.published+"-"+rp.slug)
	rp.legacyPath = legacyPath
	rp.legacyURL = alternate
	rp.newURL = cfg.newRoot + path.Dir(legacyPath) + "/" + rp.slug
	return rp, nil
}

// createFolder creates the post's destination folder. A folder that
// already exists means two posts resolved to the same destination, that
// is surfaced instead of silently merged.
func (rp *resolvedPost) createFolder() error {
	if err := os.MkdirAll(filepath.Dir(rp.folder), os.ModePerm); err != nil {
		return configError("can not create output folders for post %q: %s", rp.title, err.Error())
	}
	if err := os.Mkdir(rp.folder, os.ModePerm); err != nil {
		if os.IsExist(err) {
			return collisionError("destination %s of post %q already exists", rp.folder, rp.title)
		}
		return configError("can not create destination %s of post %q: %s", rp.folder, rp.title, err.Error())
	}
	return nil
}
