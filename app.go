package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/samber/lo"
)

type blogger2hugo struct {
	// Config
	cfg *config
	// HTTP Client
	httpClient *http.Client
	// Markdown
	initMarkdownOnce sync.Once
	md               *md.Converter
	// URL map
	urlMap *urlMap
	// Logs
	initLogOnce sync.Once
	logger      *slog.Logger
}

// run converts the whole export, one post at a time, and writes the url
// map last. The first error anywhere aborts the run, partially written
// output is left for the operator to inspect.
func (a *blogger2hugo) run(ctx context.Context) error {
	f, err := loadFeed(a.cfg.bloggerFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.cfg.outputFolder, os.ModePerm); err != nil {
		return configError("can not create output folder %q: %s", a.cfg.outputFolder, err.Error())
	}
	posts := postEntries(f)
	if a.cfg.numPosts >= 0 {
		posts = lo.Slice(posts, 0, a.cfg.numPosts)
	}
	for i := range posts {
		if err := a.processPost(ctx, &posts[i]); err != nil {
			return err
		}
	}
	mapFile := filepath.Join(a.cfg.outputFolder, urlMapFileName)
	a.info("Writing url map", "file", mapFile)
	return a.urlMap.writeFile(mapFile)
}

func (a *blogger2hugo) processPost(ctx context.Context, e *entry) error {
	rp, err := resolvePost(e, a.cfg)
	if err != nil {
		return err
	}
	if !rp.draft {
		a.urlMap.add(rp.legacyURL, rp.newURL)
	}
	return a.convertPost(ctx, rp, e.Content)
}
