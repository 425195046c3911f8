package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"git.jlel.se/jlelse/blogger2hugo/pkgs/bufferpool"
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"gopkg.in/yaml.v3"
)

const indexFileName = "index.md"

type frontMatter struct {
	Title     string   `yaml:"title"`
	Slug      string   `yaml:"slug"`
	Published string   `yaml:"published"`
	Author    string   `yaml:"author"`
	Tags      []string `yaml:"tags"`
	Aliases   []string `yaml:"aliases,omitempty"`
}

func (a *blogger2hugo) initMarkdown() {
	a.initMarkdownOnce.Do(func() {
		a.md = md.NewConverter("", true, nil)
	})
}

// convertPost writes one post as a Markdown document with YAML front
// matter into its destination folder, downloading the referenced images
// alongside it.
func (a *blogger2hugo) convertPost(ctx context.Context, rp *resolvedPost, content string) error {
	a.initMarkdown()
	a.info("Starting to process post", "title", rp.title)
	if err := rp.createFolder(); err != nil {
		return err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return parseError(err, "can not parse content of post %q", rp.title)
	}
	doc, err = a.localizeImages(ctx, doc, rp.folder)
	if err != nil {
		return err
	}
	markdown := strings.TrimSpace(a.md.Convert(doc.Find("body")))
	fm := &frontMatter{
		Title:     rp.title,
		Slug:      rp.slug,
		Published: rp.published,
		Author:    rp.author,
		Tags:      rp.tags,
	}
	if !rp.draft && a.cfg.frontAlias {
		// The static site can not serve both /yyyy/mm/slug.html and
		// /yyyy/mm/slug/, the alias lets a clever 404 handle old links.
		fm.Aliases = []string{rp.legacyPath}
	}
	fmBytes, err := yaml.Marshal(fm)
	if err != nil {
		return parseError(err, "can not marshal front matter of post %q", rp.title)
	}
	buf := bufferpool.Get()
	defer bufferpool.Put(buf)
	buf.WriteString(frontMatterSep)
	buf.Write(fmBytes)
	buf.WriteString(frontMatterSep)
	buf.WriteString(markdown)
	buf.WriteString("\n")
	file := filepath.Join(rp.folder, indexFileName)
	if err := os.WriteFile(file, buf.Bytes(), 0666); err != nil {
		return configError("can not write %s: %s", file, err.Error())
	}
	a.info("Saved post", "file", file)
	return nil
}
