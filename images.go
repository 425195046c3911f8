package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"git.jlel.se/jlelse/blogger2hugo/pkgs/bufferpool"
	"git.jlel.se/jlelse/blogger2hugo/pkgs/utils"
	"github.com/PuerkitoBio/goquery"
	"github.com/carlmjohnson/requests"
)

// The /s1600-h/ style Blogger endpoints return an HTML wrapper page
// instead of the image itself.
var htmlWrapperRegex = regexp.MustCompile(`/(s\d+)-h/`)

// localizeImages rewrites every image of the fragment to reference a
// locally downloaded file, picking the highest resolution source
// available. It mutates and returns the document for chaining.
func (a *blogger2hugo) localizeImages(ctx context.Context, doc *goquery.Document, folder string) (*goquery.Document, error) {
	var outerErr error
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		if !ok {
			return true
		}
		src = upgradeImageSize(img, src, "height", "data-original-height")
		src = upgradeImageSize(img, src, "width", "data-original-width")
		// An enclosing link with the same file extension is the usual
		// thumbnail-linking-to-original pattern, take the link target and
		// replace the whole link.
		target := img
		if parent := img.Parent(); parent.Is("a") {
			if href, ok := parent.Attr("href"); ok && hasIdenticalExtension(src, href) {
				target = parent
				src = href
			}
		}
		src = htmlWrapperRegex.ReplaceAllString(src, "/$1/")
		a.debug("Resolved image source", "url", src)
		name, err := imageFileName(src)
		if err != nil {
			outerErr = err
			return false
		}
		if err := a.downloadImage(ctx, src, filepath.Join(folder, name)); err != nil {
			outerErr = err
			return false
		}
		target.ReplaceWithHtml(fmt.Sprintf("<img src=%q>", name))
		return true
	})
	return doc, outerErr
}

// upgradeImageSize rewrites the size token of the source path from the
// rendered size to the original size, when the element carries both.
// Recovers full resolution images the export only links at display size.
func upgradeImageSize(img *goquery.Selection, src, sizeAttr, originalSizeAttr string) string {
	size, hasSize := img.Attr(sizeAttr)
	originalSize, hasOriginalSize := img.Attr(originalSizeAttr)
	if !hasSize || !hasOriginalSize {
		return src
	}
	return strings.ReplaceAll(src, "/s"+size+"/", "/s"+originalSize+"/")
}

func hasIdenticalExtension(a, b string) bool {
	return a[strings.LastIndex(a, ".")+1:] == b[strings.LastIndex(b, ".")+1:]
}

// imageFileName derives the local filename as the final path segment of
// the resolved URL.
func imageFileName(src string) (string, error) {
	u, err := url.Parse(src)
	if err != nil {
		return "", parseError(err, "can not parse image source %q", src)
	}
	return path.Base(u.Path), nil
}

func (a *blogger2hugo) downloadImage(ctx context.Context, src, file string) error {
	if _, err := os.Stat(file); err == nil {
		return collisionError("image file %s already exists", file)
	}
	a.info("Downloading image", "url", src)
	buf := bufferpool.Get()
	defer bufferpool.Put(buf)
	err := requests.
		URL(src).
		Client(a.httpClient).
		ToBytesBuffer(buf).
		Fetch(ctx)
	if err != nil {
		return networkError(err, "can not download image %s", src)
	}
	return utils.SaveToFile(buf, file)
}
