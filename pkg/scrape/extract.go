package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// cleanText trims and collapses whitespace the way page text usually needs.
func cleanText(s string) string {
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// extractPhotoURL picks one representative photo for the page: a video
// element's poster frame when present, the first image's src otherwise,
// falling back to a lazy-load data-src attribute.
func extractPhotoURL(doc *goquery.Document) string {
	if poster, ok := doc.Find("video").First().Attr("poster"); ok && poster != "" {
		return poster
	}
	img := doc.Find("img").First()
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return src
	}
	return ""
}
