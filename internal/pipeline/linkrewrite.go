package pipeline

import (
	"errors"
	"io"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteMarkdownLinks points relative links to Markdown files at the pages
// generated from them: <a href="guide/setup.md#install"> becomes
// <a href="guide/setup.html#install">.
//
// Only the rewritten <a> tags are re-serialized; every other byte of the
// input is copied through unchanged.
//
// Does NOT rewrite:
//   - URLs with a scheme or protocol-relative URLs
//   - absolute paths and bare anchors
//   - img, link or script references
func RewriteMarkdownLinks(content string) (string, error) {
	if !strings.Contains(content, ".md") {
		return content, nil
	}

	z := html.NewTokenizer(strings.NewReader(content))
	var buf strings.Builder
	buf.Grow(len(content))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return buf.String(), nil
			}
			return "", z.Err()
		}

		// Token lowercases the tokenizer buffer in place; keep the raw bytes.
		raw := append([]byte(nil), z.Raw()...)

		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			tok := z.Token()
			if tok.DataAtom == atom.A && rewriteHref(tok.Attr) {
				buf.WriteString(tok.String())
				continue
			}
		}
		buf.Write(raw)
	}
}

// rewriteHref updates the first href attribute in place.
// Returns true if it was changed.
func rewriteHref(attrs []html.Attribute) bool {
	for i, a := range attrs {
		if a.Key != "href" {
			continue
		}
		target, ok := pageTarget(a.Val)
		if !ok {
			return false
		}
		attrs[i].Val = target
		return true
	}
	return false
}

// pageTarget maps a relative .md reference to its .html page, keeping any
// query or fragment suffix.
func pageTarget(href string) (string, bool) {
	if !isRelativePath(href) {
		return "", false
	}

	p, suffix := href, ""
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		p, suffix = href[:i], href[i:]
	}
	if path.Ext(p) != ".md" {
		return "", false
	}
	return strings.TrimSuffix(p, ".md") + ".html" + suffix, true
}

// isRelativePath returns true if the reference is a path relative to the page.
func isRelativePath(ref string) bool {
	if ref == "" {
		return false
	}

	// Anchors, absolute paths, protocol-relative URLs
	if strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, `\`) {
		return false
	}

	// Any scheme (http:, mailto:, file:, data:) before the first path separator
	if i := strings.Index(ref, ":"); i >= 0 && !strings.ContainsAny(ref[:i], "/?#") {
		return false
	}

	return true
}
