package mdsite

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the optional YAML header of a page:
//
//	---
//	title: About
//	template: plain
//	draft: true
//	---
type FrontMatter struct {
	Title    string `yaml:"title"`
	Template string `yaml:"template"`
	Draft    bool   `yaml:"draft"`
}

// ParseFrontMatter splits a document into its front matter and body.
// A document without front matter is returned unchanged with a zero FrontMatter.
func ParseFrontMatter(markdown string) (FrontMatter, string, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(strings.NewReader(markdown), &meta)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	meta.Title = strings.TrimSpace(meta.Title)
	return meta, string(body), nil
}
