package mdsite

import (
	"fmt"
	"regexp"
	"strings"
)

// SpanKind identifies the inline formatting of a Span.
type SpanKind int

// Span kinds produced by Tokenize.
const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

var spanKindNames = [...]string{
	SpanText:   "text",
	SpanBold:   "bold",
	SpanItalic: "italic",
	SpanCode:   "code",
	SpanLink:   "link",
	SpanImage:  "image",
}

// String returns the lowercase name of the kind.
func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
	return spanKindNames[k]
}

// Span is a typed fragment of inline text.
// URL is only set for SpanLink and SpanImage; use the constructors below
// to keep that invariant.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// TextSpan returns a plain text span.
func TextSpan(text string) Span { return Span{Kind: SpanText, Text: text} }

// BoldSpan returns a bold span.
func BoldSpan(text string) Span { return Span{Kind: SpanBold, Text: text} }

// ItalicSpan returns an italic span.
func ItalicSpan(text string) Span { return Span{Kind: SpanItalic, Text: text} }

// CodeSpan returns an inline code span.
func CodeSpan(text string) Span { return Span{Kind: SpanCode, Text: text} }

// LinkSpan returns a link span with the given anchor text and target.
func LinkSpan(text, url string) Span { return Span{Kind: SpanLink, Text: text, URL: url} }

// ImageSpan returns an image span with the given alt text and source.
func ImageSpan(alt, url string) Span { return Span{Kind: SpanImage, Text: alt, URL: url} }

// String formats the span for test failures and debugging.
func (s Span) String() string {
	if s.Kind == SpanLink || s.Kind == SpanImage {
		return fmt.Sprintf("%s(%q, %q)", s.Kind, s.Text, s.URL)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}

// Precompiled inline patterns. RE2 matching is linear in the input size.
var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// spanPass transforms the Text spans of a sequence, leaving typed spans alone.
type spanPass func([]Span) ([]Span, error)

// inlinePasses run in order: "**" before "*" because the former contains
// the latter, images before links because "![..](..)" contains "[..](..)".
var inlinePasses = []spanPass{
	delimiterPass("**", SpanBold),
	delimiterPass("*", SpanItalic),
	delimiterPass("`", SpanCode),
	patternPass(imagePattern, ImageSpan),
	patternPass(linkPattern, LinkSpan),
}

// Tokenize splits inline text into typed spans.
// Text without any markup yields a single Text span equal to the input.
// An unmatched "**", "*" or "`" returns ErrMalformedDelimiter.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{TextSpan(text)}
	for _, pass := range inlinePasses {
		var err error
		spans, err = pass(spans)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// SplitDelimiter splits the Text spans of spans on delimiter, turning every
// delimited part into a span of the given kind.
func SplitDelimiter(spans []Span, delimiter string, kind SpanKind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != SpanText || !strings.Contains(s.Text, delimiter) {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Text, delimiter)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrMalformedDelimiter, delimiter, s.Text)
		}

		for i := 0; i < len(parts)-1; i += 2 {
			if parts[i] != "" {
				out = append(out, TextSpan(parts[i]))
			}
			out = append(out, Span{Kind: kind, Text: parts[i+1]})
		}
		if last := parts[len(parts)-1]; last != "" {
			out = append(out, TextSpan(last))
		}
	}
	return out, nil
}

// SplitImages extracts ![alt](url) patterns from Text spans.
func SplitImages(spans []Span) []Span {
	return splitPattern(spans, imagePattern, ImageSpan)
}

// SplitLinks extracts [text](url) patterns from Text spans.
func SplitLinks(spans []Span) []Span {
	return splitPattern(spans, linkPattern, LinkSpan)
}

func delimiterPass(delimiter string, kind SpanKind) spanPass {
	return func(spans []Span) ([]Span, error) {
		return SplitDelimiter(spans, delimiter, kind)
	}
}

func patternPass(re *regexp.Regexp, build func(text, url string) Span) spanPass {
	return func(spans []Span) ([]Span, error) {
		return splitPattern(spans, re, build), nil
	}
}

// splitPattern consumes the matches of re left to right. Both patterns have
// exactly two capture groups: the text and the URL.
func splitPattern(spans []Span, re *regexp.Regexp, build func(text, url string) Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != SpanText {
			out = append(out, s)
			continue
		}

		matches := re.FindAllStringSubmatchIndex(s.Text, -1)
		if matches == nil {
			out = append(out, s)
			continue
		}

		pos := 0
		for _, m := range matches {
			if before := s.Text[pos:m[0]]; before != "" {
				out = append(out, TextSpan(before))
			}
			out = append(out, build(s.Text[m[2]:m[3]], s.Text[m[4]:m[5]]))
			pos = m[1]
		}
		if rest := s.Text[pos:]; rest != "" {
			out = append(out, TextSpan(rest))
		}
	}
	return out
}
