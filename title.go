package mdsite

import (
	"regexp"
	"strings"
)

// titleLine matches a level-1 heading line. The space after '#' is optional.
var titleLine = regexp.MustCompile(`^#([^#].*)`)

// ExtractTitle returns the text of the first level-1 heading line,
// with surrounding whitespace removed.
// Returns ErrNoTitle if the document has no such line.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		if m := titleLine.FindStringSubmatch(line); m != nil {
			if title := strings.TrimSpace(m[1]); title != "" {
				return title, nil
			}
		}
	}
	return "", ErrNoTitle
}
