// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config path to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-mdsite/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateNotFound lists the templates that can be used instead.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("place templates in <asset-path>/templates/<name>.html")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMalformedDelimiter explains the inline markup rules.
func ForMalformedDelimiter() string {
	return format("every *, ** and ` must be closed in the same block; markup cannot be escaped")
}

// ForNoTitle explains where page titles come from.
func ForNoTitle() string {
	return format(`start the page with a "# Title" line or set title in front matter`)
}

// ForContentDirectory returns hints for a missing content directory.
func ForContentDirectory() string {
	return format("use --content <dir> or set content.dir in the config file")
}

// ForStaticDirectory returns hints for a missing static directory.
func ForStaticDirectory() string {
	return format("use --static <dir> or pass --no-static")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
