package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestDiscoverPages - Markdown discovery under the content directory
// ---------------------------------------------------------------------------

func TestDiscoverPages(t *testing.T) {
	t.Parallel()

	t.Run("nested layout", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		content := filepath.Join(root, "content")
		writeFiles(t, content, map[string]string{
			"index.md":             "# Home",
			"blog/first.md":        "# First",
			"blog/2024/second.md":  "# Second",
			"about.markdown":       "# About",
			"notes.txt":            "not a page",
			"images/logo.png":      "png",
			"blog/draft.md.backup": "nope",
		})
		out := filepath.Join(root, "public")

		got, err := discoverPages(content, out)
		if err != nil {
			t.Fatalf("discoverPages() error = %v", err)
		}

		want := []PageFile{
			{filepath.Join(content, "about.markdown"), filepath.Join(out, "about.html")},
			{filepath.Join(content, "blog", "2024", "second.md"), filepath.Join(out, "blog", "2024", "second.html")},
			{filepath.Join(content, "blog", "first.md"), filepath.Join(out, "blog", "first.html")},
			{filepath.Join(content, "index.md"), filepath.Join(out, "index.html")},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("discoverPages() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		got, err := discoverPages(t.TempDir(), "public")
		if err != nil {
			t.Fatalf("discoverPages() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d pages, want 0", len(got))
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := discoverPages(filepath.Join(t.TempDir(), "nope"), "public")
		if !errors.Is(err, ErrContentDir) {
			t.Errorf("error = %v, want ErrContentDir", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist in chain", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{"page.md": "# P"})

		_, err := discoverPages(filepath.Join(root, "page.md"), "public")
		if !errors.Is(err, ErrContentDir) {
			t.Errorf("error = %v, want ErrContentDir", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveDestPath - Output path mapping
// ---------------------------------------------------------------------------

func TestResolveDestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		content string
		output  string
		want    string
	}{
		{"top level", "content/index.md", "content", "public", filepath.Join("public", "index.html")},
		{"nested", "content/a/b/c.md", "content", "public", filepath.Join("public", "a", "b", "c.html")},
		{"markdown extension", "content/x.markdown", "content", "out", filepath.Join("out", "x.html")},
		{"dotted name", "content/v1.2.md", "content", "public", filepath.Join("public", "v1.2.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveDestPath(filepath.FromSlash(tt.source), tt.content, tt.output)
			if got != tt.want {
				t.Errorf("resolveDestPath(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateMarkdownExtension - Single-file input check
// ---------------------------------------------------------------------------

func TestValidateMarkdownExtension(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"a.md", "dir/b.markdown"} {
		if err := validateMarkdownExtension(path); err != nil {
			t.Errorf("validateMarkdownExtension(%q) = %v, want nil", path, err)
		}
	}
	for _, path := range []string{"a.txt", "README", "a.MD", "a.md.bak"} {
		if err := validateMarkdownExtension(path); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("validateMarkdownExtension(%q) = %v, want ErrInvalidExtension", path, err)
		}
	}
}
