package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestConvert - Single file conversion to stdout
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"mdsite.yaml": "",
		"page.md":     "# Notes\n\n- one\n- two\n\n> quoted",
		"links.md":    "# L\n\nRead [next](next.md)",
	})
	cfg := filepath.Join(root, "mdsite.yaml")

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "fragment",
			args: []string{"convert", filepath.Join(root, "page.md")},
			want: "<div><h1>Notes</h1><ul><li>one</li><li>two</li></ul><blockquote>quoted</blockquote></div>\n",
		},
		{
			name:  "stdin",
			args:  []string{"convert", "-"},
			stdin: "Say *hi*",
			want:  "<div><p>Say <i>hi</i></p></div>\n",
		},
		{
			name: "full page with custom template file",
			args: []string{"convert", filepath.Join(root, "page.md"), "--page", "--template", filepath.Join(root, "t.html")},
			want: "<title>Notes</title>\n",
		},
		{
			name: "rewrite links",
			args: []string{"convert", filepath.Join(root, "links.md"), "--rewrite-links"},
			want: `<div><h1>L</h1><p>Read <a href="next.html">next</a></p></div>` + "\n",
		},
	}
	writeFiles(t, root, map[string]string{"t.html": "<title>{{ Title }}</title>"})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			env.Stdin = strings.NewReader(tt.stdin)

			args := append([]string{"mdsite"}, tt.args...)
			args = append(args, "-c", cfg)
			if code := runMain(context.Background(), args, env.Environment); code != ExitSuccess {
				t.Fatalf("exit code = %d, stderr: %s", code, env.stderr.String())
			}
			if got := env.stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert_Errors - Exit codes for single file conversion
// ---------------------------------------------------------------------------

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"mdsite.yaml": "",
		"bad.md":      "text with **never closed",
		"untitled.md": "just text",
		"notes.txt":   "# T",
	})
	cfg := filepath.Join(root, "mdsite.yaml")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"no file", []string{"convert"}, ExitUsage, "exactly one file"},
		{"two files", []string{"convert", "a.md", "b.md"}, ExitUsage, "exactly one file"},
		{"wrong extension", []string{"convert", filepath.Join(root, "notes.txt")}, ExitUsage, ".md or .markdown"},
		{"missing file", []string{"convert", filepath.Join(root, "absent.md")}, ExitIO, "failed to read markdown file"},
		{"malformed markup", []string{"convert", filepath.Join(root, "bad.md")}, ExitContent, "hint: every *"},
		{"page needs a title", []string{"convert", filepath.Join(root, "untitled.md"), "--page"}, ExitContent, "no title found"},
		{"unknown engine", []string{"convert", filepath.Join(root, "bad.md"), "--engine", "x"}, ExitUsage, "invalid engine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(nil)
			args := append([]string{"mdsite"}, tt.args...)
			args = append(args, "-c", cfg)

			if code := runMain(context.Background(), args, env.Environment); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.wantCode, env.stderr.String())
			}
			if !strings.Contains(env.stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want %q", env.stderr.String(), tt.wantErr)
			}
			if env.stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty on error", env.stdout.String())
			}
		})
	}
}
