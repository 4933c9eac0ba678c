package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdsite "github.com/alnah/go-mdsite"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and site fixtures
// ---------------------------------------------------------------------------

// testEnv is an Environment whose streams are buffers and whose process
// environment comes from a map, so tests can run in parallel.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}

	return &testEnv{
		Environment: &Environment{
			Now:     func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
			Stdin:   strings.NewReader(""),
			Stdout:  stdout,
			Stderr:  stderr,
			Getenv:  func(k string) string { return vars[k] },
			Environ: func() []string { return environ },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// writeFiles creates files under root from a relative path -> content map.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

// readFile returns the content of a file, failing the test if it is missing.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// siteArgs returns build arguments pointing every directory into root,
// with an empty config file so no user config is picked up.
func siteArgs(t *testing.T, root string, extra ...string) []string {
	t.Helper()

	cfgPath := filepath.Join(root, "mdsite.yaml")
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		writeFiles(t, root, map[string]string{"mdsite.yaml": ""})
	}

	args := []string{
		"mdsite", "build",
		"--config", cfgPath,
		"--content", filepath.Join(root, "content"),
		"--static", filepath.Join(root, "static"),
		"--output", filepath.Join(root, "public"),
	}
	return append(args, extra...)
}

// stubConverter wraps the Markdown in <p>, or fails with err when set.
type stubConverter struct {
	err error
}

func (s *stubConverter) Convert(ctx context.Context, input mdsite.Input) (*mdsite.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return &mdsite.Result{Title: "T", HTML: []byte("<p>" + input.Markdown + "</p>")}, nil
}
