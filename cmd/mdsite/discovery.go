package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/hints"
)

// Sentinel errors for page discovery.
var (
	ErrContentDir       = errors.New("cannot read content directory")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// PageFile is a Markdown source and the HTML file generated from it.
type PageFile struct {
	Source string
	Dest   string
}

// discoverPages walks contentDir for Markdown files, in lexical order.
// Each page keeps its relative location under outputDir.
func discoverPages(contentDir, outputDir string) ([]PageFile, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w%s", ErrContentDir, err, hints.ForContentDirectory())
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory%s", ErrContentDir, contentDir, hints.ForContentDirectory())
	}

	var pages []PageFile
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}
		pages = append(pages, PageFile{
			Source: path,
			Dest:   resolveDestPath(path, contentDir, outputDir),
		})
		return nil
	})

	return pages, err
}

// resolveDestPath maps content/<dir>/<base>.md to output/<dir>/<base>.html.
func resolveDestPath(source, contentDir, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ".html"

	rel, err := filepath.Rel(contentDir, source)
	if err != nil {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(outputDir, filepath.Dir(rel), base)
}

func isMarkdownFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
