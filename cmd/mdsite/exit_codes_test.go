package main

// Notes:
// - exitCodeFor: we test the sentinel errors of every package plus wrapped
//   and joined errors to verify the errors.Is() chain.
// - Content errors take priority over I/O errors when a batch failure
//   wraps both ErrPagesFailed and a page error.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Content errors (exit 4)
		{"malformed delimiter", mdsite.ErrMalformedDelimiter, ExitContent},
		{"invalid node", mdsite.ErrInvalidNode, ExitContent},
		{"no title", mdsite.ErrNoTitle, ExitContent},
		{"front matter", mdsite.ErrFrontMatter, ExitContent},
		{"empty markdown", mdsite.ErrEmptyMarkdown, ExitContent},
		{"batch failure on content", fmt.Errorf("%w: 1 of 2: %w", ErrPagesFailed, mdsite.ErrNoTitle), ExitContent},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"static source missing", fileutil.ErrSourceNotFound, ExitIO},
		{"static not a directory", fileutil.ErrNotDirectory, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write page", ErrWritePage, ExitIO},
		{"content dir", ErrContentDir, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"config engine", config.ErrInvalidEngine, ExitUsage},
		{"config workers", config.ErrInvalidWorkers, ExitUsage},
		{"config too large", config.ErrInputTooLarge, ExitUsage},
		{"unknown engine", mdsite.ErrUnknownEngine, ExitUsage},
		{"invalid asset path", mdsite.ErrInvalidAssetPath, ExitUsage},
		{"template not found", mdsite.ErrTemplateNotFound, ExitUsage},
		{"unsafe target", fileutil.ErrUnsafeTarget, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"pages failed alone", ErrPagesFailed, ExitGeneral},
		{"html conversion", mdsite.ErrHTMLConversion, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	// Codes 126+ are reserved by shells
	for _, code := range []int{ExitIO, ExitContent} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved range", code)
		}
	}
}
