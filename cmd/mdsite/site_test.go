package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/logger"
)

// ---------------------------------------------------------------------------
// TestLoadSiteConfig - Config file selection and environment overrides
// ---------------------------------------------------------------------------

func TestLoadSiteConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"flag.yaml": "engine: goldmark\n",
		"env.yaml":  "output:\n  dir: site\n",
	})
	flagPath := filepath.Join(root, "flag.yaml")
	envPath := filepath.Join(root, "env.yaml")

	t.Run("flag wins over MDSITE_CONFIG", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadSiteConfig(flagPath, &envConfig{ConfigPath: envPath}, logger.Discard())
		if err != nil {
			t.Fatalf("loadSiteConfig() error = %v", err)
		}
		if cfg.Engine != "goldmark" || cfg.Output.Dir != "public" {
			t.Errorf("cfg = %+v, want flag.yaml values", cfg)
		}
	})

	t.Run("MDSITE_CONFIG used without flag", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadSiteConfig("", &envConfig{ConfigPath: envPath}, logger.Discard())
		if err != nil {
			t.Fatalf("loadSiteConfig() error = %v", err)
		}
		if cfg.Output.Dir != "site" {
			t.Errorf("Output.Dir = %q, want site", cfg.Output.Dir)
		}
	})

	t.Run("environment applied over file", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadSiteConfig(flagPath, &envConfig{Engine: "native", Workers: 2}, logger.Discard())
		if err != nil {
			t.Fatalf("loadSiteConfig() error = %v", err)
		}
		if cfg.Engine != "native" || cfg.Workers != 2 {
			t.Errorf("cfg = %+v, want env values", cfg)
		}
	})

	t.Run("explicit missing path", func(t *testing.T) {
		t.Parallel()

		_, err := loadSiteConfig(filepath.Join(root, "absent.yaml"), &envConfig{}, logger.Discard())
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint: use --config") {
			t.Errorf("error %q missing hint", err)
		}
	})

	t.Run("explicit missing name lists user config", func(t *testing.T) {
		t.Parallel()

		_, err := loadSiteConfig("no-such-site-config", &envConfig{}, logger.Discard())
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "or create ") {
			t.Errorf("error %q missing user config suggestion", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestNewConverter - Config to Converter
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		conv, err := newConverter(config.DefaultConfig())
		if err != nil {
			t.Fatalf("newConverter() error = %v", err)
		}
		if conv.Engine() != mdsite.EngineNative {
			t.Errorf("Engine() = %q, want native", conv.Engine())
		}
	})

	t.Run("template not found lists embedded templates", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Template.Name = "missing"

		_, err := newConverter(cfg)
		if !errors.Is(err, mdsite.ErrTemplateNotFound) {
			t.Fatalf("error = %v, want ErrTemplateNotFound", err)
		}
		if !strings.Contains(err.Error(), "available: page") {
			t.Errorf("error %q missing available templates", err)
		}
	})

	t.Run("template file missing", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Template.Path = filepath.Join(t.TempDir(), "absent.html")

		_, err := newConverter(cfg)
		if exitCodeFor(err) != ExitIO {
			t.Errorf("exitCodeFor(%v) = %d, want %d", err, exitCodeFor(err), ExitIO)
		}
	})

	t.Run("asset path that is not a directory", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Assets.BasePath = filepath.Join(t.TempDir(), "absent")

		_, err := newConverter(cfg)
		if !errors.Is(err, mdsite.ErrInvalidAssetPath) {
			t.Errorf("error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestContentHint - Hints for page errors
// ---------------------------------------------------------------------------

func TestContentHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"malformed delimiter", fmt.Errorf("x: %w", mdsite.ErrMalformedDelimiter), "must be closed"},
		{"no title", mdsite.ErrNoTitle, "# Title"},
		{"other", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := contentHint(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("contentHint() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("contentHint() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
