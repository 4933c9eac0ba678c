package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidEngine   = errors.New("invalid engine")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrInputTooLarge   = errors.New("config exceeds maximum size")
)

// Limits applied by Validate and LoadConfig.
const (
	MaxPathLength     = 4096    // PATH_MAX on Linux
	MaxNameLength     = 100     // Template name
	MaxWorkers        = 32      // Upper bound for parallel page conversion
	MaxConfigFileSize = 1 << 20 // 1 MiB
)

// AppName is the directory searched under $XDG_CONFIG_HOME.
const AppName = "go-mdsite"

// Engines accepted in the engine field.
var validEngines = []string{"native", "goldmark"}

// Config holds all configuration for a site build.
type Config struct {
	Content  ContentConfig  `yaml:"content"`
	Static   StaticConfig   `yaml:"static"`
	Output   OutputConfig   `yaml:"output"`
	Template TemplateConfig `yaml:"template"`
	Assets   AssetsConfig   `yaml:"assets"`
	Engine   string         `yaml:"engine"`  // "native" or "goldmark"
	Workers  int            `yaml:"workers"` // 0 = auto
	Drafts   bool           `yaml:"drafts"`  // Publish pages marked draft

	// RewriteLinks points relative .md links at the generated .html pages.
	RewriteLinks bool `yaml:"rewriteLinks"`
}

// ContentConfig defines where Markdown pages are read from.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig defines the directory copied verbatim to the output.
type StaticConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where the site is written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// TemplateConfig selects the page template.
type TemplateConfig struct {
	Name string `yaml:"name"` // Template name resolved by the asset loader
	Path string `yaml:"path"` // Template file; takes precedence over Name
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// DefaultConfig returns the conventional site layout:
// content/ -> public/, static/ copied, embedded "page" template.
func DefaultConfig() *Config {
	return &Config{
		Content:  ContentConfig{Dir: "content"},
		Static:   StaticConfig{Dir: "static"},
		Output:   OutputConfig{Dir: "public"},
		Template: TemplateConfig{Name: "page"},
		Engine:   "native",
	}
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for configs built by hand.
func (c *Config) Validate() error {
	paths := []struct {
		field string
		value string
	}{
		{"content.dir", c.Content.Dir},
		{"static.dir", c.Static.Dir},
		{"output.dir", c.Output.Dir},
		{"template.path", c.Template.Path},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("template.name", c.Template.Name, MaxNameLength); err != nil {
		return err
	}

	if c.Engine != "" && !isValidEngine(c.Engine) {
		return fmt.Errorf("%w: %q (must be %s)", ErrInvalidEngine, c.Engine, strings.Join(validEngines, " or "))
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d, 0 means auto)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}

	return nil
}

func isValidEngine(name string) bool {
	for _, e := range validEngines {
		if e == name {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// unmarshalStrict decodes YAML, rejecting unknown fields and oversized input.
// An empty document leaves v untouched.
func unmarshalStrict(data []byte, v any) error {
	if len(data) > MaxConfigFileSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxConfigFileSize)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// the current directory, then $XDG_CONFIG_HOME/go-mdsite/, each with .yaml
// before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"", filepath.Join(xdg.ConfigHome, AppName)}

	paths := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
