package main

import (
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/logger"
)

// envPrefix marks variables read by mdsite.
const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG: config file name or path
	ContentDir string // MDSITE_CONTENT_DIR: Markdown source directory
	StaticDir  string // MDSITE_STATIC_DIR: static files directory
	OutputDir  string // MDSITE_OUTPUT_DIR: site output directory
	Template   string // MDSITE_TEMPLATE: template name or path
	Engine     string // MDSITE_ENGINE: native or goldmark
	Workers    int    // MDSITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_TEMPLATE":    true,
	"MDSITE_ENGINE":      true,
	"MDSITE_WORKERS":     true,
}

// loadEnvConfig reads configuration through getenv.
// Unparseable or non-positive worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDSITE_CONFIG"),
		ContentDir: getenv("MDSITE_CONTENT_DIR"),
		StaticDir:  getenv("MDSITE_STATIC_DIR"),
		OutputDir:  getenv("MDSITE_OUTPUT_DIR"),
		Template:   getenv("MDSITE_TEMPLATE"),
		Engine:     getenv("MDSITE_ENGINE"),
	}

	if workers := getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MDSITE_* variable.
// Catches typos like MDSITE_OUTPUT instead of MDSITE_OUTPUT_DIR.
func warnUnknownEnvVars(log *logger.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			log.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config file values with the environment ones.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by mergeBuildFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.StaticDir != "" {
		cfg.Static.Dir = env.StaticDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Template != "" {
		setTemplate(cfg, env.Template)
	}
	if env.Engine != "" {
		cfg.Engine = env.Engine
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
