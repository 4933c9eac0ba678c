package main

import (
	"errors"
	"fmt"
	"os"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/logger"
)

// defaultConfigName is looked up when neither --config nor MDSITE_CONFIG is set.
// A missing default config is not an error.
const defaultConfigName = "mdsite"

// loadSiteConfig resolves the config file and applies environment overrides.
// Priority for the file itself: --config > MDSITE_CONFIG > defaultConfigName.
func loadSiteConfig(flagConfig string, env *envConfig, log *logger.Logger) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	explicit := name != ""
	if !explicit {
		name = defaultConfigName
	}

	cfg, err := config.LoadConfig(name)
	switch {
	case err == nil:
		log.ConfigLoaded(name, cfg.Engine)
	case !explicit && errors.Is(err, config.ErrConfigNotFound):
		log.Debug("no config file, using defaults")
		cfg = config.DefaultConfig()
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if !fileutil.IsFilePath(name) {
			searched = config.SearchPaths(name)
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
	default:
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// setTemplate stores a --template value: a file path sets template.path,
// anything else selects a template by name.
func setTemplate(cfg *config.Config, nameOrPath string) {
	if fileutil.IsFilePath(nameOrPath) {
		cfg.Template.Path = nameOrPath
		return
	}
	cfg.Template.Name = nameOrPath
	cfg.Template.Path = ""
}

// mergeRenderFlags applies explicitly set rendering flags over cfg.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.engine != "" {
		cfg.Engine = f.engine
	}
	if f.template != "" {
		setTemplate(cfg, f.template)
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.rewriteLinks {
		cfg.RewriteLinks = true
	}
}

// converterOptions translates cfg into Converter options.
func converterOptions(cfg *config.Config) ([]mdsite.Option, error) {
	opts := []mdsite.Option{
		mdsite.WithEngine(cfg.Engine),
		mdsite.WithAssetPath(cfg.Assets.BasePath),
		mdsite.WithLinkRewrite(cfg.RewriteLinks),
	}

	if cfg.Template.Path != "" {
		content, err := os.ReadFile(cfg.Template.Path) // #nosec G304 -- template path is user-provided
		if err != nil {
			return nil, fmt.Errorf("reading template: %w", err)
		}
		return append(opts, mdsite.WithTemplate(string(content))), nil
	}

	if cfg.Template.Name != "" {
		opts = append(opts, mdsite.WithTemplateName(cfg.Template.Name))
	}
	return opts, nil
}

// newConverter builds the Converter shared by all workers.
func newConverter(cfg *config.Config) (*mdsite.Converter, error) {
	opts, err := converterOptions(cfg)
	if err != nil {
		return nil, err
	}

	conv, err := mdsite.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, mdsite.ErrTemplateNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(assets.NewEmbeddedLoader().Names()))
		}
		return nil, err
	}
	return conv, nil
}

// contentHint returns the hint matching a page error, if any.
func contentHint(err error) string {
	switch {
	case errors.Is(err, mdsite.ErrMalformedDelimiter):
		return hints.ForMalformedDelimiter()
	case errors.Is(err, mdsite.ErrNoTitle):
		return hints.ForNoTitle()
	default:
		return ""
	}
}
