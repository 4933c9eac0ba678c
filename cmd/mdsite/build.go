package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
	"github.com/alnah/go-mdsite/internal/logger"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// runBuild generates the site: static copy first, then one page per
// Markdown file under the content directory.
func runBuild(ctx context.Context, args []string, flags *buildFlags, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, strings.Join(args, " "))
	}

	log := newLogger(flags.common, env)
	warnUnknownEnvVars(log, env.Environ())

	cfg, err := loadSiteConfig(flags.common.config, loadEnvConfig(env.Getenv), log)
	if err != nil {
		return err
	}
	mergeBuildFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	if !flags.site.noStatic {
		if err := copyStatic(cfg.Static.Dir, cfg.Output.Dir, log); err != nil {
			return err
		}
	}

	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		log.Warn("no markdown pages found", "content", cfg.Content.Dir)
		return nil
	}

	workers := resolveWorkers(cfg.Workers)
	log.BuildStarted(cfg.Content.Dir, cfg.Output.Dir, len(pages), workers)
	start := env.Now()

	results := generatePages(ctx, conv, pages, workers, cfg.Drafts)
	logResults(log, results)
	summary := printResults(results, flags.common.quiet, flags.common.verbose, env)

	log.BuildCompleted(summary.Generated, summary.Skipped, summary.Failed, env.Now().Sub(start))

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d: %w", ErrPagesFailed, summary.Failed, len(results), summary.FirstErr)
	}
	return nil
}

// mergeBuildFlags applies explicitly set flags over cfg.
func mergeBuildFlags(flags *buildFlags, cfg *config.Config) {
	if flags.site.content != "" {
		cfg.Content.Dir = flags.site.content
	}
	if flags.site.static != "" {
		cfg.Static.Dir = flags.site.static
	}
	if flags.site.output != "" {
		cfg.Output.Dir = flags.site.output
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.drafts {
		cfg.Drafts = true
	}
	mergeRenderFlags(&flags.render, cfg)
}

// copyStatic replaces outputDir with a copy of staticDir.
func copyStatic(staticDir, outputDir string, log *logger.Logger) error {
	err := fileutil.CopyDir(staticDir, outputDir, log.Copied)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fileutil.ErrSourceNotFound), errors.Is(err, fileutil.ErrNotDirectory):
		return fmt.Errorf("copying static files: %w%s", err, hints.ForStaticDirectory())
	case errors.Is(err, fileutil.ErrUnsafeTarget):
		return fmt.Errorf("copying static files: %w", err)
	default:
		return fmt.Errorf("copying static files: %w%s", err, hints.ForOutputDirectory())
	}
}

// logResults emits one log event per generated or skipped page.
// Failures are reported by printResults.
func logResults(log *logger.Logger, results []PageResult) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			continue
		case r.Skipped != "":
			log.PageSkipped(r.Source, r.Skipped)
		default:
			log.PageGenerated(r.Source, r.Dest, r.Size, r.Duration)
		}
	}
}
