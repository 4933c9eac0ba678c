package main

import (
	"context"
	"fmt"
	"io"
	"os"

	mdsite "github.com/alnah/go-mdsite"
)

// stdinArg reads the page from standard input.
const stdinArg = "-"

// runConvert writes the HTML for a single Markdown file to stdout:
// the fragment by default, the complete page with --page.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: convert takes exactly one file (or - for stdin), got %d", ErrUsage, len(args))
	}

	log := newLogger(flags.common, env)
	cfg, err := loadSiteConfig(flags.common.config, loadEnvConfig(env.Getenv), log)
	if err != nil {
		return err
	}
	mergeRenderFlags(&flags.render, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	markdown, err := readSource(args[0], env.Stdin)
	if err != nil {
		return err
	}

	out, err := conv.Convert(ctx, mdsite.Input{Markdown: markdown, FragmentOnly: !flags.page})
	if err != nil {
		return fmt.Errorf("%s: %w%s", args[0], err, contentHint(err))
	}

	if _, err := fmt.Fprintf(env.Stdout, "%s\n", out.HTML); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// readSource reads a Markdown file, or stdin for "-".
func readSource(path string, stdin io.Reader) (string, error) {
	if path == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrReadMarkdown, err)
		}
		return string(data), nil
	}

	if err := validateMarkdownExtension(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(data), nil
}
