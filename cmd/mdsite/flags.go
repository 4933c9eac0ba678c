package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds the directory layout flags.
type siteFlags struct {
	content  string
	static   string
	output   string
	noStatic bool
}

// renderFlags holds flags that shape the generated HTML.
type renderFlags struct {
	engine       string
	template     string // Name or path
	assetPath    string
	rewriteLinks bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	render  renderFlags
	workers int
	drafts  bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	render renderFlags
	page   bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
}

func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "Markdown source directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "site output directory")
	fs.BoolVar(&f.noStatic, "no-static", false, "skip copying static files")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.engine, "engine", "", "Markdown engine: native, goldmark")
	fs.StringVar(&f.template, "template", "", "page template name or .html file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template directory")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "point relative .md links at .html pages")
}

// newFlagSet creates a flag set that reports errors instead of exiting.
func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.SortFlags = false
	return fs
}

// parseBuildFlags parses build flags and returns the positional arguments.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", w)
	fs.Usage = func() { printBuildUsage(w) }

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addRenderFlags(fs, &f.render)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "publish pages marked draft")

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert flags and returns the positional arguments.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", w)
	fs.Usage = func() { printConvertUsage(w) }

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	fs.BoolVar(&f.page, "page", false, "wrap the fragment in the page template")

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}

// wrapFlagError marks parse failures as usage errors; --help passes through.
func wrapFlagError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
