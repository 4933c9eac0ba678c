package mdsite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.HTMLConverter        = (*nativeConverter)(nil)
)

// converterConfig holds options collected before NewConverter resolves them.
type converterConfig struct {
	engine       string
	template     string
	hasTemplate  bool
	templateName string
	assetPath    string
	rewriteLinks bool
}

// Converter turns Markdown pages into HTML pages.
// A Converter is immutable after NewConverter and safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	loader        assets.TemplateLoader
	template      string
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
}

// NewConverter creates a Converter using the native engine and the embedded
// page template unless options say otherwise.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:       EngineNative,
			templateName: assets.DefaultTemplateName,
		},
		preprocessor: &pipeline.LineEndingPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	htmlConverter, err := newHTMLConverter(c.cfg.engine)
	if err != nil {
		return nil, err
	}
	c.htmlConverter = htmlConverter

	resolver, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.loader = resolver

	if c.cfg.hasTemplate {
		c.template = c.cfg.template
	} else {
		c.template, err = c.loadTemplate(c.cfg.templateName)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Engine returns the name of the configured Markdown engine.
func (c *Converter) Engine() string {
	return c.cfg.engine
}

// Convert runs the page pipeline: preprocessing, front matter, Markdown to
// HTML, optional link rewriting, title resolution and template substitution.
// Internal panics are recovered and returned as errors.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	content := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	meta, body, err := ParseFrontMatter(content)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMarkdown
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	if c.cfg.rewriteLinks {
		fragment, err = pipeline.RewriteMarkdownLinks(fragment)
		if err != nil {
			return nil, fmt.Errorf("rewriting links: %w", err)
		}
	}

	result = &Result{Content: fragment, Draft: meta.Draft}
	if input.FragmentOnly {
		result.HTML = []byte(fragment)
		return result, nil
	}

	result.Title = meta.Title
	if result.Title == "" {
		result.Title, err = ExtractTitle(body)
		if err != nil {
			return nil, err
		}
	}

	tmpl := c.template
	if meta.Template != "" {
		tmpl, err = c.loadTemplate(meta.Template)
		if err != nil {
			return nil, err
		}
	}

	result.HTML = []byte(RenderPage(tmpl, result.Title, fragment))
	return result, nil
}

func (c *Converter) loadTemplate(name string) (string, error) {
	tmpl, err := c.loader.LoadTemplate(name)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) {
			return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("loading template %q: %w", name, err)
	}
	return tmpl, nil
}

func newHTMLConverter(engine string) (pipeline.HTMLConverter, error) {
	switch engine {
	case EngineNative:
		return &nativeConverter{}, nil
	case EngineGoldmark:
		return pipeline.NewGoldmarkConverter(), nil
	}
	return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownEngine, engine, EngineNative, EngineGoldmark)
}

// nativeConverter renders with ParseDocument.
type nativeConverter struct{}

// ToHTML parses content and renders the resulting tree.
func (n *nativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := ParseDocument(content)
	if err != nil {
		return "", err
	}
	return doc.Render(), nil
}
