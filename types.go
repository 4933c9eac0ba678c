package mdsite

// Engine names accepted by WithEngine.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Input contains the data for a single page conversion.
type Input struct {
	Markdown string // Page source, optionally starting with front matter

	// FragmentOnly skips title extraction and template substitution;
	// Result.HTML then holds the converted fragment.
	FragmentOnly bool
}

// Result is the outcome of a page conversion.
type Result struct {
	Title   string // Front matter title, else the first level-1 heading
	Content string // HTML fragment produced by the engine
	HTML    []byte // Complete page, or the fragment when Input.FragmentOnly
	Draft   bool   // Set from front matter; callers decide whether to publish
}

// Option configures a Converter.
type Option func(*Converter)

// WithEngine selects the Markdown engine by name ("native" or "goldmark").
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithTemplate sets the page template content directly, bypassing the loader.
func WithTemplate(content string) Option {
	return func(c *Converter) {
		c.cfg.template = content
		c.cfg.hasTemplate = true
	}
}

// WithTemplateName selects a named template from the asset loader.
func WithTemplateName(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath sets a directory of custom templates ({path}/templates/{name}.html).
// Templates not found there fall back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithLinkRewrite makes relative links to .md files point at the .html
// pages generated from them.
func WithLinkRewrite(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = enabled
	}
}
