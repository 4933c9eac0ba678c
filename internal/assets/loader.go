package assets

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "page"

// TemplateLoader loads page templates by name (without .html extension).
type TemplateLoader interface {
	// LoadTemplate returns the template content.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
