package mdsite

import "errors"

// Sentinel errors for library operations.
var (
	// Inline parsing errors.
	ErrMalformedDelimiter = errors.New("matching closing delimiter not found")

	// Node construction errors.
	ErrInvalidNode = errors.New("invalid node construction")

	// Page conversion errors.
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrNoTitle        = errors.New("no title found")
	ErrFrontMatter    = errors.New("invalid front matter")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Configuration errors.
	ErrUnknownEngine    = errors.New("unknown conversion engine")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplateNotFound = errors.New("template not found")
)
