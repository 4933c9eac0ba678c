// Package pipeline implements the page conversion stages that surround the
// native Markdown parser:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML conversion via Goldmark, as an alternative engine
//   - HTML postprocessing (relative .md links rewritten to .html pages)
//
// The native constrained-Markdown parser lives in the root mdsite package.
// Both engines satisfy HTMLConverter so the converter can swap them by name.
package pipeline
