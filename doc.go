// Package mdsite converts a small, strict Markdown dialect to HTML and
// assembles static pages from templates.
//
// # Quick Start
//
// Parse a document into a node tree and render it:
//
//	doc, err := mdsite.ParseDocument("# Hello\n\nSome **bold** text")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Render())
//	// <div><h1>Hello</h1><p>Some <b>bold</b> text</p></div>
//
// Or produce a complete page with the Converter:
//
//	conv, err := mdsite.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, mdsite.Input{Markdown: content})
//
// # Supported Syntax
//
// Documents are split into blocks on blank lines. Each block is one of:
//
//   - heading: 1 to 6 leading '#' characters
//   - code: fenced by ``` on the first and last line, rendered verbatim
//   - quote: every line starts with '>'
//   - unordered list: every line starts with '*' or '-'
//   - ordered list: lines numbered 1., 2., 3. ... in sequence
//   - paragraph: anything else
//
// Inside every block except code, inline markup is recognized in this
// order: **bold**, *italic*, `code`, ![alt](src) and [text](href).
// Emphasis does not nest and markup characters cannot be escaped; an
// unclosed delimiter fails the whole document with ErrMalformedDelimiter.
//
// # Pages
//
// Converter wraps the rendered fragment in an HTML template, replacing
// "{{ Title }}" and "{{ Content }}". The title comes from the page's YAML
// front matter or, failing that, from the first level-1 heading line.
//
// Two engines are available: "native" (the dialect above) and "goldmark"
// (CommonMark with GFM extensions and chroma syntax highlighting):
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithEngine(mdsite.EngineGoldmark),
//	    mdsite.WithAssetPath("/path/to/site/assets"),
//	)
//
// # Concurrency
//
// ParseDocument is a pure function and a Converter is immutable once
// created, so pages can be converted in parallel from many goroutines.
package mdsite
