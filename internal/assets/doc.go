// Package assets provides the HTML page templates used to wrap converted
// Markdown.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in "page")
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - custom first, embedded fallback
//
// A template is an HTML file containing the "{{ Title }}" and
// "{{ Content }}" placeholders.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.html
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
