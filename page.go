package mdsite

import "strings"

// Template placeholders replaced by RenderPage.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// RenderPage substitutes every title and content placeholder in tmpl.
// Substitution is a single pass: placeholders appearing inside title or
// content are not expanded again.
func RenderPage(tmpl, title, content string) string {
	r := strings.NewReplacer(TitlePlaceholder, title, ContentPlaceholder, content)
	return r.Replace(tmpl)
}
