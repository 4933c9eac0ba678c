package mdsite

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantMeta FrontMatter
		wantBody string
	}{
		{
			name:     "no front matter",
			input:    "# Title\n\nbody",
			wantMeta: FrontMatter{},
			wantBody: "# Title\n\nbody",
		},
		{
			name:     "all fields",
			input:    "---\ntitle: \"  About us \"\ntemplate: plain\ndraft: true\n---\n# Heading\n",
			wantMeta: FrontMatter{Title: "About us", Template: "plain", Draft: true},
			wantBody: "# Heading\n",
		},
		{
			name:     "unknown keys ignored",
			input:    "---\ntitle: T\nauthor: someone\n---\nbody",
			wantMeta: FrontMatter{Title: "T"},
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, err := ParseFrontMatter(tt.input)
			if err != nil {
				t.Fatalf("ParseFrontMatter() unexpected error: %v", err)
			}
			if meta != tt.wantMeta {
				t.Errorf("meta = %+v, want %+v", meta, tt.wantMeta)
			}
			if strings.TrimSpace(body) != strings.TrimSpace(tt.wantBody) {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseFrontMatter_Malformed(t *testing.T) {
	t.Parallel()

	_, _, err := ParseFrontMatter("---\ntitle: [unclosed\n---\n# x")
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("error = %v, want ErrFrontMatter", err)
	}
}
