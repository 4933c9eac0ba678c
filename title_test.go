package mdsite

import (
	"errors"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "after blank lines", input: "\n\n# title\n", want: "title"},
		{name: "no space and trailing blanks", input: "\n#title #1  \n", want: "title #1"},
		{name: "extra spaces", input: "#   title\n", want: "title"},
		{name: "skips subheadings", input: "## sub\n# main", want: "main"},
		{name: "first of several", input: "# one\n# two", want: "one"},
		{name: "skips empty heading", input: "#   \n# real", want: "real"},
		{name: "heading must start the line", input: " # indented\n", wantErr: ErrNoTitle},
		{name: "only subheadings", input: "## sub\nno", wantErr: ErrNoTitle},
		{name: "empty", input: "", wantErr: ErrNoTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractTitle(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ExtractTitle(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractTitle(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
