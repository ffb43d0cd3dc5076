package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains string
	}{
		{"heading", "# Título", "Título</h1>"},
		{"paragraph", "texto simples", "<p>texto simples</p>"},
		{"bold", "**forte**", "<strong>forte</strong>"},
		{"link", "[site](https://example.com)", `href="https://example.com"`},
		{"gfm table", "| a | b |\n|---|---|\n| 1 | 2 |", "<table>"},
		{"raw html passes through", "<div class=\"aviso\">oi</div>", `<div class="aviso">oi</div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("output %q does not contain %q", got, tt.contains)
			}
		})
	}
}

func TestToHTMLCodeHighlighting(t *testing.T) {
	got, err := ToHTML("```go\npackage main\n```")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(got, "<pre") {
		t.Errorf("expected highlighted code block, got %q", got)
	}
}
