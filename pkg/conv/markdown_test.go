package conv

import (
	"testing"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "I spent six years at Acme",
			expected: "I spent six years at Acme\n",
		},
		{
			name:     "bold text",
			input:    "**Staff Engineer**",
			expected: "<strong>Staff Engineer</strong>\n",
		},
		{
			name:     "italic text",
			input:    "*tenure*",
			expected: "<em>tenure</em>\n",
		},
		{
			name:     "inline code",
			input:    "`kubectl`",
			expected: "<code>kubectl</code>\n",
		},
		{
			name:     "code block with language",
			input:    "```go\nfunc main() {}\n```",
			expected: "<pre><code class=\"language-go\">func main() {}\n</code></pre>\n",
		},
		{
			name:     "blockquote",
			input:    "> quote",
			expected: "<blockquote>\nquote\n</blockquote>\n",
		},
		{
			name:     "link keeps href only",
			input:    "[profile](https://example.com)",
			expected: "<a href=\"https://example.com\">profile</a>\n",
		},
		{
			name:     "header tags stripped",
			input:    "# Experience",
			expected: "Experience\n",
		},
		{
			name:     "script tags sanitized",
			input:    "<script>alert('xss')</script>",
			expected: "\n",
		},
		{
			name:     "mixed formatting",
			input:    "**Bold** and *italic* with `code`",
			expected: "<strong>Bold</strong> and <em>italic</em> with <code>code</code>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			if got != tt.expected {
				t.Errorf("MarkdownToTelegramHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
