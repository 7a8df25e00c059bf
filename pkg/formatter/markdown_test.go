package formatter

import (
	"strings"
	"testing"
)

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(sampleDocument())

	wants := []string{
		"# Design Tokens - My File",
		"- **Colors**: 1",
		"- **Typography**: 3",
		"### Colors",
		"--color-blue-500: #1976D2;",
		"## Semantic Aliases",
		"--color-brand-primary: var(--color-blue-500);",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("ToMarkdown() missing %q", want)
		}
	}

	if strings.Contains(md, "### Shadows") {
		t.Error("ToMarkdown() rendered an empty shadow section")
	}
}
