package formatter

import (
	"fmt"
	"strings"

	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/tokens"
)

// ToMarkdown renders the token document as a human-readable report: the
// extraction summary followed by one fenced CSS block per populated raw
// category and the semantic alias block.
func ToMarkdown(doc *tokens.Document) string {
	var sb strings.Builder
	summary := doc.Summarize()

	sb.WriteString(fmt.Sprintf("# Design Tokens - %s\n\n", doc.Meta.Source))
	sb.WriteString("This document contains the design tokens extracted from the file's local styles.\n\n")
	sb.WriteString(fmt.Sprintf("- **Version**: %s\n", doc.Meta.Version))
	sb.WriteString(fmt.Sprintf("- **Generated**: %s\n", doc.Meta.GeneratedAt))
	sb.WriteString(fmt.Sprintf("- **Colors**: %d\n", summary.Colors))
	sb.WriteString(fmt.Sprintf("- **Typography**: %d\n", summary.Typography))
	sb.WriteString(fmt.Sprintf("- **Effects**: %d\n", summary.Effects))
	sb.WriteString(fmt.Sprintf("- **Total raw tokens**: %d\n\n", summary.Total))

	sb.WriteString("## Raw Tokens\n\n")
	for _, section := range cssSections {
		m := doc.Raw.ByCategory(section.category)
		if m.Len() == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("### %s\n\n", section.heading))
		sb.WriteString("```css\n")
		for _, key := range m.Keys() {
			t, _ := m.Get(key)
			sb.WriteString(fmt.Sprintf("%s: %s;\n", propertyName("", section.varName, key), valueString(t.Value)))
		}
		sb.WriteString("```\n\n")
	}

	sb.WriteString("## Semantic Aliases\n\n")
	sb.WriteString("```css\n")
	var semantic strings.Builder
	writeSemanticGroup(&semantic, doc.Semantic, "", nil)
	// The shared helper indents for a :root block; strip that here.
	for _, line := range strings.Split(strings.TrimRight(semantic.String(), "\n"), "\n") {
		sb.WriteString(strings.TrimPrefix(line, "  "))
		sb.WriteByte('\n')
	}
	sb.WriteString("```\n")

	return sb.String()
}
