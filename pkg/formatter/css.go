package formatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/tokens"
)

// cssSection pairs a raw category with its custom-property name segment and
// a human heading. Order matches the raw token set.
type cssSection struct {
	category tokens.Category
	varName  string
	heading  string
}

var cssSections = []cssSection{
	{tokens.CategoryColor, "color", "Colors"},
	{tokens.CategoryFontSize, "text", "Font Sizes"},
	{tokens.CategorySpacing, "space", "Spacing Scale"},
	{tokens.CategoryFontFamily, "font-family", "Font Families"},
	{tokens.CategoryFontWeight, "font-weight", "Font Weights"},
	{tokens.CategoryLineHeight, "leading", "Line Heights"},
	{tokens.CategoryLetterSpacing, "tracking", "Letter Spacing"},
	{tokens.CategoryBorderRadius, "radius", "Border Radius"},
	{tokens.CategoryBoxShadow, "shadow", "Shadows"},
	{tokens.CategoryOpacity, "opacity", "Opacity"},
}

var rawReference = regexp.MustCompile(`^\{raw\.([a-zA-Z]+)\.(.+)\}$`)

// ToCSS renders the token document as CSS custom properties: one :root
// block for the raw layer, one for the semantic aliases. Semantic
// references become var() lookups against the raw properties; literal
// fallbacks stay inline. An optional prefix is prepended to every property
// name.
func ToCSS(doc *tokens.Document, prefix string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("/* Design tokens generated from %s (v%s, %s) */\n\n",
		doc.Meta.Source, doc.Meta.Version, doc.Meta.GeneratedAt))

	sb.WriteString(":root {\n")
	for _, section := range cssSections {
		m := doc.Raw.ByCategory(section.category)
		if m.Len() == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  /* %s */\n", section.heading))
		for _, key := range m.Keys() {
			t, _ := m.Get(key)
			sb.WriteString(fmt.Sprintf("  %s: %s;\n",
				propertyName(prefix, section.varName, key), valueString(t.Value)))
		}
	}
	sb.WriteString("}\n")

	sb.WriteString("\n/* Semantic aliases */\n:root {\n")
	writeSemanticGroup(&sb, doc.Semantic, prefix, nil)
	sb.WriteString("}\n")

	return sb.String()
}

func writeSemanticGroup(sb *strings.Builder, g *tokens.Group, prefix string, path []string) {
	for _, key := range g.Keys() {
		if child, ok := g.Child(key); ok {
			writeSemanticGroup(sb, child, prefix, append(path, key))
			continue
		}
		t, _ := g.Lookup(key)
		name := propertyName(prefix, "", strings.Join(append(path, key), "-"))
		sb.WriteString(fmt.Sprintf("  %s: %s;\n", name, semanticValue(t, prefix)))
	}
}

// semanticValue renders an alias leaf: references resolve to a var()
// lookup, literals render as-is.
func semanticValue(t tokens.Token, prefix string) string {
	s, ok := t.Value.(string)
	if !ok {
		return valueString(t.Value)
	}
	m := rawReference.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	for _, section := range cssSections {
		if string(section.category) == m[1] {
			return fmt.Sprintf("var(%s)", propertyName(prefix, section.varName, m[2]))
		}
	}
	return s
}

func propertyName(prefix, section, name string) string {
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	if section != "" {
		parts = append(parts, section)
	}
	parts = append(parts, name)
	return "--" + strings.Join(parts, "-")
}

func valueString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case int:
		return fmt.Sprintf("%d", value)
	case float64:
		return fmt.Sprintf("%g", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
