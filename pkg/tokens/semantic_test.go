package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupValue(t *testing.T, g *Group, path ...string) any {
	t.Helper()
	token, ok := g.Lookup(path...)
	require.True(t, ok, "missing semantic node %v", path)
	return token.Value
}

func TestSynthesize_EmptyRawFallsBack(t *testing.T) {
	g := Synthesize(NewRawTokenSet())

	assert.Equal(t, "#1976D2", lookupValue(t, g, "color", "brand", "primary"))
	assert.Equal(t, "#424242", lookupValue(t, g, "color", "brand", "secondary"))
	assert.Equal(t, "32px", lookupValue(t, g, "typography", "heading", "h1", "fontSize"))
}

func TestSynthesize_BrandColorsReferenceInsertionOrder(t *testing.T) {
	raw := NewRawTokenSet()
	raw.Color.Set("ocean", Token{Value: "#006994", Type: TypeColor})
	raw.Color.Set("coral", Token{Value: "#FF7F50", Type: TypeColor})
	raw.Color.Set("sand", Token{Value: "#C2B280", Type: TypeColor})

	g := Synthesize(raw)
	assert.Equal(t, "{raw.color.ocean}", lookupValue(t, g, "color", "brand", "primary"))
	assert.Equal(t, "{raw.color.coral}", lookupValue(t, g, "color", "brand", "secondary"))
}

func TestSynthesize_SingleColorSecondaryFallsBack(t *testing.T) {
	raw := NewRawTokenSet()
	raw.Color.Set("only", Token{Value: "#123456", Type: TypeColor})

	g := Synthesize(raw)
	assert.Equal(t, "{raw.color.only}", lookupValue(t, g, "color", "brand", "primary"))
	assert.Equal(t, "#424242", lookupValue(t, g, "color", "brand", "secondary"))
}

func TestSynthesize_TextAndBackgroundAlwaysLiteral(t *testing.T) {
	// No color-role inference: raw colors never feed text/background roles.
	raw := NewRawTokenSet()
	raw.Color.Set("text-dark", Token{Value: "#101010", Type: TypeColor})

	g := Synthesize(raw)
	assert.Equal(t, "#212121", lookupValue(t, g, "color", "text", "primary"))
	assert.Equal(t, "#757575", lookupValue(t, g, "color", "text", "secondary"))
	assert.Equal(t, "#FFFFFF", lookupValue(t, g, "color", "background", "default"))
	assert.Equal(t, "#F5F5F5", lookupValue(t, g, "color", "background", "paper"))
}

func TestSynthesize_HeadingReferencesFirstFontSize(t *testing.T) {
	raw := NewRawTokenSet()
	raw.FontSize.Set("display", Token{Value: "48px", Type: TypeDimension})
	raw.FontSize.Set("body", Token{Value: "16px", Type: TypeDimension})

	g := Synthesize(raw)
	assert.Equal(t, "{raw.fontSize.display}", lookupValue(t, g, "typography", "heading", "h1", "fontSize"))
	assert.Equal(t, 700, lookupValue(t, g, "typography", "heading", "h1", "fontWeight"))
	assert.Equal(t, "1.2", lookupValue(t, g, "typography", "heading", "h1", "lineHeight"))
}

func TestSynthesize_BodyAlwaysLiteral(t *testing.T) {
	raw := NewRawTokenSet()
	raw.FontSize.Set("display", Token{Value: "48px", Type: TypeDimension})

	g := Synthesize(raw)
	assert.Equal(t, "16px", lookupValue(t, g, "typography", "body", "base", "fontSize"))
	assert.Equal(t, 400, lookupValue(t, g, "typography", "body", "base", "fontWeight"))
	assert.Equal(t, "1.5", lookupValue(t, g, "typography", "body", "base", "lineHeight"))
}

func TestSynthesize_SpacingReferencesAreTextual(t *testing.T) {
	// Hardcoded references to scale keys "3" and "2"; no existence check
	// is performed even on an empty raw set.
	g := Synthesize(NewRawTokenSet())
	assert.Equal(t, "{raw.spacing.3}", lookupValue(t, g, "spacing", "component", "padding"))
	assert.Equal(t, "{raw.spacing.2}", lookupValue(t, g, "spacing", "component", "margin"))
}

func TestSynthesize_TopLevelOrder(t *testing.T) {
	g := Synthesize(NewRawTokenSet())
	assert.Equal(t, []string{"color", "typography", "spacing"}, g.Keys())
}
