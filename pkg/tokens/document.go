package tokens

import (
	"time"

	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/figma"
)

// Version is stamped into every generated document.
const Version = "1.0.0"

// Meta carries document provenance. GeneratedAt is the only field that
// varies between two assemblies of the same snapshot.
type Meta struct {
	Version     string `json:"version"`
	Source      string `json:"source"`
	GeneratedAt string `json:"generatedAt"`
}

// Document is the complete two-tier token artifact: provenance, the raw
// primitive layer and the semantic alias layer. It is created fresh on
// every export and immutable once produced.
type Document struct {
	Meta     Meta         `json:"meta"`
	Raw      *RawTokenSet `json:"raw"`
	Semantic *Group       `json:"semantic"`
}

// Summary reports raw token counts for host progress display. It is
// derived from the document, never a separate source of truth.
type Summary struct {
	Colors     int `json:"colors"`
	Typography int `json:"typography"`
	Effects    int `json:"effects"`
	Total      int `json:"total"`
}

// Assemble runs the extractors and scale generators in a fixed order,
// merges their output into the raw token set, synthesizes the semantic
// layer and stamps metadata. An empty source records as "unknown".
//
// The computation is pure and synchronous: two calls over the same style
// records produce identical documents apart from the timestamp.
func Assemble(paint []figma.PaintStyle, text []figma.TextStyle, effect []figma.EffectStyle, source string) *Document {
	raw := NewRawTokenSet()

	raw.Color = ExtractColors(paint)

	typography := ExtractTypography(text)
	raw.FontSize = typography.FontSize
	raw.FontFamily = typography.FontFamily
	raw.FontWeight = typography.FontWeight
	raw.LineHeight = typography.LineHeight
	raw.LetterSpacing = typography.LetterSpacing

	raw.BoxShadow = ExtractEffects(effect)

	raw.Spacing = SpacingTokens()
	raw.BorderRadius = BorderRadiusTokens()

	if source == "" {
		source = "unknown"
	}

	return &Document{
		Meta: Meta{
			Version:     Version,
			Source:      source,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Raw:      raw,
		Semantic: Synthesize(raw),
	}
}

// Summarize counts the document's raw tokens. Typography is the sum of the
// five typography mappings; Total spans all ten categories.
func (d *Document) Summarize() Summary {
	typography := d.Raw.FontSize.Len() +
		d.Raw.FontFamily.Len() +
		d.Raw.FontWeight.Len() +
		d.Raw.LineHeight.Len() +
		d.Raw.LetterSpacing.Len()

	total := d.Raw.Color.Len() + typography + d.Raw.BoxShadow.Len() +
		d.Raw.Spacing.Len() + d.Raw.BorderRadius.Len() + d.Raw.Opacity.Len()

	return Summary{
		Colors:     d.Raw.Color.Len(),
		Typography: typography,
		Effects:    d.Raw.BoxShadow.Len(),
		Total:      total,
	}
}
