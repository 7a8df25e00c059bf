package tokens

import (
	"fmt"

	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/figma"
)

// ExtractColors produces one color token per paint style whose first paint
// layer is a solid fill. Gradient and image fills are silently skipped.
// The paint's own opacity (default 1) becomes the hex alpha byte; a style
// without a description gets "Color token from <name>".
func ExtractColors(styles []figma.PaintStyle) *TokenMap {
	m := NewTokenMap()

	for _, style := range styles {
		if len(style.Paints) == 0 {
			continue
		}
		paint := style.Paints[0]
		if paint.Type != figma.PaintSolid || paint.Color == nil {
			continue
		}

		opacity := 1.0
		if paint.Opacity != nil {
			opacity = *paint.Opacity
		}

		description := style.Description
		if description == "" {
			description = "Color token from " + style.Name
		}

		m.Set(SanitizeName(style.Name), Token{
			Value:       RGBAToHex(paint.Color.R, paint.Color.G, paint.Color.B, opacity),
			Type:        TypeColor,
			Description: description,
			Original:    style.ID,
		})
	}

	return m
}

// TypographyTokens holds the five mappings a text style can contribute to.
// All tokens from one style share the same sanitized name, enabling
// cross-category lookup.
type TypographyTokens struct {
	FontSize      *TokenMap
	FontFamily    *TokenMap
	FontWeight    *TokenMap
	LineHeight    *TokenMap
	LetterSpacing *TokenMap
}

// ExtractTypography emits up to five tokens per text style, each field
// independently: a missing line height does not block the font size.
func ExtractTypography(styles []figma.TextStyle) TypographyTokens {
	out := TypographyTokens{
		FontSize:      NewTokenMap(),
		FontFamily:    NewTokenMap(),
		FontWeight:    NewTokenMap(),
		LineHeight:    NewTokenMap(),
		LetterSpacing: NewTokenMap(),
	}

	for _, style := range styles {
		name := SanitizeName(style.Name)

		if style.FontSize > 0 {
			out.FontSize.Set(name, Token{
				Value:       formatNumber(style.FontSize) + "px",
				Type:        TypeDimension,
				Description: style.Description,
				Original:    style.ID,
			})
		}

		if style.FontFamily != "" {
			out.FontFamily.Set(name, Token{
				Value:       style.FontFamily,
				Type:        TypeFontFamily,
				Description: style.Description,
				Original:    style.ID,
			})
		}

		if style.FontStyle != "" {
			out.FontWeight.Set(name, Token{
				Value:       FontWeightFromStyleName(style.FontStyle),
				Type:        TypeFontWeight,
				Description: style.Description,
				Original:    style.ID,
			})
		}

		// Only structured records with a unit field qualify; the codec
		// supplies the "1.5" fallback for units it does not recognize.
		if style.LineHeight != nil && style.LineHeight.Unit != "" {
			out.LineHeight.Set(name, Token{
				Value:       NormalizeLineHeight(style.LineHeight.Unit, style.LineHeight.Value),
				Type:        TypeLineHeight,
				Description: style.Description,
				Original:    style.ID,
			})
		}

		if style.LetterSpacing != nil && style.LetterSpacing.Unit != "" {
			out.LetterSpacing.Set(name, Token{
				Value:       NormalizeLetterSpacing(style.LetterSpacing.Unit, style.LetterSpacing.Value),
				Type:        TypeLetterSpacing,
				Description: style.Description,
				Original:    style.ID,
			})
		}
	}

	return out
}

// ExtractEffects produces one boxShadow token per DROP_SHADOW or
// INNER_SHADOW effect across each effect style's ordered effect list.
// Other effect kinds (blurs) are ignored. The first qualifying effect of a
// style takes the bare sanitized name; later ones append the effect's
// position within the full list, so a skipped blur between two shadows
// leaves a gap in the suffix.
func ExtractEffects(styles []figma.EffectStyle) *TokenMap {
	m := NewTokenMap()

	for _, style := range styles {
		base := SanitizeName(style.Name)
		emitted := 0

		for i, effect := range style.Effects {
			if effect.Type != figma.EffectDropShadow && effect.Type != figma.EffectInnerShadow {
				continue
			}

			name := base
			if emitted > 0 {
				name = fmt.Sprintf("%s-%d", base, i)
			}

			var x, y float64
			if effect.Offset != nil {
				x, y = effect.Offset.X, effect.Offset.Y
			}

			var r, g, b float64
			alpha := 1.0
			if effect.Color != nil {
				r, g, b = effect.Color.R, effect.Color.G, effect.Color.B
				if effect.Color.A != nil {
					alpha = *effect.Color.A
				}
			}

			spread := 0.0
			if effect.Spread != nil {
				spread = *effect.Spread
			}

			value := fmt.Sprintf("%spx %spx %spx %spx %s",
				formatNumber(x), formatNumber(y), formatNumber(effect.Radius),
				formatNumber(spread), RGBAToHex(r, g, b, alpha))
			if effect.Type == figma.EffectInnerShadow {
				value = "inset " + value
			}

			m.Set(name, Token{
				Value:       value,
				Type:        TypeBoxShadow,
				Description: style.Description,
				Original:    style.ID,
			})
			emitted++
		}
	}

	return m
}
