package figma

// Paint types and effect types as Figma names them. Only solid paints and
// shadow effects contribute tokens; other kinds are carried through so the
// extractors can skip them.
const (
	PaintSolid        = "SOLID"
	EffectDropShadow  = "DROP_SHADOW"
	EffectInnerShadow = "INNER_SHADOW"
)

// Units a line-height or letter-spacing record may carry. Anything else
// (AUTO line heights in particular) is unrecognized and falls back
// downstream.
const (
	UnitPixels  = "PIXELS"
	UnitPercent = "PERCENT"
)

// Color is a fractional RGBA color with channel values in [0,1]. Alpha is
// optional; an absent alpha is treated as fully opaque.
type Color struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// Vector is a 2D offset, used for shadow positioning.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Paint is a single fill layer of a paint style. Gradient and image paints
// carry a Type but no Color and produce no token.
type Paint struct {
	Type    string   `json:"type"`
	Color   *Color   `json:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// LineHeight is a typed line-height value. Unit is PIXELS, PERCENT, or a
// unit the pipeline does not recognize (such as AUTO, which carries no
// value).
type LineHeight struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value,omitempty"`
}

// LetterSpacing is a typed letter-spacing value with a PIXELS or PERCENT
// unit.
type LetterSpacing struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// Effect is a single entry of an effect style's ordered effect list.
// Spread is optional; shadows without a spread render as 0px.
type Effect struct {
	Type   string   `json:"type"`
	Color  *Color   `json:"color,omitempty"`
	Offset *Vector  `json:"offset,omitempty"`
	Radius float64  `json:"radius"`
	Spread *float64 `json:"spread,omitempty"`
}

// PaintStyle is a locally defined fill style: a name, an optional
// description, a stable identifier and the ordered paint layers.
type PaintStyle struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Paints      []Paint `json:"paints"`
}

// TextStyle is a locally defined text style. Fields are independent: a
// missing line height does not block extraction of the font size.
// FontStyle is the display name of the font's weight variant, e.g.
// "Semi Bold".
type TextStyle struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	FontFamily    string         `json:"fontFamily,omitempty"`
	FontStyle     string         `json:"fontStyle,omitempty"`
	FontSize      float64        `json:"fontSize,omitempty"`
	LineHeight    *LineHeight    `json:"lineHeight,omitempty"`
	LetterSpacing *LetterSpacing `json:"letterSpacing,omitempty"`
}

// EffectStyle is a locally defined effect style with its ordered effect
// list.
type EffectStyle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Effects     []Effect `json:"effects"`
}
