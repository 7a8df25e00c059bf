package tokens

import (
	"bytes"
	"encoding/json"
)

// TokenType identifies what kind of design value a token holds.
type TokenType string

// Token types produced by the extraction pipeline.
const (
	TypeColor         TokenType = "color"
	TypeDimension     TokenType = "dimension"
	TypeFontFamily    TokenType = "fontFamily"
	TypeFontWeight    TokenType = "fontWeight"
	TypeLineHeight    TokenType = "lineHeight"
	TypeLetterSpacing TokenType = "letterSpacing"
	TypeBoxShadow     TokenType = "boxShadow"
	TypeSpacing       TokenType = "spacing"
)

// Token is a single named design value with an explicit type tag.
// Value is always a finalized, unit-resolved representation (a string such
// as "#1976D2" or "16px", or an integer font weight) — never a raw Figma
// structure. Original, when present, carries the source style identifier
// for traceability only.
type Token struct {
	Value       any       `json:"value"`
	Type        TokenType `json:"type"`
	Description string    `json:"description,omitempty"`
	Original    string    `json:"original,omitempty"`
}

// TokenMap is a mapping from token name to Token that remembers insertion
// order. The semantic layer references "the first color key inserted", so a
// plain Go map is not enough: iteration and JSON output must be stable.
//
// Set silently overwrites an existing name, keeping the original position.
// Two styles that sanitize to the same name therefore lose the earlier
// value — a known property of the pipeline, not detected or reported.
type TokenMap struct {
	keys   []string
	values map[string]Token
}

// NewTokenMap returns an empty ordered token mapping.
func NewTokenMap() *TokenMap {
	return &TokenMap{values: make(map[string]Token)}
}

// Set inserts or overwrites the token stored under name.
func (m *TokenMap) Set(name string, t Token) {
	if _, exists := m.values[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.values[name] = t
}

// Get returns the token stored under name.
func (m *TokenMap) Get(name string) (Token, bool) {
	t, ok := m.values[name]
	return t, ok
}

// Len returns the number of tokens in the mapping.
func (m *TokenMap) Len() int {
	return len(m.keys)
}

// Keys returns the token names in insertion order.
func (m *TokenMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
// An empty mapping encodes as {}.
func (m *TokenMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Category names the ten raw token mappings.
type Category string

// Raw token set categories.
const (
	CategoryColor         Category = "color"
	CategoryFontSize      Category = "fontSize"
	CategorySpacing       Category = "spacing"
	CategoryFontFamily    Category = "fontFamily"
	CategoryFontWeight    Category = "fontWeight"
	CategoryLineHeight    Category = "lineHeight"
	CategoryLetterSpacing Category = "letterSpacing"
	CategoryBorderRadius  Category = "borderRadius"
	CategoryBoxShadow     Category = "boxShadow"
	CategoryOpacity       Category = "opacity"
)

// RawTokenSet holds the ten primitive token mappings. Field order matches
// the JSON output contract.
type RawTokenSet struct {
	Color         *TokenMap `json:"color"`
	FontSize      *TokenMap `json:"fontSize"`
	Spacing       *TokenMap `json:"spacing"`
	FontFamily    *TokenMap `json:"fontFamily"`
	FontWeight    *TokenMap `json:"fontWeight"`
	LineHeight    *TokenMap `json:"lineHeight"`
	LetterSpacing *TokenMap `json:"letterSpacing"`
	BorderRadius  *TokenMap `json:"borderRadius"`
	BoxShadow     *TokenMap `json:"boxShadow"`
	Opacity       *TokenMap `json:"opacity"`
}

// NewRawTokenSet returns a raw token set with all ten mappings initialized
// and empty. The opacity mapping is reserved: nothing populates it yet.
func NewRawTokenSet() *RawTokenSet {
	return &RawTokenSet{
		Color:         NewTokenMap(),
		FontSize:      NewTokenMap(),
		Spacing:       NewTokenMap(),
		FontFamily:    NewTokenMap(),
		FontWeight:    NewTokenMap(),
		LineHeight:    NewTokenMap(),
		LetterSpacing: NewTokenMap(),
		BorderRadius:  NewTokenMap(),
		BoxShadow:     NewTokenMap(),
		Opacity:       NewTokenMap(),
	}
}

// ByCategory returns the mapping for the given category, or nil for an
// unknown category name.
func (s *RawTokenSet) ByCategory(c Category) *TokenMap {
	switch c {
	case CategoryColor:
		return s.Color
	case CategoryFontSize:
		return s.FontSize
	case CategorySpacing:
		return s.Spacing
	case CategoryFontFamily:
		return s.FontFamily
	case CategoryFontWeight:
		return s.FontWeight
	case CategoryLineHeight:
		return s.LineHeight
	case CategoryLetterSpacing:
		return s.LetterSpacing
	case CategoryBorderRadius:
		return s.BorderRadius
	case CategoryBoxShadow:
		return s.BoxShadow
	case CategoryOpacity:
		return s.Opacity
	}
	return nil
}
