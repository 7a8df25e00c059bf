package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Group is a nested, insertion-ordered tree of semantic token nodes. Leaves
// are Tokens whose value is either a "{raw.<category>.<name>}" reference
// string or a literal fallback.
type Group struct {
	keys     []string
	children map[string]any // Token or *Group
}

// NewGroup returns an empty semantic group.
func NewGroup() *Group {
	return &Group{children: make(map[string]any)}
}

// put inserts a token at the given path, creating intermediate groups as
// needed.
func (g *Group) put(path []string, t Token) {
	node := g
	for _, seg := range path[:len(path)-1] {
		child, ok := node.children[seg].(*Group)
		if !ok {
			child = NewGroup()
			node.children[seg] = child
			node.keys = append(node.keys, seg)
		}
		node = child
	}
	leaf := path[len(path)-1]
	if _, exists := node.children[leaf]; !exists {
		node.keys = append(node.keys, leaf)
	}
	node.children[leaf] = t
}

// Lookup walks the tree along path and returns the leaf token, if present.
func (g *Group) Lookup(path ...string) (Token, bool) {
	node := g
	for _, seg := range path[:len(path)-1] {
		child, ok := node.children[seg].(*Group)
		if !ok {
			return Token{}, false
		}
		node = child
	}
	t, ok := node.children[path[len(path)-1]].(Token)
	return t, ok
}

// Keys returns the direct child names in insertion order.
func (g *Group) Keys() []string {
	keys := make([]string, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Child returns the direct child group with the given name.
func (g *Group) Child(name string) (*Group, bool) {
	child, ok := g.children[name].(*Group)
	return child, ok
}

// MarshalJSON encodes the group as a JSON object in insertion order.
func (g *Group) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(g.children[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// aliasSpec is one row of the semantic template: a target path, an optional
// raw category to reference, and a literal fallback used when the category
// has no token at the wanted position. A fixedRef bypasses the lookup
// entirely — the reference is textual and never validated.
type aliasSpec struct {
	path     []string
	source   Category
	index    int
	fixedRef string
	typ      TokenType
	fallback any
}

// semanticAliases is the full semantic template. Brand colors follow the
// first two inserted color keys; text and background roles are always
// literal because no color-role inference is attempted. The spacing
// references point at scale keys "3" and "2" by construction.
var semanticAliases = []aliasSpec{
	{path: []string{"color", "brand", "primary"}, source: CategoryColor, index: 0, typ: TypeColor, fallback: "#1976D2"},
	{path: []string{"color", "brand", "secondary"}, source: CategoryColor, index: 1, typ: TypeColor, fallback: "#424242"},
	{path: []string{"color", "text", "primary"}, typ: TypeColor, fallback: "#212121"},
	{path: []string{"color", "text", "secondary"}, typ: TypeColor, fallback: "#757575"},
	{path: []string{"color", "background", "default"}, typ: TypeColor, fallback: "#FFFFFF"},
	{path: []string{"color", "background", "paper"}, typ: TypeColor, fallback: "#F5F5F5"},
	{path: []string{"typography", "heading", "h1", "fontSize"}, source: CategoryFontSize, index: 0, typ: TypeDimension, fallback: "32px"},
	{path: []string{"typography", "heading", "h1", "fontWeight"}, typ: TypeFontWeight, fallback: 700},
	{path: []string{"typography", "heading", "h1", "lineHeight"}, typ: TypeLineHeight, fallback: "1.2"},
	{path: []string{"typography", "body", "base", "fontSize"}, typ: TypeDimension, fallback: "16px"},
	{path: []string{"typography", "body", "base", "fontWeight"}, typ: TypeFontWeight, fallback: 400},
	{path: []string{"typography", "body", "base", "lineHeight"}, typ: TypeLineHeight, fallback: "1.5"},
	{path: []string{"spacing", "component", "padding"}, fixedRef: "{raw.spacing.3}", typ: TypeSpacing},
	{path: []string{"spacing", "component", "margin"}, fixedRef: "{raw.spacing.2}", typ: TypeSpacing},
}

// Synthesize builds the semantic layer from the assembled raw token set by
// evaluating the alias template uniformly. It never fails: every entry has
// a literal fallback path.
func Synthesize(raw *RawTokenSet) *Group {
	root := NewGroup()

	for _, alias := range semanticAliases {
		root.put(alias.path, resolveAlias(raw, alias))
	}

	return root
}

func resolveAlias(raw *RawTokenSet, alias aliasSpec) Token {
	if alias.fixedRef != "" {
		return Token{Value: alias.fixedRef, Type: alias.typ}
	}

	if alias.source != "" {
		if m := raw.ByCategory(alias.source); m != nil && m.Len() > alias.index {
			key := m.Keys()[alias.index]
			return Token{
				Value: fmt.Sprintf("{raw.%s.%s}", alias.source, key),
				Type:  alias.typ,
			}
		}
	}

	return Token{Value: alias.fallback, Type: alias.typ}
}
