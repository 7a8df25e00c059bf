package tokens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMap_InsertionOrder(t *testing.T) {
	m := NewTokenMap()
	m.Set("b", Token{Value: "2", Type: TypeSpacing})
	m.Set("a", Token{Value: "1", Type: TypeSpacing})
	m.Set("c", Token{Value: "3", Type: TypeSpacing})

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestTokenMap_OverwriteKeepsPosition(t *testing.T) {
	m := NewTokenMap()
	m.Set("first", Token{Value: "#111111", Type: TypeColor})
	m.Set("second", Token{Value: "#222222", Type: TypeColor})
	m.Set("first", Token{Value: "#333333", Type: TypeColor})

	assert.Equal(t, []string{"first", "second"}, m.Keys())
	got, ok := m.Get("first")
	require.True(t, ok)
	assert.Equal(t, "#333333", got.Value)
}

func TestTokenMap_MarshalJSON(t *testing.T) {
	m := NewTokenMap()
	m.Set("z", Token{Value: "1px", Type: TypeSpacing})
	m.Set("a", Token{Value: 700, Type: TypeFontWeight, Description: "bold", Original: "S:1"})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"z": {"value":"1px","type":"spacing"},
		"a": {"value":700,"type":"fontWeight","description":"bold","original":"S:1"}
	}`, string(data))

	// Insertion order survives encoding.
	assert.Equal(t, `{"z":{"value":"1px","type":"spacing"},"a":{"value":700,"type":"fontWeight","description":"bold","original":"S:1"}}`, string(data))
}

func TestTokenMap_MarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(NewTokenMap())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestNewRawTokenSet_AllCategoriesInitialized(t *testing.T) {
	s := NewRawTokenSet()
	for _, c := range []Category{
		CategoryColor, CategoryFontSize, CategorySpacing, CategoryFontFamily,
		CategoryFontWeight, CategoryLineHeight, CategoryLetterSpacing,
		CategoryBorderRadius, CategoryBoxShadow, CategoryOpacity,
	} {
		m := s.ByCategory(c)
		require.NotNil(t, m, "category %s", c)
		assert.Equal(t, 0, m.Len())
	}
	assert.Nil(t, s.ByCategory("gradient"))
}
