package tokens

import "strconv"

// Fixed pixel scales. These are static configuration, never derived from
// document content: repeated invocations return identical mappings.
// Customizing the scale is a post-export editing task.
var (
	spacingScale      = []int{2, 4, 8, 12, 16, 20, 24, 32, 40, 48, 56, 64, 80, 96, 128}
	borderRadiusScale = []int{0, 2, 4, 6, 8, 12, 16, 24, 32, 9999}
)

// SpacingTokens returns the 15-step spacing scale. Token names are the
// 1-based positions ("1" … "15").
func SpacingTokens() *TokenMap {
	m := NewTokenMap()
	for i, px := range spacingScale {
		m.Set(strconv.Itoa(i+1), Token{
			Value: strconv.Itoa(px) + "px",
			Type:  TypeSpacing,
		})
	}
	return m
}

// BorderRadiusTokens returns the 10-step border-radius scale. The first
// entry (0px) is named "none"; the rest are named by 0-based position.
// The final 9999px entry is the full/pill radius.
func BorderRadiusTokens() *TokenMap {
	m := NewTokenMap()
	for i, px := range borderRadiusScale {
		name := strconv.Itoa(i)
		if i == 0 {
			name = "none"
		}
		m.Set(name, Token{
			Value: strconv.Itoa(px) + "px",
			Type:  TypeDimension,
		})
	}
	return m
}
