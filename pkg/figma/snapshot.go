package figma

import (
	"encoding/json"
	"fmt"
	"os"
)

// StyleSnapshot is an immutable capture of a file's locally defined styles,
// the shape a plugin export hands over. The token pipeline reads it without
// mutation.
type StyleSnapshot struct {
	Source       string        `json:"source,omitempty"`
	PaintStyles  []PaintStyle  `json:"paintStyles"`
	TextStyles   []TextStyle   `json:"textStyles"`
	EffectStyles []EffectStyle `json:"effectStyles"`
}

// LoadSnapshot reads and parses a style snapshot from a JSON file.
func LoadSnapshot(path string) (*StyleSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %q: %w", path, err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot parses and validates a style snapshot. Shape is checked
// once here, at the boundary, so the extractors never re-check it.
func ParseSnapshot(data []byte) (*StyleSnapshot, error) {
	var snap StyleSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &snap, nil
}

// Validate checks the structural invariants every style record must hold:
// a stable identifier and a display name. Kind-specific fields stay
// optional — a partial record is skipped downstream, not rejected here.
func (s *StyleSnapshot) Validate() error {
	for i, st := range s.PaintStyles {
		if st.ID == "" || st.Name == "" {
			return fmt.Errorf("paint style %d: missing id or name", i)
		}
	}
	for i, st := range s.TextStyles {
		if st.ID == "" || st.Name == "" {
			return fmt.Errorf("text style %d: missing id or name", i)
		}
	}
	for i, st := range s.EffectStyles {
		if st.ID == "" || st.Name == "" {
			return fmt.Errorf("effect style %d: missing id or name", i)
		}
	}
	return nil
}
