package figma

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSnapshot = `{
	"source": "My File",
	"paintStyles": [
		{"id": "S:1", "name": "Blue 500", "paints": [
			{"type": "SOLID", "color": {"r": 0.0975, "g": 0.4627, "b": 0.8235}, "opacity": 1}
		]}
	],
	"textStyles": [
		{"id": "T:1", "name": "Heading 1", "fontFamily": "Inter", "fontStyle": "Bold",
		 "fontSize": 32, "lineHeight": {"unit": "PERCENT", "value": 120}}
	],
	"effectStyles": [
		{"id": "E:1", "name": "Card", "effects": [
			{"type": "DROP_SHADOW", "color": {"r": 0, "g": 0, "b": 0, "a": 0.25},
			 "offset": {"x": 0, "y": 4}, "radius": 8, "spread": 2}
		]}
	]
}`

func TestParseSnapshot(t *testing.T) {
	snap, err := ParseSnapshot([]byte(validSnapshot))
	if err != nil {
		t.Fatalf("ParseSnapshot() error = %v", err)
	}

	if snap.Source != "My File" {
		t.Errorf("Source = %q, want %q", snap.Source, "My File")
	}
	if len(snap.PaintStyles) != 1 || len(snap.TextStyles) != 1 || len(snap.EffectStyles) != 1 {
		t.Fatalf("unexpected style counts: %d/%d/%d",
			len(snap.PaintStyles), len(snap.TextStyles), len(snap.EffectStyles))
	}

	paint := snap.PaintStyles[0]
	if paint.Paints[0].Opacity == nil || *paint.Paints[0].Opacity != 1 {
		t.Errorf("paint opacity not decoded: %+v", paint.Paints[0])
	}

	effect := snap.EffectStyles[0].Effects[0]
	if effect.Color.A == nil || *effect.Color.A != 0.25 {
		t.Errorf("effect alpha not decoded: %+v", effect)
	}
	if effect.Spread == nil || *effect.Spread != 2 {
		t.Errorf("effect spread not decoded: %+v", effect)
	}
}

func TestParseSnapshot_InvalidJSON(t *testing.T) {
	if _, err := ParseSnapshot([]byte("{not json")); err == nil {
		t.Fatal("ParseSnapshot() expected error for malformed JSON")
	}
}

func TestParseSnapshot_MissingIdentity(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"paint without id", `{"paintStyles": [{"name": "Blue"}]}`},
		{"text without name", `{"textStyles": [{"id": "T:1"}]}`},
		{"effect without id", `{"effectStyles": [{"name": "Card"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(tt.json))
			if err == nil {
				t.Fatal("ParseSnapshot() expected validation error")
			}
			if !strings.Contains(err.Error(), "missing id or name") {
				t.Errorf("error = %v, want a missing id or name error", err)
			}
		})
	}
}

func TestLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.json")
	if err := os.WriteFile(path, []byte(validSnapshot), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if snap.Source != "My File" {
		t.Errorf("Source = %q, want %q", snap.Source, "My File")
	}
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("LoadSnapshot() expected error for missing file")
	}
}
