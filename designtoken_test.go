package designtoken

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_FromSnapshot(t *testing.T) {
	path := writeSnapshot(t, `{
		"source": "My File",
		"paintStyles": [
			{"id": "S:1", "name": "Blue 500", "paints": [
				{"type": "SOLID", "color": {"r": 0.0975, "g": 0.4627, "b": 0.8235}}
			]}
		],
		"textStyles": [],
		"effectStyles": []
	}`)

	result, err := Run(Options{SnapshotPath: path})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Source != "My File" {
		t.Errorf("Source = %q, want %q", result.Source, "My File")
	}
	if result.Summary.Colors != 1 {
		t.Errorf("Summary.Colors = %d, want 1", result.Summary.Colors)
	}
	if !json.Valid(result.JSON) {
		t.Error("Run() produced invalid JSON")
	}
	if !strings.Contains(result.CSS, "--color-blue-500: #1976D2;") {
		t.Error("Run() CSS missing extracted color")
	}
	if !strings.Contains(result.Markdown, "# Design Tokens - My File") {
		t.Error("Run() markdown missing title")
	}
}

func TestRun_NoInput(t *testing.T) {
	if _, err := Run(Options{}); err == nil {
		t.Fatal("Run() expected error with no input source")
	}
}

func TestRun_URLWithoutToken(t *testing.T) {
	_, err := Run(Options{FileURL: "https://www.figma.com/file/ABC123/Design"})
	if err == nil || !strings.Contains(err.Error(), "access token") {
		t.Fatalf("Run() error = %v, want an access token error", err)
	}
}

func TestRun_InvalidSnapshotSurfacesSingleError(t *testing.T) {
	path := writeSnapshot(t, `{"paintStyles": [{"name": "no id"}]}`)

	result, err := Run(Options{SnapshotPath: path})
	if err == nil {
		t.Fatal("Run() expected boundary error for invalid snapshot")
	}
	if result != nil {
		t.Error("Run() must not return a partial document alongside an error")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{"default json", "", []string{"json"}, false},
		{"single", "css", []string{"css"}, false},
		{"all three", "json,css,md", []string{"json", "css", "md"}, false},
		{"whitespace and case", " JSON , md ", []string{"json", "md"}, false},
		{"duplicates collapse", "css,css", []string{"css"}, false},
		{"unknown format", "yaml", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormats() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFormats() = %v, want %v", got, tt.want)
			}
		})
	}
}
