// Package writer persists generated artifacts to a local directory.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact is one output file to write.
type Artifact struct {
	FileName string
	Data     []byte
}

// Write creates dir if needed and writes every artifact into it. Filename
// collisions get a numeric suffix instead of overwriting. Returns the paths
// written, in input order.
func Write(dir string, artifacts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", dir, err)
	}

	usedNames := make(map[string]int)
	paths := make([]string, 0, len(artifacts))

	for _, artifact := range artifacts {
		fileName := artifact.FileName
		if count, exists := usedNames[fileName]; exists {
			ext := filepath.Ext(fileName)
			base := strings.TrimSuffix(fileName, ext)
			fileName = fmt.Sprintf("%s-%d%s", base, count+1, ext)
			usedNames[artifact.FileName] = count + 1
		} else {
			usedNames[fileName] = 1
		}

		path := filepath.Join(dir, fileName)
		if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
			return nil, fmt.Errorf("write %q: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
