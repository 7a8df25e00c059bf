package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const manifestName = "design-token.toml"

// manifestConfig is the optional project manifest. Values act as defaults;
// explicitly set flags always win.
type manifestConfig struct {
	Input  string       `toml:"input"`
	Output outputConfig `toml:"output"`
}

type outputConfig struct {
	Dir     string `toml:"dir"`
	Formats string `toml:"formats"`
	Prefix  string `toml:"prefix"`
}

// findManifest walks upward from startDir looking for design-token.toml.
func findManifest(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*manifestConfig, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: parse TOML: %w", path, err)
	}
	return &cfg, true, nil
}

// applyManifest copies manifest values into any flag the user left at its
// default.
func applyManifest(cmd *cobra.Command, cfg *manifestConfig) {
	if !cmd.Flags().Changed("input") && cfg.Input != "" {
		snapshotPath = cfg.Input
	}
	if !cmd.Flags().Changed("out-dir") && cfg.Output.Dir != "" {
		outputDir = cfg.Output.Dir
	}
	if !cmd.Flags().Changed("formats") && cfg.Output.Formats != "" {
		formats = cfg.Output.Formats
	}
	if !cmd.Flags().Changed("prefix") && cfg.Output.Prefix != "" {
		prefix = cfg.Output.Prefix
	}
}
