package main

import (
	"fmt"
	"os"

	designtoken "github.com/DEADSERPENT/DESIGN-TOKEN"
	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/tokens"
	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/writer"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = tokens.Version

var (
	snapshotPath string
	figmaURL     string
	accessToken  string
	outputDir    string
	formats      string
	prefix       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "design-token",
		Short: "Export design tokens from Figma local styles",
		Long:  "A tool to convert a Figma file's local paint, text, and effect styles into a two-tier design tokens document (raw values plus semantic aliases)",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&snapshotPath, "input", "i", "", "Path to a plugin-exported style snapshot JSON")
	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL (requires --token)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token")
	rootCmd.Flags().StringVarP(&outputDir, "out-dir", "o", ".", "Output directory for generated artifacts")
	rootCmd.Flags().StringVarP(&formats, "formats", "f", "json", "Comma-separated output formats: json, css, md")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "Prefix for generated CSS custom properties")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("design-token version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Design Token Exporter")
	cyan.Println("========================")
	cyan.Println()

	// Manifest values fill in flags the user did not set.
	if manifest, ok, err := loadManifest("."); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	} else if ok {
		applyManifest(cmd, manifest)
	}

	parsedFormats, err := designtoken.ParseFormats(formats)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	result, err := designtoken.Run(designtoken.Options{
		SnapshotPath: snapshotPath,
		AccessToken:  accessToken,
		FileURL:      figmaURL,
		Prefix:       prefix,
		Logger:       &cliLogger{},
	})
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	summary := result.Summary
	cyan.Println("\n📊 Export Summary:")
	fmt.Printf("  • Source: %s\n", result.Source)
	fmt.Printf("  • Colors: %d\n", summary.Colors)
	fmt.Printf("  • Typography: %d\n", summary.Typography)
	fmt.Printf("  • Effects: %d\n", summary.Effects)
	fmt.Printf("  • Total raw tokens: %d\n", summary.Total)

	artifacts := make([]writer.Artifact, 0, len(parsedFormats))
	for _, format := range parsedFormats {
		switch format {
		case designtoken.FormatJSON:
			artifacts = append(artifacts, writer.Artifact{FileName: "design-tokens.json", Data: result.JSON})
		case designtoken.FormatCSS:
			artifacts = append(artifacts, writer.Artifact{FileName: "design-tokens.css", Data: []byte(result.CSS)})
		case designtoken.FormatMarkdown:
			artifacts = append(artifacts, writer.Artifact{FileName: "design-tokens.md", Data: []byte(result.Markdown)})
		}
	}

	green.Printf("\n💾 Writing to %s... ", outputDir)
	paths, err := writer.Write(outputDir, artifacts)
	if err != nil {
		red.Printf("✗\n")
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	green.Println("✓")

	for _, path := range paths {
		fmt.Printf("  • %s\n", path)
	}
	green.Printf("\n✨ Successfully exported design tokens\n\n")
}

// cliLogger implements designtoken.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
