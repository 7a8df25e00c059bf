// Package designtoken converts a Figma file's local style definitions
// (paint, text, and effect styles) into a structured, portable design
// tokens document: a two-tier JSON artifact with raw primitive values and
// semantic aliases referencing them.
//
// The CLI lives in cmd/design-token; this root package exposes the same
// pipeline as a Go API so that callers can embed the export in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named designtoken:
//
//	import "github.com/DEADSERPENT/DESIGN-TOKEN" // package designtoken
//
// # Quick start
//
// Styles can come from a plugin-exported snapshot file:
//
//	result, err := designtoken.Run(designtoken.Options{
//	    SnapshotPath: "styles.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("design-tokens.json", result.JSON, 0644)
//
// or directly from the Figma REST API:
//
//	result, err := designtoken.Run(designtoken.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	})
//
// # Output
//
// [Result] carries the assembled [tokens.Document] plus three renderings:
// indented JSON, CSS custom properties, and a markdown report. The raw
// layer holds finalized values (hex colors, px dimensions); the semantic
// layer holds alias strings such as "{raw.color.blue-500}" that downstream
// tooling resolves.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package designtoken
