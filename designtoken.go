package designtoken

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/figma"
	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/formatter"
	"github.com/DEADSERPENT/DESIGN-TOKEN/pkg/tokens"
)

// Options configures the export.
type Options struct {
	SnapshotPath string // path to a plugin-exported style snapshot JSON
	AccessToken  string // Figma Personal Access Token (REST mode)
	FileURL      string // Figma file URL (REST mode)
	Prefix       string // optional CSS custom-property prefix
	Logger       Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the export output in every supported rendering.
type Result struct {
	Document *tokens.Document
	Summary  tokens.Summary
	Source   string // file name the styles came from
	JSON     []byte
	CSS      string
	Markdown string
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Run executes the token export pipeline: obtain a style snapshot (local
// file or Figma REST API), assemble the token document and render it.
func Run(opts Options) (*Result, error) {
	snapshot, err := loadStyles(&opts)
	if err != nil {
		return nil, err
	}
	opts.logInfo("Loaded %d paint, %d text, %d effect style(s)",
		len(snapshot.PaintStyles), len(snapshot.TextStyles), len(snapshot.EffectStyles))

	opts.logInfo("Assembling token document...")
	doc := tokens.Assemble(snapshot.PaintStyles, snapshot.TextStyles, snapshot.EffectStyles, snapshot.Source)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	return &Result{
		Document: doc,
		Summary:  doc.Summarize(),
		Source:   doc.Meta.Source,
		JSON:     data,
		CSS:      formatter.ToCSS(doc, opts.Prefix),
		Markdown: formatter.ToMarkdown(doc),
	}, nil
}

func loadStyles(opts *Options) (*figma.StyleSnapshot, error) {
	switch {
	case opts.SnapshotPath != "":
		opts.logInfo("Reading style snapshot from %s...", opts.SnapshotPath)
		return figma.LoadSnapshot(opts.SnapshotPath)

	case opts.FileURL != "":
		if opts.AccessToken == "" {
			return nil, errors.New("an access token is required when extracting from a Figma URL")
		}

		opts.logInfo("Extracting file key from URL...")
		fileKey, err := figma.ExtractFileKey(opts.FileURL)
		if err != nil {
			return nil, fmt.Errorf("extract file key: %w", err)
		}
		opts.logInfo("File key: %s", fileKey)

		opts.logInfo("Fetching local styles from Figma...")
		client := figma.NewClient(opts.AccessToken)
		snapshot, err := client.FetchLocalStyles(fileKey)
		if err != nil {
			return nil, fmt.Errorf("fetch styles: %w", err)
		}
		return snapshot, nil

	default:
		return nil, errors.New("either a snapshot path or a Figma file URL is required")
	}
}

// Output format names accepted by ParseFormats.
const (
	FormatJSON     = "json"
	FormatCSS      = "css"
	FormatMarkdown = "md"
)

// ParseFormats parses a comma-separated list of output format names.
// An empty list defaults to JSON only.
func ParseFormats(formatsStr string) ([]string, error) {
	valid := map[string]bool{FormatJSON: true, FormatCSS: true, FormatMarkdown: true}

	parts := strings.Split(formatsStr, ",")
	formats := make([]string, 0, len(parts))
	seen := make(map[string]bool)

	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		if !valid[trimmed] {
			return nil, fmt.Errorf("invalid output format %q (must be json, css, or md)", trimmed)
		}
		if seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		formats = append(formats, trimmed)
	}

	if len(formats) == 0 {
		return []string{FormatJSON}, nil
	}

	return formats, nil
}
