package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const figmaAPIBase = "https://api.figma.com/v1"

// The nodes endpoint accepts at most this many IDs per request.
const maxStyleNodesPerRequest = 100

// Client talks to the Figma REST API. It retries transient failures and is
// tuned for large file payloads.
type Client struct {
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Figma API client authenticated with a personal
// access token. HTTP/2 is disabled to avoid stream errors with large
// files.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   false,
	}

	return &Client{
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
}

// ExtractFileKey extracts the file identifier from a figma.com URL.
// Both /file/ and /design/ URL forms are supported. The pattern is anchored
// so a figma.com path embedded in another URL does not match.
func ExtractFileKey(figmaURL string) (string, error) {
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$|\?)`)
	matches := re.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a figma.com URL with /file/ or /design/ path")
	}
	return matches[1], nil
}

// StyleMetadata describes one published style of a file: its defining node,
// kind (FILL, TEXT, EFFECT, GRID), name and description.
type StyleMetadata struct {
	Key         string `json:"key"`
	FileKey     string `json:"file_key"`
	NodeID      string `json:"node_id"`
	StyleType   string `json:"style_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type stylesResponse struct {
	Meta struct {
		Styles []StyleMetadata `json:"styles"`
	} `json:"meta"`
}

type fileResponse struct {
	Name string `json:"name"`
}

type nodesResponse struct {
	Name  string              `json:"name"`
	Nodes map[string]nodeData `json:"nodes"`
}

type nodeData struct {
	Document styleNode `json:"document"`
}

// styleNode is the wire shape of a style's defining node: only the fields
// the token pipeline consumes.
type styleNode struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Fills   []wirePaint    `json:"fills,omitempty"`
	Effects []wireEffect   `json:"effects,omitempty"`
	Style   *wireTypeStyle `json:"style,omitempty"`
}

type wirePaint struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *Color   `json:"color,omitempty"`
}

type wireEffect struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"`
	Radius  float64  `json:"radius,omitempty"`
	Color   *Color   `json:"color,omitempty"`
	Offset  *Vector  `json:"offset,omitempty"`
	Spread  *float64 `json:"spread,omitempty"`
}

type wireTypeStyle struct {
	FontFamily        string  `json:"fontFamily"`
	FontWeight        float64 `json:"fontWeight"`
	FontSize          float64 `json:"fontSize"`
	LineHeightPx      float64 `json:"lineHeightPx"`
	LineHeightPercent float64 `json:"lineHeightPercent"`
	LineHeightUnit    string  `json:"lineHeightUnit"`
	LetterSpacing     float64 `json:"letterSpacing"`
}

// GetPublishedStyles lists the published styles of a file.
func (c *Client) GetPublishedStyles(fileKey string) ([]StyleMetadata, error) {
	var resp stylesResponse
	if err := c.getJSON(fmt.Sprintf("%s/files/%s/styles", figmaAPIBase, fileKey), &resp); err != nil {
		return nil, err
	}
	return resp.Meta.Styles, nil
}

// GetFileName fetches only the file's display name. depth=1 keeps the
// payload small.
func (c *Client) GetFileName(fileKey string) (string, error) {
	var resp fileResponse
	if err := c.getJSON(fmt.Sprintf("%s/files/%s?depth=1", figmaAPIBase, fileKey), &resp); err != nil {
		return "", err
	}
	return resp.Name, nil
}

// FetchLocalStyles resolves every published FILL, TEXT and EFFECT style of
// a file into style records by fetching each style's defining node.
// GRID styles and styles whose nodes cannot be resolved are skipped.
// Remote/library styles are not followed.
func (c *Client) FetchLocalStyles(fileKey string) (*StyleSnapshot, error) {
	styles, err := c.GetPublishedStyles(fileKey)
	if err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}

	name, err := c.GetFileName(fileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch file name: %w", err)
	}

	nodeIDs := make([]string, 0, len(styles))
	for _, s := range styles {
		if s.NodeID != "" {
			nodeIDs = append(nodeIDs, s.NodeID)
		}
	}

	nodes := make(map[string]styleNode, len(nodeIDs))
	for i := 0; i < len(nodeIDs); i += maxStyleNodesPerRequest {
		end := i + maxStyleNodesPerRequest
		if end > len(nodeIDs) {
			end = len(nodeIDs)
		}
		batch, err := c.getStyleNodes(fileKey, nodeIDs[i:end])
		if err != nil {
			return nil, fmt.Errorf("fetch style nodes: %w", err)
		}
		for id, node := range batch {
			nodes[id] = node
		}
	}

	snap := &StyleSnapshot{Source: name}
	for _, meta := range styles {
		node, ok := nodes[meta.NodeID]
		if !ok {
			continue
		}
		switch meta.StyleType {
		case "FILL":
			snap.PaintStyles = append(snap.PaintStyles, paintStyleFromNode(meta, node))
		case "TEXT":
			snap.TextStyles = append(snap.TextStyles, textStyleFromNode(meta, node))
		case "EFFECT":
			snap.EffectStyles = append(snap.EffectStyles, effectStyleFromNode(meta, node))
		}
	}

	return snap, nil
}

func (c *Client) getStyleNodes(fileKey string, ids []string) (map[string]styleNode, error) {
	endpoint := fmt.Sprintf("%s/files/%s/nodes?ids=%s", figmaAPIBase, fileKey, url.QueryEscape(strings.Join(ids, ",")))

	var resp nodesResponse
	if err := c.getJSON(endpoint, &resp); err != nil {
		return nil, err
	}

	nodes := make(map[string]styleNode, len(resp.Nodes))
	for id, data := range resp.Nodes {
		nodes[id] = data.Document
	}
	return nodes, nil
}

// getJSON performs an authenticated GET with up to three attempts,
// backing off linearly and retrying on transport errors, 429 and 5xx.
func (c *Client) getJSON(endpoint string, out any) error {
	var lastErr error
	const maxRetries = 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("X-Figma-Token", c.accessToken)
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return lastErr
		}

		if readErr != nil {
			lastErr = fmt.Errorf("attempt %d: read response body: %w", attempt, readErr)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return lastErr
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
		return nil
	}

	return lastErr
}

func paintStyleFromNode(meta StyleMetadata, node styleNode) PaintStyle {
	style := PaintStyle{
		ID:          meta.NodeID,
		Name:        meta.Name,
		Description: meta.Description,
	}
	for _, fill := range node.Fills {
		if fill.Visible != nil && !*fill.Visible {
			continue
		}
		style.Paints = append(style.Paints, Paint{
			Type:    fill.Type,
			Color:   fill.Color,
			Opacity: fill.Opacity,
		})
	}
	return style
}

func textStyleFromNode(meta StyleMetadata, node styleNode) TextStyle {
	style := TextStyle{
		ID:          meta.NodeID,
		Name:        meta.Name,
		Description: meta.Description,
	}
	ts := node.Style
	if ts == nil {
		return style
	}

	style.FontFamily = ts.FontFamily
	style.FontSize = ts.FontSize
	style.FontStyle = styleNameFromWeight(ts.FontWeight)

	// The REST API reports line height as px/percent pairs plus a unit;
	// INTRINSIC_% is Figma's auto line height and carries no usable value.
	switch ts.LineHeightUnit {
	case "PIXELS":
		style.LineHeight = &LineHeight{Unit: UnitPixels, Value: ts.LineHeightPx}
	case "FONT_SIZE_%":
		style.LineHeight = &LineHeight{Unit: UnitPercent, Value: ts.LineHeightPercent}
	}

	if ts.LetterSpacing != 0 {
		style.LetterSpacing = &LetterSpacing{Unit: UnitPixels, Value: ts.LetterSpacing}
	}

	return style
}

func effectStyleFromNode(meta StyleMetadata, node styleNode) EffectStyle {
	style := EffectStyle{
		ID:          meta.NodeID,
		Name:        meta.Name,
		Description: meta.Description,
	}
	for _, effect := range node.Effects {
		if effect.Visible != nil && !*effect.Visible {
			continue
		}
		style.Effects = append(style.Effects, Effect{
			Type:   effect.Type,
			Color:  effect.Color,
			Offset: effect.Offset,
			Radius: effect.Radius,
			Spread: effect.Spread,
		})
	}
	return style
}

// styleNameFromWeight maps the REST API's numeric font weight back to the
// weight-variant display name the plugin API would report.
func styleNameFromWeight(weight float64) string {
	switch int(weight) {
	case 100:
		return "Thin"
	case 200:
		return "Extra Light"
	case 300:
		return "Light"
	case 400:
		return "Regular"
	case 500:
		return "Medium"
	case 600:
		return "Semi Bold"
	case 700:
		return "Bold"
	case 800:
		return "Extra Bold"
	case 900:
		return "Black"
	default:
		return ""
	}
}
