// Package render formats ranked colour results as text, JSON or an SVG
// swatch.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/llaisdy/dominant-colours/internal/colour"
)

// Format selects the textual output rendering.
type Format string

const (
	// FormatText renders one human-readable line per colour.
	FormatText Format = "text"

	// FormatJSON renders a structured document with a colours array.
	FormatJSON Format = "json"
)

// ValidFormats returns the list of accepted format names.
func ValidFormats() []Format {
	return []Format{FormatText, FormatJSON}
}

// IsValidFormat checks whether the given format name is accepted.
func IsValidFormat(f Format) bool {
	for _, valid := range ValidFormats() {
		if f == valid {
			return true
		}
	}
	return false
}

// Render formats ranked results according to the requested format.
func Render(results []colour.ColourInfo, format Format) (string, error) {
	switch format {
	case FormatText:
		return Text(results), nil
	case FormatJSON:
		return JSON(results)
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %v)", format, ValidFormats())
	}
}

// Text renders one line per colour in rank order:
//
//	RGB: (r, g, b) - pp.p% of image
func Text(results []colour.ColourInfo) string {
	var b strings.Builder
	b.WriteString("Dominant colours (sorted by prevalence):\n")
	for _, c := range results {
		fmt.Fprintf(&b, "RGB: (%d, %d, %d) - %.1f%% of image\n",
			c.RGB.R, c.RGB.G, c.RGB.B, c.Percentage)
	}
	return b.String()
}

// colourJSON is one element of the colours array.
type colourJSON struct {
	RGB        [3]uint8 `json:"rgb"`
	Percentage float64  `json:"percentage"`
	Hex        string   `json:"hex"`
}

// documentJSON is the top-level JSON output shape.
type documentJSON struct {
	Colours []colourJSON `json:"colours"`
}

// JSON renders the results as an indented JSON document with rgb,
// percentage and hex fields per colour.
func JSON(results []colour.ColourInfo) (string, error) {
	doc := documentJSON{Colours: make([]colourJSON, len(results))}
	for i, c := range results {
		doc.Colours[i] = colourJSON{
			RGB:        [3]uint8{c.RGB.R, c.RGB.G, c.RGB.B},
			Percentage: c.Percentage,
			Hex:        c.RGB.Hex(),
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal colours to JSON: %w", err)
	}

	return string(data) + "\n", nil
}
