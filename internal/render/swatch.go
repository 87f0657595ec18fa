package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/llaisdy/dominant-colours/internal/colour"
)

// Swatch tile geometry. Each colour gets an equal-width tile with its RGB
// triple and percentage printed underneath.
const (
	swatchTileSize   = 100
	swatchViewWidth  = 600
	swatchViewHeight = 140
)

// Swatch renders the results as an SVG strip of colour tiles in rank
// order.
func Swatch(results []colour.ColourInfo) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`,
		swatchViewWidth, swatchViewHeight)

	for i, c := range results {
		x := i * swatchTileSize
		fmt.Fprintf(&b, "\n    <rect x=\"%d\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"%s\"/>",
			x, swatchTileSize, swatchTileSize, c.RGB)
		fmt.Fprintf(&b, "\n    <text x=\"%d\" y=\"115\" font-family=\"Arial\" font-size=\"10\" fill=\"black\">%d, %d, %d</text>",
			x+5, c.RGB.R, c.RGB.G, c.RGB.B)
		fmt.Fprintf(&b, "\n    <text x=\"%d\" y=\"130\" font-family=\"Arial\" font-size=\"10\" fill=\"black\">%.1f%%</text>",
			x+5, c.Percentage)
	}

	b.WriteString("\n</svg>\n")
	return b.String()
}

// WriteSwatch renders the swatch and writes it to the given path.
func WriteSwatch(results []colour.ColourInfo, path string) error {
	if err := os.WriteFile(path, []byte(Swatch(results)), 0644); err != nil {
		return fmt.Errorf("failed to write swatch file: %w", err)
	}
	return nil
}
