package colour

import (
	"fmt"
	"image"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the colour in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a "#rrggbb" hex string back into an RGB value.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("failed to parse hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// ColourInfo is one ranked result: a cluster centroid truncated to 8-bit
// channels and the share of samples that cluster owns.
type ColourInfo struct {
	RGB        RGB
	Percentage float64
}

// Aggregate pairs each centroid with its cluster's share of the sample
// set. Results are in cluster-index order; empty clusters report 0.0.
// Centroid components are truncated, not rounded, when narrowing to
// 8-bit channels.
func Aggregate(centroids []Point, assignments []int) []ColourInfo {
	sizes := make([]int, len(centroids))
	for _, c := range assignments {
		sizes[c]++
	}

	total := float64(len(assignments))
	results := make([]ColourInfo, len(centroids))
	for i, cent := range centroids {
		results[i] = ColourInfo{
			RGB: RGB{
				R: uint8(cent.R),
				G: uint8(cent.G),
				B: uint8(cent.B),
			},
			Percentage: float64(sizes[i]) / total * 100.0,
		}
	}

	return results
}

// Rank sorts results by percentage descending, in place. The sort is
// stable so equal-percentage entries keep their cluster-index order.
func Rank(results []ColourInfo) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Percentage > results[j].Percentage
	})
}

// Dominant runs the full pipeline over a decoded image: sample every
// pixel, cluster into k colours, aggregate cluster sizes into percentages
// and rank most-dominant first.
func (e *KMeans) Dominant(img image.Image, k, maxIterations int) ([]ColourInfo, error) {
	samples, err := Samples(img)
	if err != nil {
		return nil, err
	}

	centroids, assignments, err := e.Fit(samples, k, maxIterations)
	if err != nil {
		return nil, err
	}

	results := Aggregate(centroids, assignments)
	Rank(results)
	return results, nil
}
