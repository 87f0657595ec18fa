package colour

import (
	"image"
)

// Point is a position in RGB colour space. Samples and centroids are both
// Points; components are carried as float64 during clustering to avoid
// truncation bias.
type Point struct {
	R, G, B float64
}

// distanceSq returns the squared Euclidean distance between two points.
// Squared distance preserves nearest-centroid ordering and skips the sqrt.
func (p Point) distanceSq(other Point) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return dr*dr + dg*dg + db*db
}

// Samples converts a decoded image into the ordered sample set: one Point
// per pixel in row-major order. Every pixel is sampled; the caller is
// expected to have downsampled large images beforehand.
func Samples(img image.Image) ([]Point, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}

	samples := make([]Point, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; fold to [0, 255].
			samples = append(samples, Point{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
			})
		}
	}

	return samples, nil
}
