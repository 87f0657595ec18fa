package image

import (
	"image"

	"golang.org/x/image/draw"
)

// Default bounds for the pre-clustering downsample. Clustering cost is
// linear in pixel count, so capping the grid at 150x150 keeps fitting
// fast without noticeably shifting the dominant colours.
const (
	DefaultMaxWidth  = 150
	DefaultMaxHeight = 150
)

// FitWithin scales an image down to fit within maxWidth x maxHeight,
// preserving aspect ratio. Images already within bounds are returned
// unchanged. Scaling uses Catmull-Rom resampling.
func FitWithin(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	// Scale by the tighter dimension.
	scaleW := float64(maxWidth) / float64(width)
	scaleH := float64(maxHeight) / float64(height)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
