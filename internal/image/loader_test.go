package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-colour PNG and returns its path.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Errorf("loaded image is %dx%d, want 4x4", bounds.Dx(), bounds.Dy())
	}

	r, _, _, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 255 {
		t.Errorf("pixel red channel = %d, want 255", uint8(r>>8))
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	notImage := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notImage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(dir, "missing.png")},
		{name: "directory", path: dir},
		{name: "not an image", path: notImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFileLoader().Load(tt.path); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.path)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	path := writeTestPNG(t)

	if err := ValidateImagePath(path); err != nil {
		t.Errorf("ValidateImagePath(%q) failed: %v", path, err)
	}

	// URLs are accepted without fetching.
	if err := ValidateImagePath("https://example.com/image.png"); err != nil {
		t.Errorf("ValidateImagePath rejected URL: %v", err)
	}

	if err := ValidateImagePath(""); err == nil {
		t.Error("ValidateImagePath accepted an empty path")
	}
	if err := ValidateImagePath(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("ValidateImagePath accepted a missing file")
	}
}

func TestSmartLoaderLoadsLocalFiles(t *testing.T) {
	path := writeTestPNG(t)

	img, err := NewSmartLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("loaded image width = %d, want 4", img.Bounds().Dx())
	}
}
