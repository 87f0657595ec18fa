package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeThreeBandPNG writes a 100x100 PNG that is 50% red, 30% green and
// 20% blue, and returns its path.
func writeThreeBandPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		var c color.RGBA
		switch {
		case y < 50:
			c = color.RGBA{R: 255, A: 255}
		case y < 80:
			c = color.RGBA{G: 255, A: 255}
		default:
			c = color.RGBA{B: 255, A: 255}
		}
		for x := 0; x < 100; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "bands.png")
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

// execute runs a fresh root command with the given args and returns its
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootFlagDefaults(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		flag string
		want string
	}{
		{flag: "colours", want: "6"},
		{flag: "format", want: "text"},
		{flag: "swatch", want: "false"},
		{flag: "output", want: "swatch.svg"},
		{flag: "iterations", want: "100"},
	}

	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("flag --%s not registered", tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("flag --%s default = %q, want %q", tt.flag, f.DefValue, tt.want)
		}
	}
}

func TestRootRequiresImageArgument(t *testing.T) {
	if _, err := execute(t); err == nil {
		t.Fatal("command succeeded without an image argument, want error")
	}
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	path := writeThreeBandPNG(t)

	if _, err := execute(t, "--format", "yaml", path); err == nil {
		t.Fatal("command accepted unknown format, want error")
	}
}

func TestRootRejectsMissingImage(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("command succeeded with a missing image, want error")
	}
}

func TestRootRejectsZeroColours(t *testing.T) {
	path := writeThreeBandPNG(t)

	if _, err := execute(t, "--colours", "0", path); err == nil {
		t.Fatal("command accepted --colours 0, want error")
	}
}

func TestRootTextOutput(t *testing.T) {
	path := writeThreeBandPNG(t)

	output, err := execute(t, "--colours", "3", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	if !strings.Contains(output, "Dominant colours (sorted by prevalence):") {
		t.Errorf("output missing heading:\n%s", output)
	}

	wantInOrder := []string{
		"RGB: (255, 0, 0) - 50.0% of image",
		"RGB: (0, 255, 0) - 30.0% of image",
		"RGB: (0, 0, 255) - 20.0% of image",
	}
	pos := 0
	for _, want := range wantInOrder {
		idx := strings.Index(output[pos:], want)
		if idx < 0 {
			t.Fatalf("output missing %q in rank order:\n%s", want, output)
		}
		pos += idx + len(want)
	}
}

func TestRootJSONOutput(t *testing.T) {
	path := writeThreeBandPNG(t)

	output, err := execute(t, "-c", "3", "-f", "json", path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var doc struct {
		Colours []struct {
			RGB        []int   `json:"rgb"`
			Percentage float64 `json:"percentage"`
			Hex        string  `json:"hex"`
		} `json:"colours"`
	}
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}

	if len(doc.Colours) != 3 {
		t.Fatalf("got %d colours, want 3", len(doc.Colours))
	}
	if doc.Colours[0].Hex != "#ff0000" {
		t.Errorf("first hex = %q, want %q", doc.Colours[0].Hex, "#ff0000")
	}
	if doc.Colours[0].Percentage != 50.0 {
		t.Errorf("first percentage = %v, want 50.0", doc.Colours[0].Percentage)
	}
}

func TestRootWritesSwatch(t *testing.T) {
	path := writeThreeBandPNG(t)
	swatchPath := filepath.Join(t.TempDir(), "palette.svg")

	_, err := execute(t, "-c", "3", "--swatch", "--output", swatchPath, path)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	data, err := os.ReadFile(swatchPath)
	if err != nil {
		t.Fatalf("swatch file not written: %v", err)
	}
	if !strings.Contains(string(data), "rgb(255, 0, 0)") {
		t.Errorf("swatch missing dominant colour tile:\n%s", data)
	}
}

func TestRootNoSwatchWithoutFlag(t *testing.T) {
	path := writeThreeBandPNG(t)
	swatchPath := filepath.Join(t.TempDir(), "palette.svg")

	if _, err := execute(t, "-c", "3", "--output", swatchPath, path); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	if _, err := os.Stat(swatchPath); !os.IsNotExist(err) {
		t.Error("swatch file written without --swatch")
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(output, "dominant-colours version") {
		t.Errorf("version output = %q", output)
	}
}
