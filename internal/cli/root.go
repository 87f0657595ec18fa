// Package cli provides the command-line interface for dominant-colours.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/llaisdy/dominant-colours/internal/colour"
	"github.com/llaisdy/dominant-colours/internal/image"
	"github.com/llaisdy/dominant-colours/internal/render"
	"github.com/llaisdy/dominant-colours/internal/version"
)

// options holds the flag values for the root command.
type options struct {
	colours    int
	format     formatFlag
	swatch     bool
	output     string
	iterations int
	preview    bool
	verbose    bool
}

// formatFlag is a pflag.Value restricted to the closed set of output
// formats, so invalid values are rejected at parse time.
type formatFlag struct {
	value render.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string {
	return string(f.value)
}

func (f *formatFlag) Set(s string) error {
	format := render.Format(s)
	if !render.IsValidFormat(format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", s, render.ValidFormats())
	}
	f.value = format
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

// NewRootCmd builds the root command. Constructed fresh per call so tests
// can execute isolated command trees.
func NewRootCmd() *cobra.Command {
	opts := &options{format: formatFlag{value: render.FormatText}}

	cmd := &cobra.Command{
		Use:   "dominant-colours <image>",
		Short: "Extract dominant colours from images using k-means clustering",
		Long: `Dominant-colours extracts the most prevalent colours from an image by
clustering its pixels in RGB space and reporting the cluster centroids
ranked by prevalence.

The image is downsampled to at most 150x150 pixels before clustering, so
large images analyse quickly without noticeably shifting the results.

Supported image formats: JPEG, PNG, GIF, WebP. The image argument may
also be an HTTP(S) URL.

Examples:
  # Extract 6 colours (default) from an image
  dominant-colours wallpaper.jpg

  # Extract 3 colours as JSON
  dominant-colours --colours 3 --format json wallpaper.png

  # Write an SVG swatch alongside the text output
  dominant-colours --swatch --output palette.svg wallpaper.jpg

  # Show colour previews in the terminal
  dominant-colours --preview wallpaper.jpg`,
		Args:         cobra.ExactArgs(1),
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyse(cmd, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", 6, "number of colours to extract")
	cmd.Flags().VarP(&opts.format, "format", "f", "output format (text, json)")
	cmd.Flags().BoolVarP(&opts.swatch, "swatch", "s", false, "write an SVG colour swatch")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "swatch.svg", "SVG swatch output file")
	cmd.Flags().IntVar(&opts.iterations, "iterations", colour.DefaultMaxIterations, "maximum k-means iterations")
	cmd.Flags().BoolVarP(&opts.preview, "preview", "p", false, "show colour previews in the terminal")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.SetVersionTemplate(version.String() + "\n")
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command. Called by main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger configures progress logging. Progress goes to stderr as log
// events so piped output stays clean.
func newLogger(verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "dominant-colours",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "dominant-colours",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// runAnalyse executes the full pipeline: load, downsample, cluster,
// render. Nothing is written until fitting has succeeded, so a failed run
// never leaves partial output behind.
func runAnalyse(cmd *cobra.Command, opts *options, imagePath string) error {
	logger := newLogger(opts.verbose)
	format := opts.format.value

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	img = image.FitWithin(img, image.DefaultMaxWidth, image.DefaultMaxHeight)
	bounds = img.Bounds()
	logger.Debug("image downsampled", "width", bounds.Dx(), "height", bounds.Dy())

	logger.Debug("clustering", "colours", opts.colours, "iterations", opts.iterations)
	engine := colour.NewKMeans()
	results, err := engine.Dominant(img, opts.colours, opts.iterations)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	output, err := render.Render(results, format)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if opts.preview && format == render.FormatText && stdoutIsTerminal() {
		output = previewText(results)
	}

	fmt.Fprint(cmd.OutOrStdout(), output)

	if opts.swatch {
		logger.Debug("writing swatch", "path", opts.output)
		if err := render.WriteSwatch(results, opts.output); err != nil {
			return fmt.Errorf("failed to save colour swatch: %w", err)
		}
	}

	return nil
}

// previewText renders the text output with an ANSI colour tile in front
// of each line.
func previewText(results []colour.ColourInfo) string {
	output := "Dominant colours (sorted by prevalence):\n"
	for _, c := range results {
		output += fmt.Sprintf("%s  RGB: (%d, %d, %d) - %.1f%% of image\n",
			colour.Preview(c.RGB, 8), c.RGB.R, c.RGB.G, c.RGB.B, c.Percentage)
	}
	return output
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newVersionCmd builds the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
