// Command halftone renders an image as a grid of brightness-sized dots.
//
// Usage:
//
//	halftone [flags] <image>
//
// The image may be a file path, a data: URL or an http(s) URL.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/gogpu/halftone"
	"github.com/gogpu/halftone/source"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaults := halftone.DefaultParams()
	return &cli.App{
		Name:      "halftone",
		Usage:     "render an image as a dot pattern",
		ArgsUsage: "<image path | data: URL | http(s) URL>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "halftone.png",
				Usage:   "output PNG file, - for stdout",
				EnvVars: []string{"HALFTONE_OUTPUT"},
			},
			&cli.IntFlag{
				Name:    "width",
				Value:   halftone.DefaultWidth,
				Usage:   "canvas width in pixels",
				EnvVars: []string{"HALFTONE_WIDTH"},
			},
			&cli.IntFlag{
				Name:    "height",
				Usage:   "canvas height in pixels (0 = 3/4 of the width, at most 600)",
				EnvVars: []string{"HALFTONE_HEIGHT"},
			},
			&cli.IntFlag{
				Name:    "dot-size",
				Value:   defaults.DotSize,
				Usage:   "dot size in pixels",
				EnvVars: []string{"HALFTONE_DOT_SIZE"},
			},
			&cli.IntFlag{
				Name:    "dot-spacing",
				Value:   defaults.DotSpacing,
				Usage:   "gap between dots in pixels",
				EnvVars: []string{"HALFTONE_DOT_SPACING"},
			},
			&cli.StringFlag{
				Name:    "dot-color",
				Value:   "#FFFFFF",
				Usage:   "dot color as #RGB or #RRGGBB",
				EnvVars: []string{"HALFTONE_DOT_COLOR"},
			},
			&cli.StringFlag{
				Name:    "background",
				Value:   defaults.Background.Hex(),
				Usage:   "background color as #RGB or #RRGGBB",
				EnvVars: []string{"HALFTONE_BACKGROUND"},
			},
			&cli.StringFlag{
				Name:    "interpolation",
				Value:   halftone.InterpBilinear.String(),
				Usage:   "scaling kernel: nearest, approx-bilinear, bilinear, bicubic",
				EnvVars: []string{"HALFTONE_INTERPOLATION"},
			},
			&cli.BoolFlag{
				Name:  "aliased",
				Usage: "draw hard-edged dots without antialiasing",
			},
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "write the scaled image without the dot effect",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 30 * time.Second,
				Usage: "time limit for loading the image",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output to stderr",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	ref := c.Args().First()
	if ref == "" {
		return cli.Exit("an input image is required", 1)
	}
	logger := setupLogger(c.App.ErrWriter, c.Bool("verbose"))

	params, err := paramsFromFlags(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	explicit := c.IsSet("dot-size") || c.IsSet("dot-spacing")
	if explicit && !params.InSliderRange() {
		logger.Warn("parameters outside the usual slider ranges",
			"dotSize", params.DotSize, "dotSizeRange", halftone.DotSizeRange,
			"dotSpacing", params.DotSpacing, "dotSpacingRange", halftone.DotSpacingRange)
	}
	interp, err := halftone.ParseInterpolation(c.String("interpolation"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	mode := halftone.RasterizerAntialiased
	if c.Bool("aliased") {
		mode = halftone.RasterizerAliased
	}

	width, height := c.Int("width"), c.Int("height")
	if height == 0 {
		width, height = halftone.SizeForContainer(width)
	}
	if width <= 0 || height <= 0 {
		return cli.Exit(fmt.Sprintf("invalid canvas size %dx%d", width, height), 1)
	}

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()
	img, err := source.Load(ctx, ref)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ed := halftone.NewEditor(
		halftone.WithSize(width, height),
		halftone.WithParams(params),
		halftone.WithRasterizer(mode),
		halftone.WithInterpolation(interp),
	)
	if err := ed.LoadImage(img); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if !c.Bool("preview") {
		start := time.Now()
		if err := ed.Apply(); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		logger.Debug("effect applied", "elapsed", time.Since(start))
	}

	output := c.String("output")
	if err := write(ed, output, c.App.Writer, c.Bool("preview")); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if output != "-" {
		logger.Info("saved", "path", output, "width", width, "height", height)
	}
	return nil
}

func paramsFromFlags(c *cli.Context) (halftone.Params, error) {
	dotColor, err := halftone.ParseHex(c.String("dot-color"))
	if err != nil {
		return halftone.Params{}, err
	}
	background, err := halftone.ParseHex(c.String("background"))
	if err != nil {
		return halftone.Params{}, err
	}
	p := halftone.Params{
		DotSize:    c.Int("dot-size"),
		DotSpacing: c.Int("dot-spacing"),
		DotColor:   dotColor,
		Background: background,
	}
	return p, p.Validate()
}

// write stores the editor output at path, or on stdout for "-".
func write(ed *halftone.Editor, path string, stdout io.Writer, preview bool) error {
	if path == "-" {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("refusing to write PNG data to a terminal; use -o <file>")
		}
		if preview {
			return ed.Canvas().EncodePNG(stdout)
		}
		return ed.Export(stdout)
	}
	if preview {
		return ed.Canvas().SavePNG(path)
	}
	return ed.ExportFile(path)
}

func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	halftone.SetLogger(l)
	return l
}
