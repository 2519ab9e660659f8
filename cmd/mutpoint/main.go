// Command mutpoint renders a chart file to SVG, PNG or terminal text.
//
// Usage:
//
//	mutpoint -in chart.yaml -out chart.svg
//	mutpoint -in points.csv -out chart.png -curve natural -threshold 3
//	mutpoint -in points.csv -format term
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nonnontrivial/mutpoint"
	"github.com/nonnontrivial/mutpoint/internal/chartfile"
	"github.com/nonnontrivial/mutpoint/surface"
)

type config struct {
	in, out   string
	format    string
	curve     string
	threshold float64
	diff      bool // -threshold was given
	width     float64
	height    float64
	scale     float64
	columns   int
	color     bool
}

func main() {
	var cfg config
	verbose := cfg.register(flag.CommandLine)
	flag.Parse()
	cfg.visit(flag.CommandLine)

	if *verbose {
		mutpoint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if cfg.in == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("mutpoint: %v", err)
	}
}

// register defines the command's flags on fs. It returns the -v flag.
func (cfg *config) register(fs *flag.FlagSet) *bool {
	fs.StringVar(&cfg.in, "in", "", "chart file (.yaml, .yml or .csv)")
	fs.StringVar(&cfg.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&cfg.format, "format", "", "output format: "+strings.Join(surface.List(), ", ")+" (default from -out, else svg)")
	fs.StringVar(&cfg.curve, "curve", "", "curve kind: linear, basis, natural, step")
	fs.Float64Var(&cfg.threshold, "threshold", 0, "diff threshold; unset keeps the chart file's")
	fs.Float64Var(&cfg.width, "width", 0, "chart width in pixels")
	fs.Float64Var(&cfg.height, "height", 0, "chart height in pixels")
	fs.Float64Var(&cfg.scale, "scale", 1, "pixel scale of png output")
	fs.IntVar(&cfg.columns, "columns", 0, "terminal output width in cells")
	fs.BoolVar(&cfg.color, "color", false, "color terminal output")
	return fs.Bool("v", false, "log debug output to stderr")
}

// visit records which flags were set on the command line of a parsed fs.
func (cfg *config) visit(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "threshold" {
			cfg.diff = true
		}
	})
}

func run(cfg config, stdout io.Writer) (err error) {
	c, err := chartfile.Load(cfg.in)
	if err != nil {
		return err
	}
	if err := cfg.apply(c); err != nil {
		return err
	}

	w := stdout
	if cfg.out != "-" && cfg.out != "" {
		var f *os.File
		if f, err = os.Create(cfg.out); err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}

	s, err := surface.NewSurfaceByName(cfg.formatName(), surface.Options{
		Writer:  w,
		Scale:   cfg.scale,
		Columns: cfg.columns,
		Color:   cfg.color,
	})
	if err != nil {
		return err
	}

	mutpoint.Logger().Debug("rendering", "in", cfg.in, "out", cfg.out, "format", cfg.formatName(), "points", len(c.Points))
	return c.NewChart().Render(s, c.Renderers())
}

// apply overrides the chart file with the flags that were set.
func (cfg config) apply(c *chartfile.Chart) error {
	if cfg.curve != "" {
		kind, err := mutpoint.ParseCurveKind(cfg.curve)
		if err != nil {
			return err
		}
		c.Curve = kind
	}
	if cfg.diff {
		c.Diff = &mutpoint.DiffConfig{Threshold: cfg.threshold}
	}
	if cfg.width > 0 {
		c.Width = cfg.width
	}
	if cfg.height > 0 {
		c.Height = cfg.height
	}
	return nil
}

// formatName returns -format, or the format implied by the output file
// extension, or svg.
func (cfg config) formatName() string {
	if cfg.format != "" {
		return cfg.format
	}
	switch strings.ToLower(filepath.Ext(cfg.out)) {
	case ".png":
		return "png"
	case ".txt":
		return "term"
	default:
		return "svg"
	}
}
