// Command geomsim scatters overlapping circles, relaxes them apart
// with the spatial package and renders the result to a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/spatial"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		output     = flag.String("output", "geomsim.png", "output file")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	circles := scatter(cfg)
	spatial.Relax(circles, cfg.Passes, spatial.WithPadding(cfg.Padding))

	if err := render(circles, *width, *height, *output); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	log.Printf("Rendered %d circles to %s (%dx%d) after %d passes\n",
		len(circles), *output, *width, *height, cfg.Passes)
}

// scatter places circles uniformly in the configured square.
func scatter(cfg Config) []*spatial.Circle {
	rng := rand.New(rand.NewSource(cfg.Seed))
	circles := make([]*spatial.Circle, cfg.Circles)
	for i := range circles {
		circles[i] = &spatial.Circle{
			X:      rng.Float64() * cfg.Spread,
			Y:      rng.Float64() * cfg.Spread,
			Radius: cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
		}
	}
	return circles
}

// render fits the circle field into the image through a single affine
// transform and draws every circle.
func render(circles []*spatial.Circle, width, height int, path string) error {
	bounds := worldBounds(circles)

	// Uniform scale, preserving aspect, with a small margin.
	const margin = 10
	sx := (float64(width) - 2*margin) / bounds.Width
	sy := (float64(height) - 2*margin) / bounds.Height
	scale := min(sx, sy)

	tr := geom.NewTransform()
	tr.ScaleX = scale
	tr.ScaleY = scale
	tr.TranslateX = margin - bounds.Left*scale
	tr.TranslateY = margin - bounds.Top*scale
	m := tr.Matrix()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)

	gc.SetFillColor(color.RGBA{R: 0x1e, G: 0x22, B: 0x2e, A: 0xff})
	draw2dkit.Rectangle(gc, 0, 0, float64(width), float64(height))
	gc.Fill()

	gc.SetFillColor(color.RGBA{R: 0x4c, G: 0x9e, B: 0xd9, A: 0xb0})
	gc.SetStrokeColor(color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff})
	gc.SetLineWidth(1.5)
	for _, c := range circles {
		p := c.Center().Transform(m)
		draw2dkit.Circle(gc, p.X, p.Y, c.Radius*scale)
		gc.FillStroke()
	}

	return draw2dimg.SaveToPngFile(path, img)
}

// worldBounds is the union of every circle's bounding box.
func worldBounds(circles []*spatial.Circle) geom.Rect {
	bounds := circles[0].Bounds(0)
	for _, c := range circles[1:] {
		bounds = bounds.Union(c.Bounds(0))
	}
	return bounds
}
