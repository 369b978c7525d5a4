// Command maskreplay replays a recorded brush session over an image and
// writes the exported inpainting mask.
//
// Usage:
//
//	maskreplay -script session.yaml -image portrait.png -out mask.png -preview view.png
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/inpaint"
)

func main() {
	var (
		scriptPath  = flag.String("script", "session.yaml", "replay script")
		imagePath   = flag.String("image", "", "source image (defaults to the script's source size)")
		output      = flag.String("out", "mask.png", "output mask file")
		previewPath = flag.String("preview", "", "optional preview output file")
		nearest     = flag.Bool("nearest", false, "use nearest-neighbor resampling")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		inpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, err := os.Open(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to open script: %v", err)
	}
	script, err := parseScript(f)
	_ = f.Close()
	if err != nil {
		log.Fatalf("Failed to read script: %v", err)
	}

	src := inpaint.NewSourceSize(script.Source.Width, script.Source.Height)
	if *imagePath != "" {
		if src, err = inpaint.LoadSource(*imagePath); err != nil {
			log.Fatalf("Failed to load image: %v", err)
		}
	}

	opts := []inpaint.CanvasOption{inpaint.WithBrushSize(script.Brush)}
	if *nearest {
		opts = append(opts, inpaint.WithResampler(inpaint.NearestNeighbor))
	}
	c := inpaint.NewCanvas(opts...)
	c.SetSource(src)
	if !c.Layout(script.Container.Width, script.Container.Height) {
		log.Fatalf("Cannot lay out %dx%d source in %dx%d container",
			src.Width(), src.Height(), script.Container.Width, script.Container.Height)
	}

	if err := replay(c, script.Events); err != nil {
		log.Fatalf("Replay failed: %v", err)
	}

	if *previewPath != "" {
		if err := writePreview(c, *previewPath); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
	}

	data, err := c.ExportMaskPNG()
	if err != nil {
		log.Fatalf("Failed to export mask: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil { //nolint:gosec // output is a user artifact
		log.Fatalf("Failed to save: %v", err)
	}

	fr := c.Frame()
	log.Printf("Mask saved to %s (%dx%d, drawn at %dx%d)\n", *output, fr.SourceWidth, fr.SourceHeight, fr.Width, fr.Height)
}

func writePreview(c *inpaint.Canvas, path string) error {
	img, err := c.Render()
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
