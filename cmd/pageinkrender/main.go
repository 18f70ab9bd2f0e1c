// Command pageinkrender renders a synthetic demo page progressively
// and writes the result to a PNG, exercising pausing, color schemes,
// fill-to-stroke conversion and the forms overlay from the command
// line.
//
// Colors are accepted in any CSS form ("red", "#ff0000",
// "rgba(255,0,0,0.5)"). A color scheme is four comma-separated
// colors: path-fill,path-stroke,text-fill,text-stroke.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/pageink/pageink"
	"github.com/pageink/pageink/forms"
	"github.com/pageink/pageink/text"
)

func main() {
	var (
		width        = flag.Int("width", 595, "page width in pixels")
		height       = flag.Int("height", 842, "page height in pixels")
		output       = flag.String("output", "page.png", "output PNG file")
		background   = flag.String("bg", "", "background color (CSS syntax)")
		scheme       = flag.String("scheme", "", "color scheme: four CSS colors, comma separated")
		fontPath     = flag.String("font", "", "TTF/OTF font for the demo text")
		pauseEvery   = flag.Int("pause-every", 0, "pause after every N primitives (0 = no pausing)")
		annotations  = flag.Bool("annotations", true, "include annotations")
		fillToStroke = flag.Bool("fill-to-stroke", false, "convert filled paths to stroked outlines")
		grayscale    = flag.Bool("grayscale", false, "render in grayscale")
		verbose      = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Parse()

	if *verbose {
		pageink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var flags pageink.RenderFlags
	if *annotations {
		flags |= pageink.FlagAnnotations
	}
	if *fillToStroke {
		flags |= pageink.FlagConvertFillToStroke
	}
	if *grayscale {
		flags |= pageink.FlagGrayscale
	}

	var opts []pageink.Option
	if *background != "" {
		c, err := parseColor(*background)
		if err != nil {
			log.Fatalf("invalid -bg: %v", err)
		}
		opts = append(opts, pageink.WithBackground(c))
	}
	if *scheme != "" {
		cs, err := parseScheme(*scheme)
		if err != nil {
			log.Fatalf("invalid -scheme: %v", err)
		}
		opts = append(opts, pageink.WithColorScheme(cs))
	}
	if *pauseEvery > 1 {
		opts = append(opts, pageink.WithStepInterval(*pauseEvery))
	}

	model := demoForms(*width, *height)
	scene := demoScene(*width, *height, *fontPath, model)

	surf := pageink.NewSurface(*width, *height)
	if surf == nil {
		log.Fatalf("invalid page size %dx%d", *width, *height)
	}

	var pause pageink.PauseFunc
	steps := 0
	if *pauseEvery > 0 {
		pause = func() bool {
			steps++
			return true
		}
	}

	session, status := pageink.Start(surf, scene, flags, pause, opts...)
	if status == pageink.StatusFailed {
		log.Fatal("render failed to start")
	}
	for status == pageink.StatusToBeContinued {
		status = session.Continue(pause)
	}
	surf, err := session.Close(model)
	if err != nil {
		log.Fatalf("close: %v", err)
	}

	if err := writePNG(*output, surf.ToImage()); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
	digest := surf.Digest()
	log.Printf("%s (%dx%d, %d ops, %d pauses, digest %x)",
		*output, surf.Width(), surf.Height(), scene.Len(), steps, digest[:8])
}

func parseColor(s string) (pageink.Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return 0, err
	}
	r, g, b, a := c.RGBA255()
	return pageink.ARGB(a, r, g, b), nil
}

func parseScheme(s string) (*pageink.ColorScheme, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("want 4 colors, got %d", len(parts))
	}
	var cs pageink.ColorScheme
	for i, dst := range []*pageink.Color{&cs.PathFill, &cs.PathStroke, &cs.TextFill, &cs.TextStroke} {
		c, err := parseColor(strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, err
		}
		*dst = c
	}
	return &cs, nil
}

// demoScene builds a page touching every primitive kind: filled and
// stroked paths, a clipped image, a Multiply-blended highlight
// annotation, text when a font is supplied, and form field markers.
func demoScene(w, h int, fontPath string, model *forms.Model) *pageink.Scene {
	fw, fh := float64(w), float64(h)
	b := pageink.NewSceneBuilder()

	// Header band and rule.
	b.FillRect(0, 0, fw, 0.08*fh, pageink.RGB(36, 41, 84))
	rule := pageink.NewPath().MoveTo(0.05*fw, 0.1*fh).LineTo(0.95*fw, 0.1*fh)
	b.StrokePath(rule, pageink.RGB(36, 41, 84), 2)

	// Two columns of body "paragraphs" as rounded blocks.
	for col := 0; col < 2; col++ {
		x := 0.05*fw + float64(col)*0.48*fw
		for row := 0; row < 6; row++ {
			y := 0.14*fh + float64(row)*0.12*fh
			b.FillRect(x, y, 0.42*fw, 0.07*fh, pageink.RGB(225, 228, 238))
		}
	}

	// A clipped image: checkerboard resampled into a circle.
	disc := pageink.NewPath().Ellipse(0.5*fw, 0.55*fh, 0.18*fw, 0.18*fw)
	b.PushClipPath(disc, pageink.FillNonZero)
	b.Image(checkerboard(64, 64), pageink.
		Translate(0.32*fw, 0.55*fh-0.18*fw).
		Multiply(pageink.Scale(0.36*fw, 0.36*fw)), 255)
	b.PopClip()

	// Demo text.
	if fontPath != "" {
		src, err := text.NewSourceFromFile(fontPath)
		if err != nil {
			log.Fatalf("loading font: %v", err)
		}
		run, err := text.Run(src.Face(0.035*fh), "pageink progressive renderer",
			0.05*fw, 0.06*fh, pageink.White, pageink.TextFill)
		if err != nil {
			log.Fatalf("shaping text: %v", err)
		}
		b.GlyphRunPrim(run)
	}

	// Highlight annotation over the first block, Multiply blended.
	b.Annotation(true).Blend(pageink.BlendMultiply)
	b.FillRect(0.05*fw, 0.14*fh, 0.42*fw, 0.07*fh, pageink.ARGB(255, 255, 255, 0))
	b.Blend(pageink.BlendNormal)

	// Stamp annotation: image plus border.
	stamp := pageink.NewPath().Rect(0.7*fw, 0.8*fh, 0.2*fw, 0.1*fh)
	b.Image(checkerboard(32, 16), pageink.
		Translate(0.7*fw, 0.8*fh).
		Multiply(pageink.Scale(0.2*fw, 0.1*fh)), 200)
	b.StrokePath(stamp, pageink.RGB(160, 30, 30), 3)
	b.Annotation(false)

	// Field footprints highlight with the page content.
	for _, mk := range model.Markers() {
		b.FormField(mk.Bounds, mk.Field, mk.Highlight)
	}
	return b.Build()
}

func demoForms(w, h int) *forms.Model {
	fw, fh := float64(w), float64(h)
	hl := pageink.ARGB(64, 0, 64, 255)
	return forms.NewModel().
		Add(forms.Field{
			Type:        pageink.FieldText,
			Rect:        pageink.NewRect(0.05*fw, 0.88*fh, 0.4*fw, 0.04*fh),
			Background:  pageink.White,
			Border:      pageink.RGB(90, 90, 90),
			BorderWidth: 1.5,
			Highlight:   hl,
		}).
		Add(forms.Field{
			Type:        pageink.FieldCheckbox,
			Rect:        pageink.NewRect(0.5*fw, 0.88*fh, 0.04*fh, 0.04*fh),
			Background:  pageink.White,
			Border:      pageink.RGB(90, 90, 90),
			BorderWidth: 1.5,
			Checked:     true,
			Highlight:   hl,
		})
}

// checkerboard builds a premultiplied test image.
func checkerboard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			if (x/8+y/8)%2 == 0 {
				img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 200, 60, 60
			} else {
				img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 240, 220, 220
			}
			img.Pix[i+3] = 255
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
