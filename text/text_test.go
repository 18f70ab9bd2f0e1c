package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/pageink/pageink"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource(goregular) error: %v", err)
	}
	return src
}

func TestNewSourceErrors(t *testing.T) {
	if _, err := NewSource(nil); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("NewSource(nil) = %v, want ErrEmptyFont", err)
	}
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Error("NewSource(garbage) succeeded")
	}
	if _, err := NewSourceFromFile("/nonexistent/font.ttf"); err == nil {
		t.Error("NewSourceFromFile(missing) succeeded")
	}
}

func TestSourceName(t *testing.T) {
	src := testSource(t)
	if got := src.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
}

func TestSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)
	src, err := NewSource(data)
	if err != nil {
		t.Fatal(err)
	}
	for i := range data {
		data[i] = 0
	}
	// The source must still shape correctly from its own copy.
	if _, err := Layout(src.Face(16), "a", 0, 16); err != nil {
		t.Errorf("Layout after caller clobbered the input: %v", err)
	}
}

func TestFaceMetrics(t *testing.T) {
	face := testSource(t).Face(24)
	if face.Size() != 24 {
		t.Errorf("Size() = %v", face.Size())
	}
	m, err := face.Metrics()
	if err != nil {
		t.Fatalf("Metrics() error: %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if m.Height < m.Ascent {
		t.Errorf("line height %v below ascent %v", m.Height, m.Ascent)
	}

	if _, err := (Face{}).Metrics(); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("zero face Metrics() = %v, want ErrEmptyFont", err)
	}
}

func TestLayout(t *testing.T) {
	face := testSource(t).Face(16)

	masks, err := Layout(face, "Hi", 10, 30)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if len(masks) != 2 {
		t.Fatalf("Layout(\"Hi\") = %d masks, want 2", len(masks))
	}
	for i, m := range masks {
		if m.Mask == nil || m.Mask.Bounds().Empty() {
			t.Errorf("mask %d is empty", i)
		}
	}
	if masks[1].X <= masks[0].X {
		t.Errorf("glyphs not advancing: x %d then %d", masks[0].X, masks[1].X)
	}
	// Glyph tops sit above the baseline for Latin capitals.
	if masks[0].Y >= 30 {
		t.Errorf("capital glyph top %d at or below the baseline", masks[0].Y)
	}

	if got, err := Layout(face, "", 0, 0); err != nil || got != nil {
		t.Errorf("Layout(\"\") = %v, %v", got, err)
	}
	if _, err := Layout(Face{}, "x", 0, 0); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("Layout on zero face = %v, want ErrEmptyFont", err)
	}
}

func TestLayoutSkipsSpaces(t *testing.T) {
	face := testSource(t).Face(16)
	masks, err := Layout(face, "a b", 0, 20)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	// The space advances the pen but contributes no mask.
	if len(masks) != 2 {
		t.Fatalf("Layout(\"a b\") = %d masks, want 2", len(masks))
	}
	aOnly, err := Layout(face, "ab", 0, 20)
	if err != nil {
		t.Fatal(err)
	}
	if masks[1].X <= aOnly[1].X {
		t.Error("space did not advance the pen")
	}
}

func TestSegmentDirections(t *testing.T) {
	ltr := segment("hello")
	if len(ltr) != 1 || ltr[0].rtl {
		t.Errorf("segment(latin) = %+v, want one left-to-right run", ltr)
	}

	// A purely Hebrew paragraph is a single right-to-left run.
	rtl := segment("שלום")
	if len(rtl) != 1 {
		t.Fatalf("segment(hebrew) = %d runs, want 1", len(rtl))
	}
	if !rtl[0].rtl {
		t.Error("single hebrew run not marked right-to-left")
	}

	mixed := segment("abc שלום def")
	if len(mixed) < 3 {
		t.Fatalf("segment(mixed) = %d runs, want the directions split apart", len(mixed))
	}
	sawRTL := false
	for _, run := range mixed {
		if run.rtl {
			sawRTL = true
		}
	}
	if !sawRTL {
		t.Error("mixed paragraph lost its right-to-left run")
	}
}

func TestAdvance(t *testing.T) {
	face := testSource(t).Face(16)
	empty, err := Advance(face, "")
	if err != nil || empty != 0 {
		t.Errorf("Advance(\"\") = %v, %v", empty, err)
	}
	one, err := Advance(face, "a")
	if err != nil {
		t.Fatal(err)
	}
	two, err := Advance(face, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if !(two > one && one > 0) {
		t.Errorf("Advance not monotonic: %v then %v", one, two)
	}
	if _, err := Advance(Face{}, "x"); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("Advance on zero face = %v, want ErrEmptyFont", err)
	}
}

func TestMaskCacheReuse(t *testing.T) {
	face := testSource(t).Face(16)
	a, err := Layout(face, "o", 0, 20)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Layout(face, "o", 40, 80)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("Layout(\"o\") mask counts = %d, %d", len(a), len(b))
	}
	if a[0].Mask != b[0].Mask {
		t.Error("same glyph at same size did not reuse the cached mask")
	}
	if a[0].X == b[0].X || a[0].Y == b[0].Y {
		t.Error("positions should follow the layout origin")
	}
}

func TestRun(t *testing.T) {
	face := testSource(t).Face(14)
	run, err := Run(face, "ok", 5, 20, pageink.Blue, pageink.TextFill)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if run.Color != pageink.Blue || run.Mode != pageink.TextFill || run.Blend != pageink.BlendNormal {
		t.Errorf("Run() prim = %+v", run)
	}
	if len(run.Glyphs) != 2 {
		t.Errorf("Run() glyphs = %d, want 2", len(run.Glyphs))
	}
}

func TestRenderedTextTouchesSurface(t *testing.T) {
	face := testSource(t).Face(20)
	run, err := Run(face, "Ag", 5, 25, pageink.Black, pageink.TextFill)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	scene := pageink.NewSceneBuilder().GlyphRunPrim(run).Build()
	surf := pageink.NewSurface(60, 40)
	if status := pageink.Render(surf, scene, 0); status != pageink.StatusDone {
		t.Fatalf("Render() = %v", status)
	}
	dark := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			if surf.At(x, y).R() < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("rendered text left the surface blank")
	}
}
