package pageink

import "testing"

func TestNewSurfaceValidation(t *testing.T) {
	for _, tt := range []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 10}, {0, 0}} {
		if s := NewSurface(tt.w, tt.h); s != nil {
			t.Errorf("NewSurface(%d, %d) = %v, want nil", tt.w, tt.h, s)
		}
		if s := NewSurfaceAlpha(tt.w, tt.h); s != nil {
			t.Errorf("NewSurfaceAlpha(%d, %d) = %v, want nil", tt.w, tt.h, s)
		}
	}
	s := NewSurface(3, 2)
	if s.Width() != 3 || s.Height() != 2 || s.HasAlpha() {
		t.Errorf("surface = %dx%d alpha=%v", s.Width(), s.Height(), s.HasAlpha())
	}
	if len(s.pix) != 3*2*4 {
		t.Errorf("buffer size = %d, want %d", len(s.pix), 3*2*4)
	}
}

func TestSurfaceFillAndAt(t *testing.T) {
	s := NewSurface(4, 4)
	if got := s.At(1, 1); got != White {
		t.Errorf("fresh opaque surface pixel = %v, want white", got)
	}
	s.Fill(Red)
	if got := s.At(3, 3); got != Red {
		t.Errorf("After Fill(Red): At = %v", got)
	}
	s.FillRect(1, 1, 2, 2, Blue)
	if got := s.At(1, 1); got != Blue {
		t.Errorf("inside FillRect = %v, want blue", got)
	}
	if got := s.At(0, 0); got != Red {
		t.Errorf("outside FillRect = %v, want red", got)
	}
	if got := s.At(-1, 0); got != Transparent {
		t.Errorf("out of bounds = %v, want transparent", got)
	}
}

func TestSurfaceOpaqueForcesAlpha(t *testing.T) {
	s := NewSurface(2, 2)
	s.Fill(Transparent)
	if got := s.pix[3]; got != 0xFF {
		t.Errorf("RGBX alpha byte = %d, want 255", got)
	}
	a := NewSurfaceAlpha(2, 2)
	if got := a.At(0, 0); got != Transparent {
		t.Errorf("fresh alpha surface pixel = %v, want transparent", got)
	}
}

func TestSurfaceDigest(t *testing.T) {
	a := NewSurface(5, 5)
	b := NewSurface(5, 5)
	if a.Digest() != b.Digest() {
		t.Error("identical surfaces produced different digests")
	}
	b.FillRect(2, 2, 1, 1, Black)
	if a.Digest() == b.Digest() {
		t.Error("different pixels produced the same digest")
	}
	// Same bytes, different dimensions must not collide.
	c := NewSurface(25, 1)
	d := NewSurface(1, 25)
	if c.Digest() == d.Digest() {
		t.Error("dimension swap produced the same digest")
	}
}

func TestSurfaceClone(t *testing.T) {
	s := NewSurface(3, 3)
	s.FillRect(0, 0, 2, 2, Green)
	if !s.acquire() {
		t.Fatal("acquire failed on fresh surface")
	}
	c := s.Clone()
	if c.Digest() != s.Digest() {
		t.Error("clone digest differs")
	}
	if !c.acquire() {
		t.Error("clone inherited held state")
	}
	c.FillRect(0, 0, 1, 1, Black)
	if c.Digest() == s.Digest() {
		t.Error("clone shares pixel storage with original")
	}
}

func TestSurfaceOwnership(t *testing.T) {
	s := NewSurface(2, 2)
	if !s.acquire() {
		t.Fatal("first acquire failed")
	}
	if s.acquire() {
		t.Error("second acquire succeeded on held surface")
	}
	s.release()
	if !s.acquire() {
		t.Error("acquire failed after release")
	}
}

func TestSurfaceToImage(t *testing.T) {
	s := NewSurface(2, 1)
	s.FillRect(0, 0, 1, 1, Blue)
	img := s.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("ToImage bounds = %v", img.Bounds())
	}
	if img.Pix[2] != 0xFF {
		t.Errorf("blue channel = %d, want 255", img.Pix[2])
	}
	img.Pix[0] = 7
	if s.pix[0] == 7 {
		t.Error("ToImage shares pixel storage with the surface")
	}
}
