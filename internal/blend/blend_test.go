package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{128, 255, 128},
		{255, 127, 127},
		{128, 128, 64},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := MulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("MulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddClamp(t *testing.T) {
	if got := addClamp(200, 100); got != 255 {
		t.Errorf("addClamp(200, 100) = %d, want 255", got)
	}
	if got := addClamp(100, 100); got != 200 {
		t.Errorf("addClamp(100, 100) = %d, want 200", got)
	}
}

func TestNormal(t *testing.T) {
	t.Run("opaque source replaces destination", func(t *testing.T) {
		r, g, b, a := Normal(255, 0, 0, 255, 0, 0, 255, 255)
		if r != 255 || g != 0 || b != 0 || a != 255 {
			t.Errorf("Normal() = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
		}
	})

	t.Run("transparent source keeps destination", func(t *testing.T) {
		r, g, b, a := Normal(0, 0, 0, 0, 10, 20, 30, 255)
		if r != 10 || g != 20 || b != 30 || a != 255 {
			t.Errorf("Normal() = (%d,%d,%d,%d), want (10,20,30,255)", r, g, b, a)
		}
	})

	t.Run("half coverage", func(t *testing.T) {
		// Premultiplied half-alpha red over opaque blue.
		r, g, b, a := Normal(128, 0, 0, 128, 0, 0, 255, 255)
		if r != 128 || g != 0 || b != 127 || a != 255 {
			t.Errorf("Normal() = (%d,%d,%d,%d), want (128,0,127,255)", r, g, b, a)
		}
	})
}

func TestMultiply(t *testing.T) {
	t.Run("yellow times red is red", func(t *testing.T) {
		r, g, b, a := Multiply(255, 255, 0, 255, 255, 0, 0, 255)
		if r != 255 || g != 0 || b != 0 || a != 255 {
			t.Errorf("Multiply() = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
		}
	})

	t.Run("white source keeps destination color", func(t *testing.T) {
		r, g, b, a := Multiply(255, 255, 255, 255, 40, 80, 120, 255)
		if r != 40 || g != 80 || b != 120 || a != 255 {
			t.Errorf("Multiply() = (%d,%d,%d,%d), want (40,80,120,255)", r, g, b, a)
		}
	})

	t.Run("transparent source keeps destination", func(t *testing.T) {
		r, g, b, a := Multiply(0, 0, 0, 0, 40, 80, 120, 200)
		if r != 40 || g != 80 || b != 120 || a != 200 {
			t.Errorf("Multiply() = (%d,%d,%d,%d), want (40,80,120,200)", r, g, b, a)
		}
	})

	t.Run("transparent destination keeps source", func(t *testing.T) {
		r, g, b, a := Multiply(40, 80, 120, 200, 0, 0, 0, 0)
		if r != 40 || g != 80 || b != 120 || a != 200 {
			t.Errorf("Multiply() = (%d,%d,%d,%d), want (40,80,120,200)", r, g, b, a)
		}
	})

	t.Run("differs from Normal over colored backdrop", func(t *testing.T) {
		// Same opaque green source over a red backdrop: Normal replaces,
		// Multiply darkens to black. The two operators must not collapse.
		nr, ng, nb, _ := Normal(0, 255, 0, 255, 255, 0, 0, 255)
		mr, mg, mb, _ := Multiply(0, 255, 0, 255, 255, 0, 0, 255)
		if nr == mr && ng == mg && nb == mb {
			t.Errorf("Normal and Multiply agree on (%d,%d,%d); want divergence", nr, ng, nb)
		}
		if mr != 0 || mg != 0 || mb != 0 {
			t.Errorf("Multiply(green over red) = (%d,%d,%d), want (0,0,0)", mr, mg, mb)
		}
	})
}

func BenchmarkNormal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Normal(128, 64, 32, 128, 10, 20, 30, 255)
	}
}

func BenchmarkMultiply(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Multiply(128, 64, 32, 128, 10, 20, 30, 255)
	}
}
