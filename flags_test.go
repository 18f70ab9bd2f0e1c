package pageink

import "testing"

func TestRenderFlagsHas(t *testing.T) {
	f := FlagAnnotations | FlagGrayscale
	if !f.Has(FlagAnnotations) || !f.Has(FlagGrayscale) {
		t.Error("Has() missed set bits")
	}
	if f.Has(FlagConvertFillToStroke) {
		t.Error("Has() reported an unset bit")
	}
	if !f.Has(FlagAnnotations | FlagGrayscale) {
		t.Error("Has() should require all bits and they are all set")
	}
	if f.Has(FlagAnnotations | FlagNoSmoothText) {
		t.Error("Has() with a missing bit should be false")
	}
}

func TestRenderFlagsString(t *testing.T) {
	tests := []struct {
		f    RenderFlags
		want string
	}{
		{0, "0"},
		{FlagAnnotations, "Annotations"},
		{FlagAnnotations | FlagConvertFillToStroke, "Annotations|ConvertFillToStroke"},
		{FlagGrayscale | FlagNoSmoothPaths | FlagNoSmoothText, "Grayscale|NoSmoothPaths|NoSmoothText"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("RenderFlags(%b).String() = %q, want %q", uint32(tt.f), got, tt.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{StatusReady, "Ready"},
		{StatusToBeContinued, "ToBeContinued"},
		{StatusDone, "Done"},
		{StatusFailed, "Failed"},
		{Status(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateNotStarted, "NotStarted"},
		{StateSuspended, "Suspended"},
		{StateComplete, "Complete"},
		{StateClosed, "Closed"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestBlendModeString(t *testing.T) {
	if BlendNormal.String() != "Normal" || BlendMultiply.String() != "Multiply" {
		t.Error("blend mode names wrong")
	}
	if BlendMode(9).String() != "Unknown" {
		t.Error("unknown blend mode should stringify to Unknown")
	}
}
