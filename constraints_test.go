package layout

import (
	"errors"
	"math"
	"testing"
)

func TestConstraintsConstructors(t *testing.T) {
	tight := Tight(Sz(100, 50))
	if !tight.IsTight() {
		t.Error("Tight() should produce tight constraints")
	}
	if got := tight.Biggest(); got != Sz(100, 50) {
		t.Errorf("Tight().Biggest() = %v, want (100, 50)", got)
	}

	loose := Loose(Sz(100, 50))
	if got := loose.Smallest(); got != Sz(0, 0) {
		t.Errorf("Loose().Smallest() = %v, want (0, 0)", got)
	}
	if got := loose.Biggest(); got != Sz(100, 50) {
		t.Errorf("Loose().Biggest() = %v, want (100, 50)", got)
	}

	unbounded := Unbounded()
	if unbounded.HasBoundedWidth() || unbounded.HasBoundedHeight() {
		t.Error("Unbounded() should be unbounded on both axes")
	}
}

func TestConstraintsCheck(t *testing.T) {
	tests := []struct {
		name       string
		c          Constraints
		wantErr    bool
		wantReason string
	}{
		{"valid loose", Loose(Sz(10, 10)), false, ""},
		{"valid tight", Tight(Sz(0, 0)), false, ""},
		{"valid unbounded", Unbounded(), false, ""},
		{
			"min width above max",
			Constraints{MinWidth: 10, MaxWidth: 5, MaxHeight: 10},
			true, "min width exceeds max width",
		},
		{
			"min height above max",
			Constraints{MaxWidth: 10, MinHeight: 10, MaxHeight: 5},
			true, "min height exceeds max height",
		},
		{
			"negative bound",
			Constraints{MinWidth: -1, MaxWidth: 10, MaxHeight: 10},
			true, "negative bound",
		},
		{
			"NaN bound",
			Constraints{MaxWidth: math.NaN(), MaxHeight: 10},
			true, "NaN bound",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Check()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var invalid *InvalidConstraintsError
			if !errors.As(err, &invalid) {
				t.Fatalf("Check() error = %T, want *InvalidConstraintsError", err)
			}
			if invalid.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", invalid.Reason, tt.wantReason)
			}
		})
	}
}

func TestConstrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 5, MaxHeight: 50}

	tests := []struct {
		name string
		in   Size
		want Size
	}{
		{"inside passes through", Sz(50, 25), Sz(50, 25)},
		{"clamped up", Sz(0, 0), Sz(10, 5)},
		{"clamped down", Sz(200, 80), Sz(100, 50)},
		{"mixed", Sz(5, 80), Sz(10, 50)},
		{"infinite clamps to max", Sz(math.Inf(1), math.Inf(1)), Sz(100, 50)},
		{"NaN clamps to min", Sz(math.NaN(), math.NaN()), Sz(10, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Constrain(tt.in)
			if got != tt.want {
				t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !c.IsSatisfiedBy(got) {
				t.Errorf("Constrain(%v) = %v does not satisfy %v", tt.in, got, c)
			}
		})
	}
}

func TestDeflate(t *testing.T) {
	tests := []struct {
		name string
		c    Constraints
		in   EdgeInsets
		want Constraints
	}{
		{
			"plain shrink",
			Tight(Sz(100, 50)),
			InsetsAll(10),
			Tight(Sz(80, 30)),
		},
		{
			"floors at zero",
			Loose(Sz(15, 8)),
			InsetsAll(10),
			Constraints{},
		},
		{
			"min floors independently of max",
			Constraints{MinWidth: 5, MaxWidth: 100, MinHeight: 5, MaxHeight: 100},
			InsetsAll(10),
			Constraints{MinWidth: 0, MaxWidth: 80, MinHeight: 0, MaxHeight: 80},
		},
		{
			"unbounded stays unbounded",
			Unbounded(),
			InsetsAll(10),
			Unbounded(),
		},
		{
			"asymmetric insets",
			Tight(Sz(100, 100)),
			EdgeInsets{Top: 1, Right: 2, Bottom: 3, Left: 4},
			Tight(Sz(94, 96)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Deflate(tt.in); got != tt.want {
				t.Errorf("Deflate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTighten(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 10, MaxHeight: 100}

	// Inside the bounds the requested size becomes tight.
	got := c.Tighten(Sz(50, 60))
	if !got.IsTight() || got.Biggest() != Sz(50, 60) {
		t.Errorf("Tighten(50, 60) = %v, want tight at (50, 60)", got)
	}

	// Outside the bounds the request clamps instead of escaping.
	got = c.Tighten(Sz(500, 1))
	if got.Biggest() != Sz(100, 10) {
		t.Errorf("Tighten(500, 1) = %v, want tight at (100, 10)", got)
	}

	// Single-axis variants leave the other axis untouched.
	got = c.TightenWidth(70)
	if got.MinWidth != 70 || got.MaxWidth != 70 {
		t.Errorf("TightenWidth(70) = %v, want tight width 70", got)
	}
	if got.MinHeight != 10 || got.MaxHeight != 100 {
		t.Errorf("TightenWidth(70) changed vertical bounds: %v", got)
	}
}

func TestLoosen(t *testing.T) {
	c := Tight(Sz(100, 50))
	got := c.Loosen()
	if got.MinWidth != 0 || got.MinHeight != 0 {
		t.Errorf("Loosen() minima = (%g, %g), want (0, 0)", got.MinWidth, got.MinHeight)
	}
	if got.MaxWidth != 100 || got.MaxHeight != 50 {
		t.Errorf("Loosen() maxima = (%g, %g), want (100, 50)", got.MaxWidth, got.MaxHeight)
	}
}

func TestMinMaxAlong(t *testing.T) {
	c := Constraints{MinWidth: 1, MaxWidth: 2, MinHeight: 3, MaxHeight: 4}
	if got := c.MinAlong(Horizontal); got != 1 {
		t.Errorf("MinAlong(Horizontal) = %g, want 1", got)
	}
	if got := c.MaxAlong(Horizontal); got != 2 {
		t.Errorf("MaxAlong(Horizontal) = %g, want 2", got)
	}
	if got := c.MinAlong(Vertical); got != 3 {
		t.Errorf("MinAlong(Vertical) = %g, want 3", got)
	}
	if got := c.MaxAlong(Vertical); got != 4 {
		t.Errorf("MaxAlong(Vertical) = %g, want 4", got)
	}
}

func TestConstraintsString(t *testing.T) {
	got := Loose(Sz(10, 20)).String()
	want := "Constraints(w:[0,10] h:[0,20])"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
