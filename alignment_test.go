package layout

import "testing"

func TestAxisFlip(t *testing.T) {
	if Horizontal.Flip() != Vertical {
		t.Error("Horizontal.Flip() != Vertical")
	}
	if Vertical.Flip() != Horizontal {
		t.Error("Vertical.Flip() != Horizontal")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"axis horizontal", Horizontal.String(), "Horizontal"},
		{"axis vertical", Vertical.String(), "Vertical"},
		{"axis unknown", Axis(9).String(), "Unknown"},
		{"direction ltr", TextDirectionLTR.String(), "LTR"},
		{"direction rtl", TextDirectionRTL.String(), "RTL"},
		{"main start", MainAxisStart.String(), "Start"},
		{"main space evenly", MainAxisSpaceEvenly.String(), "SpaceEvenly"},
		{"main unknown", MainAxisAlignment(9).String(), "Unknown"},
		{"cross stretch", CrossAxisStretch.String(), "Stretch"},
		{"cross baseline", CrossAxisBaseline.String(), "Baseline"},
		{"flex fit tight", FlexFitTight.String(), "Tight"},
		{"flex fit loose", FlexFitLoose.String(), "Loose"},
		{"stack fit expand", StackFitExpand.String(), "Expand"},
		{"stack fit passthrough", StackFitPassthrough.String(), "Passthrough"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestAlignmentOffset(t *testing.T) {
	container := Sz(100, 100)
	child := Sz(20, 10)

	tests := []struct {
		name  string
		align Alignment
		want  Point
	}{
		{"top left", AlignTopLeft, Pt(0, 0)},
		{"center", AlignCenter, Pt(40, 45)},
		{"bottom right", AlignBottomRight, Pt(80, 90)},
		{"top center", AlignTopCenter, Pt(40, 0)},
		{"center left", AlignCenterLeft, Pt(0, 45)},
		{"beyond the edge", Alignment{X: 2, Y: 0}, Pt(120, 45)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.align.Offset(container, child); got != tt.want {
				t.Errorf("Offset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlignmentOffsetChildLargerThanContainer(t *testing.T) {
	// A child larger than its container is anchored with negative slack:
	// centering it overhangs equally on both sides.
	got := AlignCenter.Offset(Sz(50, 50), Sz(70, 50))
	if got != Pt(-10, 0) {
		t.Errorf("Offset() = %v, want (-10, 0)", got)
	}
}
