package layout

import (
	"math"
	"testing"
)

func rowOffsets(t *testing.T, tree *Tree, children []Widget) []Point {
	t.Helper()
	offsets := make([]Point, len(children))
	for i, child := range children {
		off, ok := tree.OffsetOf(child)
		if !ok {
			t.Fatalf("child %d has no offset", i)
		}
		offsets[i] = off
	}
	return offsets
}

func TestFlexEmpty(t *testing.T) {
	tree := NewTree(NewRow(nil))
	res, err := tree.Layout(Loose(Sz(100, 100)))
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if res.Size != Sz(0, 0) {
		t.Errorf("size = %v, want (0, 0)", res.Size)
	}
}

func TestFlexFixedPassShrinksBudget(t *testing.T) {
	// Fixed children are measured in order; each sees what its
	// predecessors left. The second 60-wide child is cut to 40.
	a := &sizedWidget{size: Sz(60, 10)}
	b := &sizedWidget{size: Sz(60, 10)}
	tree := NewTree(NewRow([]Widget{a, b}))

	if _, err := tree.Layout(Loose(Sz(100, 100))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	resA, _ := tree.ResultOf(a)
	resB, _ := tree.ResultOf(b)
	if resA.Size.Width != 60 {
		t.Errorf("first child width = %g, want 60", resA.Size.Width)
	}
	if resB.Size.Width != 40 {
		t.Errorf("second child width = %g, want 40", resB.Size.Width)
	}
}

func TestFlexExpandedFillsRemainder(t *testing.T) {
	fixed := &sizedWidget{size: Sz(20, 10)}
	filler := &sizedWidget{size: Sz(5, 10)}
	children := []Widget{fixed, NewExpanded(filler)}
	tree := NewTree(NewRow(children, WithSpacing(10)))

	res, err := tree.Layout(Loose(Sz(100, 100)))
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if res.Size.Width != 100 {
		t.Errorf("container width = %g, want 100", res.Size.Width)
	}

	// Spacing is reserved before free space is distributed: the
	// expanded child gets 100 - 20 - 10 = 70.
	fillerRes, _ := tree.ResultOf(filler)
	if fillerRes.Size.Width != 70 {
		t.Errorf("expanded width = %g, want 70", fillerRes.Size.Width)
	}

	offsets := rowOffsets(t, tree, children)
	if offsets[0].X != 0 || offsets[1].X != 30 {
		t.Errorf("offsets = %v, want x at 0 and 30", offsets)
	}
}

func TestFlexFactorsShareProportionally(t *testing.T) {
	a := &sizedWidget{size: Sz(1, 10)}
	b := &sizedWidget{size: Sz(1, 10)}
	children := []Widget{
		NewFlexible(a, 1, FlexFitTight),
		NewFlexible(b, 3, FlexFitTight),
	}
	tree := NewTree(NewRow(children))

	if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	resA, _ := tree.ResultOf(a)
	resB, _ := tree.ResultOf(b)
	if resA.Size.Width != 25 {
		t.Errorf("flex 1 width = %g, want 25", resA.Size.Width)
	}
	if resB.Size.Width != 75 {
		t.Errorf("flex 3 width = %g, want 75", resB.Size.Width)
	}
}

func TestFlexFit(t *testing.T) {
	t.Run("tight forces budget", func(t *testing.T) {
		leaf := &sizedWidget{size: Sz(10, 10)}
		tree := NewTree(NewRow([]Widget{NewFlexible(leaf, 1, FlexFitTight)}))
		if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
			t.Fatalf("Layout() error = %v", err)
		}
		res, _ := tree.ResultOf(leaf)
		if res.Size.Width != 100 {
			t.Errorf("width = %g, want 100", res.Size.Width)
		}
	})

	t.Run("loose keeps child size", func(t *testing.T) {
		leaf := &sizedWidget{size: Sz(10, 10)}
		tree := NewTree(NewRow([]Widget{NewFlexible(leaf, 1, FlexFitLoose)}))
		if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
			t.Fatalf("Layout() error = %v", err)
		}
		res, _ := tree.ResultOf(leaf)
		if res.Size.Width != 10 {
			t.Errorf("width = %g, want 10", res.Size.Width)
		}
	})
}

func TestFlexNoFreeSpaceCollapsesFlexible(t *testing.T) {
	fixed := &sizedWidget{size: Sz(100, 10)}
	flexed := &sizedWidget{size: Sz(10, 10)}
	tree := NewTree(NewRow([]Widget{fixed, NewExpanded(flexed)}))

	if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	res, _ := tree.ResultOf(flexed)
	if res.Size.Width != 0 {
		t.Errorf("flexible width = %g, want 0 when fixed children consume everything", res.Size.Width)
	}
}

func TestFlexUnboundedMainWrapsContent(t *testing.T) {
	a := &sizedWidget{size: Sz(30, 10)}
	b := &sizedWidget{size: Sz(20, 15)}
	exp := &sizedWidget{size: Sz(10, 10)}
	tree := NewTree(NewRow([]Widget{a, b, NewExpanded(exp)}))

	res, err := tree.Layout(Unbounded())
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	// No bound means no free space: the row wraps its fixed content and
	// the expanded child collapses.
	if res.Size != Sz(50, 15) {
		t.Errorf("size = %v, want (50, 15)", res.Size)
	}
	expRes, _ := tree.ResultOf(exp)
	if expRes.Size.Width != 0 {
		t.Errorf("expanded width = %g, want 0 on an unbounded axis", expRes.Size.Width)
	}
}

func TestFlexSpacer(t *testing.T) {
	a := &sizedWidget{size: Sz(20, 10)}
	b := &sizedWidget{size: Sz(20, 10)}
	spacer := NewSpacer(1)
	children := []Widget{a, spacer, b}
	tree := NewTree(NewRow(children))

	if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	offsets := rowOffsets(t, tree, children)
	if offsets[0].X != 0 || offsets[2].X != 80 {
		t.Errorf("offsets = %v, want outer children at 0 and 80", offsets)
	}
	spacerRes, _ := tree.ResultOf(spacer)
	if spacerRes.Size.Width != 60 {
		t.Errorf("spacer width = %g, want 60", spacerRes.Size.Width)
	}
	if spacerRes.NeedsRepaint {
		t.Error("spacer reports NeedsRepaint, want false")
	}
}

func TestMainAxisDistribution(t *testing.T) {
	// Three 10-wide children in a 100-wide row leave 70 of free space.
	tests := []struct {
		name  string
		align MainAxisAlignment
		wantX []float64
	}{
		{"start", MainAxisStart, []float64{0, 10, 20}},
		{"end", MainAxisEnd, []float64{70, 80, 90}},
		{"center", MainAxisCenter, []float64{35, 45, 55}},
		{"space between", MainAxisSpaceBetween, []float64{0, 45, 90}},
		{"space around", MainAxisSpaceAround, []float64{11.666666666666666, 45, 78.33333333333333}},
		{"space evenly", MainAxisSpaceEvenly, []float64{17.5, 45, 72.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children := []Widget{
				&sizedWidget{size: Sz(10, 10)},
				&sizedWidget{size: Sz(10, 10)},
				&sizedWidget{size: Sz(10, 10)},
			}
			tree := NewTree(NewRow(children, WithMainAlignment(tt.align)))
			if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			offsets := rowOffsets(t, tree, children)
			for i, off := range offsets {
				if math.Abs(off.X-tt.wantX[i]) > 1e-9 {
					t.Errorf("child %d x = %g, want %g", i, off.X, tt.wantX[i])
				}
			}
		})
	}
}

func TestSpaceBetweenSingleChildCenters(t *testing.T) {
	child := &sizedWidget{size: Sz(10, 10)}
	tree := NewTree(NewRow([]Widget{child}, WithMainAlignment(MainAxisSpaceBetween)))
	if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	off, _ := tree.OffsetOf(child)
	if off.X != 45 {
		t.Errorf("x = %g, want 45", off.X)
	}
}

func TestCrossAxisAlignment(t *testing.T) {
	// A 20-tall child in a 50-tall row.
	tests := []struct {
		name  string
		align CrossAxisAlignment
		wantY float64
	}{
		{"start", CrossAxisStart, 0},
		{"center", CrossAxisCenter, 15},
		{"end", CrossAxisEnd, 30},
		{"baseline falls back to start", CrossAxisBaseline, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tall := &sizedWidget{size: Sz(10, 50)}
			short := &sizedWidget{size: Sz(10, 20)}
			tree := NewTree(NewRow([]Widget{tall, short}, WithCrossAlignment(tt.align)))
			if _, err := tree.Layout(Loose(Sz(100, 50))); err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			off, _ := tree.OffsetOf(short)
			if off.Y != tt.wantY {
				t.Errorf("y = %g, want %g", off.Y, tt.wantY)
			}
		})
	}
}

func TestCrossAxisStretch(t *testing.T) {
	leaf := &sizedWidget{size: Sz(10, 10)}
	tree := NewTree(NewRow([]Widget{leaf}, WithCrossAlignment(CrossAxisStretch)))
	if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	// Stretch turns the cross bound into a minimum.
	if leaf.lastC.MinHeight != 40 || leaf.lastC.MaxHeight != 40 {
		t.Errorf("child cross constraints = [%g, %g], want [40, 40]",
			leaf.lastC.MinHeight, leaf.lastC.MaxHeight)
	}
	res, _ := tree.ResultOf(leaf)
	if res.Size.Height != 40 {
		t.Errorf("child height = %g, want 40", res.Size.Height)
	}
}

func TestColumnLaysOutVertically(t *testing.T) {
	a := &sizedWidget{size: Sz(30, 25)}
	b := &sizedWidget{size: Sz(40, 15)}
	children := []Widget{a, b}
	tree := NewTree(NewColumn(children, WithSpacing(5)))

	res, err := tree.Layout(Loose(Sz(100, 100)))
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	// Bounded main axis: the column claims the full height; width wraps
	// the widest child.
	if res.Size != Sz(40, 100) {
		t.Errorf("size = %v, want (40, 100)", res.Size)
	}

	offsets := rowOffsets(t, tree, children)
	if offsets[0].Y != 0 || offsets[1].Y != 30 {
		t.Errorf("offsets = %v, want y at 0 and 30", offsets)
	}
}

func TestFlexBaselineFromFirstChild(t *testing.T) {
	plain := &sizedWidget{size: Sz(10, 10)}
	based := &sizedWidget{size: Sz(10, 30), baseline: 22, hasBase: true}
	tree := NewTree(NewRow([]Widget{plain, based}, WithCrossAlignment(CrossAxisCenter)))

	res, err := tree.Layout(Loose(Sz(100, 30)))
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if !res.HasBaseline {
		t.Fatal("HasBaseline = false, want true")
	}
	// The first child exposing a baseline wins; its cross offset shifts
	// the reported value.
	if res.Baseline != 22 {
		t.Errorf("Baseline = %g, want 22", res.Baseline)
	}
}

func TestNewFlexibleRejectsBadFactors(t *testing.T) {
	tests := []struct {
		name string
		flex float64
	}{
		{"negative", -1},
		{"NaN", math.NaN()},
		{"infinite", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewFlexible(%g) did not panic", tt.flex)
				}
			}()
			NewFlexible(&sizedWidget{size: Sz(1, 1)}, tt.flex, FlexFitTight)
		})
	}
}

func TestFlexPaintsChildrenInOrder(t *testing.T) {
	a := &sizedWidget{size: Sz(10, 10), visible: true}
	b := &sizedWidget{size: Sz(10, 10), visible: true}
	tree := NewTree(NewRow([]Widget{a, b}))
	if _, err := tree.Layout(Loose(Sz(100, 40))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	p := &opPainter{}
	if err := tree.Paint(p); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if len(p.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(p.fills))
	}
	if p.transforms[1] != Translate(0, 0) || p.transforms[2] != Translate(10, 0) {
		t.Errorf("child transforms = %v, want x at 0 then 10", p.transforms[1:])
	}
}
