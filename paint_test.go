package layout

import (
	"errors"
	"testing"

	"github.com/gogpu/layout/text"
)

// opPainter records the names of the operations it receives, plus enough
// arguments to assert on placement.
type opPainter struct {
	ops         []string
	transforms  []Matrix
	fills       []Rect
	clips       []Rect
	lineSegs    [][2]Point
	textOrigins []Point
	textLines   []text.LineMetrics
}

func (p *opPainter) Save()    { p.ops = append(p.ops, "save") }
func (p *opPainter) Restore() { p.ops = append(p.ops, "restore") }

func (p *opPainter) SetTransform(m Matrix) {
	p.ops = append(p.ops, "transform")
	p.transforms = append(p.transforms, m)
}

func (p *opPainter) FillRect(r Rect, c RGBA) {
	p.ops = append(p.ops, "fill")
	p.fills = append(p.fills, r)
}

func (p *opPainter) StrokeRect(r Rect, c RGBA, width float64) {
	p.ops = append(p.ops, "stroke")
}

func (p *opPainter) Line(from, to Point, c RGBA, width float64) {
	p.ops = append(p.ops, "line")
	p.lineSegs = append(p.lineSegs, [2]Point{from, to})
}

func (p *opPainter) Text(line text.LineMetrics, origin Point, style TextStyle) {
	p.ops = append(p.ops, "text")
	p.textOrigins = append(p.textOrigins, origin)
	p.textLines = append(p.textLines, line)
}

func (p *opPainter) PushClip(r Rect) {
	p.ops = append(p.ops, "pushclip")
	p.clips = append(p.clips, r)
}

func (p *opPainter) PopClip() { p.ops = append(p.ops, "popclip") }

func opsEqual(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTreePaintBeforeLayout(t *testing.T) {
	tree := NewTree(&sizedWidget{size: Sz(10, 10)})
	err := tree.Paint(&opPainter{})
	if !errors.Is(err, ErrNoLayout) {
		t.Fatalf("Paint() error = %v, want ErrNoLayout", err)
	}
}

func TestTreePaintBracketsWidgets(t *testing.T) {
	leaf := &sizedWidget{size: Sz(10, 10), visible: true}
	tree := NewTree(leaf)
	if _, err := tree.Layout(Loose(Sz(100, 100))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	p := &opPainter{}
	if err := tree.Paint(p); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	want := []string{"save", "transform", "fill", "restore"}
	if !opsEqual(p.ops, want) {
		t.Errorf("ops = %v, want %v", p.ops, want)
	}
	if len(p.transforms) != 1 || !p.transforms[0].IsIdentity() {
		t.Errorf("root transform = %v, want identity", p.transforms)
	}
}

func TestTreePaintSkipsInvisible(t *testing.T) {
	leaf := &sizedWidget{size: Sz(10, 10), visible: false}
	tree := NewTree(leaf)
	if _, err := tree.Layout(Loose(Sz(100, 100))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	p := &opPainter{}
	if err := tree.Paint(p); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if len(p.ops) != 0 {
		t.Errorf("ops = %v, want none for an invisible tree", p.ops)
	}
}

func TestPaintChildAtComposesOffsets(t *testing.T) {
	leaf := &sizedWidget{size: Sz(10, 10), visible: true}
	inner := NewBox(leaf, WithPadding(InsetsAll(5)))
	outer := NewBox(inner, WithPadding(InsetsAll(20)))
	tree := NewTree(outer)
	if _, err := tree.Layout(Loose(Sz(200, 200))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	p := &opPainter{}
	if err := tree.Paint(p); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	// Undecorated boxes emit nothing themselves; the leaf's fill arrives
	// under the composed translation of both paddings.
	if len(p.fills) != 1 {
		t.Fatalf("fills = %d, want 1", len(p.fills))
	}
	last := p.transforms[len(p.transforms)-1]
	want := Translate(25, 25)
	if last != want {
		t.Errorf("leaf transform = %v, want %v", last, want)
	}
}

func TestPaintChildUsesRecordedOffset(t *testing.T) {
	leaf := &sizedWidget{size: Sz(10, 10), visible: true}
	root := NewBox(leaf, WithPadding(InsetsSymmetric(8, 3)))
	tree := NewTree(root)
	if _, err := tree.Layout(Loose(Sz(100, 100))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	off, ok := tree.OffsetOf(leaf)
	if !ok {
		t.Fatal("OffsetOf() reported no offset")
	}
	if off != (Point{X: 8, Y: 3}) {
		t.Errorf("offset = %v, want (8, 3)", off)
	}

	p := &opPainter{}
	if err := tree.Paint(p); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	last := p.transforms[len(p.transforms)-1]
	if last != Translate(8, 3) {
		t.Errorf("leaf transform = %v, want %v", last, Translate(8, 3))
	}
}

func TestPaintChildUnlaidOut(t *testing.T) {
	leaf := &sizedWidget{size: Sz(10, 10), visible: true}
	tree := NewTree(leaf)
	if _, err := tree.Layout(Loose(Sz(50, 50))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	ctx := &PaintContext{tree: tree, painter: &opPainter{}, transforms: NewTransformStack()}
	stranger := &sizedWidget{size: Sz(1, 1)}
	if err := ctx.PaintChild(stranger); !errors.Is(err, ErrNoLayout) {
		t.Errorf("PaintChild() error = %v, want ErrNoLayout", err)
	}
}

func TestPaintRestoresAfterWidgetError(t *testing.T) {
	boom := errors.New("paint failed")
	leaf := &failPaintWidget{err: boom}
	tree := NewTree(leaf)
	if _, err := tree.Layout(Loose(Sz(50, 50))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	p := &opPainter{}
	err := tree.Paint(p)
	if !errors.Is(err, boom) {
		t.Fatalf("Paint() error = %v, want %v", err, boom)
	}

	// The bracket closes even when the widget fails mid-paint.
	want := []string{"save", "transform", "restore"}
	if !opsEqual(p.ops, want) {
		t.Errorf("ops = %v, want %v", p.ops, want)
	}
}

// failPaintWidget lays out fine and fails during paint.
type failPaintWidget struct {
	err error
}

func (w *failPaintWidget) Layout(ctx *LayoutContext) (LayoutResult, error) {
	return LayoutResult{Size: Sz(10, 10), NeedsRepaint: true}, nil
}

func (w *failPaintWidget) Paint(ctx *PaintContext) error { return w.err }

func TestWithClipPairsAroundError(t *testing.T) {
	leaf := &sizedWidget{size: Sz(10, 10), visible: true}
	tree := NewTree(leaf)
	if _, err := tree.Layout(Loose(Sz(50, 50))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	p := &opPainter{}
	ctx := &PaintContext{tree: tree, painter: p, transforms: NewTransformStack()}

	boom := errors.New("inner failure")
	err := ctx.WithClip(Rect{Width: 40, Height: 40}, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("WithClip() error = %v, want %v", err, boom)
	}

	want := []string{"pushclip", "popclip"}
	if !opsEqual(p.ops, want) {
		t.Errorf("ops = %v, want %v", p.ops, want)
	}
	if len(p.clips) != 1 || p.clips[0] != (Rect{Width: 40, Height: 40}) {
		t.Errorf("clips = %v, want one 40x40 rect", p.clips)
	}
}

func TestPaintContextSizeReflectsCurrentWidget(t *testing.T) {
	leaf := &sizedWidget{size: Sz(30, 12), visible: true}
	root := NewBox(leaf, WithPadding(InsetsAll(10)), WithFill(White))
	tree := NewTree(root)
	if _, err := tree.Layout(Loose(Sz(200, 200))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	p := &opPainter{}
	if err := tree.Paint(p); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	// The box fills its own padded extent, the leaf its content extent.
	if len(p.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(p.fills))
	}
	if p.fills[0] != (Rect{Width: 50, Height: 32}) {
		t.Errorf("box fill = %v, want 50x32", p.fills[0])
	}
	if p.fills[1] != (Rect{Width: 30, Height: 12}) {
		t.Errorf("leaf fill = %v, want 30x12", p.fills[1])
	}
}
