package layout

import (
	"fmt"

	"github.com/gogpu/layout/text"
)

// Painter is the sink a tree paints into. Implementations translate the
// operations into their output: the recording package stores them as
// typed commands, a renderer would rasterize them.
//
// Widgets emit geometry in their own local space; SetTransform carries the
// absolute matrix that places it. Every SetTransform is preceded by Save
// and closed by Restore; PushClip and PopClip are likewise balanced.
type Painter interface {
	// Save pushes the painter's transform and clip state.
	Save()

	// Restore pops the state saved by the matching Save.
	Restore()

	// SetTransform replaces the current transform with an absolute matrix.
	SetTransform(m Matrix)

	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c RGBA)

	// StrokeRect outlines an axis-aligned rectangle.
	StrokeRect(r Rect, c RGBA, width float64)

	// Line draws a straight line segment.
	Line(from, to Point, c RGBA, width float64)

	// Text draws one measured line. The origin is the baseline start
	// (left edge for LTR); word positions within the line follow the
	// line's word metrics.
	Text(line text.LineMetrics, origin Point, style TextStyle)

	// PushClip intersects the clip region with a rectangle.
	PushClip(r Rect)

	// PopClip removes the clip pushed by the matching PushClip.
	PopClip()
}

// PaintContext carries the sink and transform state through a paint
// traversal. Widgets receive one per Paint call; the context keeps
// Save/Restore pairs balanced so widgets cannot corrupt painter state.
type PaintContext struct {
	tree       *Tree
	painter    Painter
	transforms *TransformStack
	current    Widget
}

// Painter returns the sink operations are emitted into.
func (ctx *PaintContext) Painter() Painter { return ctx.painter }

// Theme returns the ambient theme.
func (ctx *PaintContext) Theme() *Theme { return ctx.tree.theme }

// Transform returns the absolute transform of the widget being painted.
func (ctx *PaintContext) Transform() Matrix { return ctx.transforms.Current() }

// Result returns the stored layout result of the widget being painted.
func (ctx *PaintContext) Result() LayoutResult {
	pl := ctx.tree.results[ctx.current]
	return pl.result
}

// Size returns the laid-out size of the widget being painted.
func (ctx *PaintContext) Size() Size { return ctx.Result().Size }

// PaintChild paints a child at the offset recorded during layout.
func (ctx *PaintContext) PaintChild(child Widget) error {
	pl, ok := ctx.tree.results[child]
	if !ok {
		return fmt.Errorf("%w: %T", ErrNoLayout, child)
	}
	return ctx.PaintChildAt(child, pl.offset)
}

// PaintChildAt paints a child at an explicit offset, bracketing it with a
// balanced Save/SetTransform/Restore so the child's drawing lands in its
// own coordinate space. Children whose results report no paint output are
// skipped entirely.
func (ctx *PaintContext) PaintChildAt(child Widget, at Point) error {
	pl, ok := ctx.tree.results[child]
	if !ok {
		return fmt.Errorf("%w: %T", ErrNoLayout, child)
	}
	if !pl.result.NeedsRepaint {
		return nil
	}

	ctx.transforms.Push(Translate(at.X, at.Y))
	ctx.painter.Save()
	ctx.painter.SetTransform(ctx.transforms.Current())

	prev := ctx.current
	ctx.current = child
	err := child.Paint(ctx)
	ctx.current = prev

	ctx.painter.Restore()
	if popErr := ctx.transforms.Pop(); err == nil {
		err = popErr
	}
	return err
}

// WithClip emits a clip rectangle around fn, keeping push and pop paired
// even when fn fails.
func (ctx *PaintContext) WithClip(r Rect, fn func() error) error {
	ctx.painter.PushClip(r)
	err := fn()
	ctx.painter.PopClip()
	return err
}
