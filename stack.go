package layout

import "math"

// Positioned pins a child of a Stack to explicit edge offsets. Two
// opposite edges stretch the child between them; a single edge anchors
// the child's own size there; no edges defer to the stack's ambient
// alignment. Outside a Stack the wrapper is transparent.
type Positioned struct {
	child  Widget
	config positionedConfig
}

// PositionedOption configures a Positioned during creation.
type PositionedOption func(*positionedConfig)

// positionedConfig holds configuration for Positioned creation.
type positionedConfig struct {
	left, top     float64
	right, bottom float64
	width, height float64

	hasLeft, hasTop        bool
	hasRight, hasBottom    bool
	hasExtentW, hasExtentH bool
}

// AtLeft pins the child's left edge at an offset from the stack's left.
func AtLeft(v float64) PositionedOption {
	return func(c *positionedConfig) {
		c.left = v
		c.hasLeft = true
	}
}

// AtTop pins the child's top edge at an offset from the stack's top.
func AtTop(v float64) PositionedOption {
	return func(c *positionedConfig) {
		c.top = v
		c.hasTop = true
	}
}

// AtRight pins the child's right edge at an offset from the stack's
// right.
func AtRight(v float64) PositionedOption {
	return func(c *positionedConfig) {
		c.right = v
		c.hasRight = true
	}
}

// AtBottom pins the child's bottom edge at an offset from the stack's
// bottom.
func AtBottom(v float64) PositionedOption {
	return func(c *positionedConfig) {
		c.bottom = v
		c.hasBottom = true
	}
}

// OfWidth fixes the child's width. Ignored when both horizontal edges
// are pinned, since they already imply a width.
func OfWidth(v float64) PositionedOption {
	return func(c *positionedConfig) {
		c.width = v
		c.hasExtentW = true
	}
}

// OfHeight fixes the child's height. Ignored when both vertical edges
// are pinned.
func OfHeight(v float64) PositionedOption {
	return func(c *positionedConfig) {
		c.height = v
		c.hasExtentH = true
	}
}

// NewPositioned pins child inside the enclosing Stack.
func NewPositioned(child Widget, opts ...PositionedOption) *Positioned {
	if child == nil {
		panic("layout: positioned child must not be nil")
	}
	var config positionedConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &Positioned{child: child, config: config}
}

// Layout implements Widget.Layout. An enclosing Stack resolves the
// pins into the constraints seen here; outside a Stack the pins have
// no frame of reference. Either way the wrapper delegates to its
// child.
func (p *Positioned) Layout(ctx *LayoutContext) (LayoutResult, error) {
	res, err := ctx.LayoutChild(p.child, ctx.Constraints)
	if err != nil {
		return LayoutResult{}, err
	}
	ctx.Place(p.child, Point{})
	return res, nil
}

// Paint implements Widget.Paint.
func (p *Positioned) Paint(ctx *PaintContext) error {
	return ctx.PaintChild(p.child)
}

// resolveConstraints maps the pins onto the stack's settled bounds.
func (p *Positioned) resolveConstraints(container Size) Constraints {
	cfg := p.config
	minW, maxW := p.axisConstraints(container.Width, cfg.hasLeft, cfg.left, cfg.hasRight, cfg.right, cfg.hasExtentW, cfg.width)
	minH, maxH := p.axisConstraints(container.Height, cfg.hasTop, cfg.top, cfg.hasBottom, cfg.bottom, cfg.hasExtentH, cfg.height)
	return Constraints{
		MinWidth: minW, MaxWidth: maxW,
		MinHeight: minH, MaxHeight: maxH,
	}
}

// resolveOffset places the laid-out child: pinned axes honor their
// anchor, unpinned axes fall back to the ambient alignment.
func (p *Positioned) resolveOffset(container, child Size, align Alignment) Point {
	cfg := p.config
	ambient := align.Offset(container, child)

	var off Point
	switch {
	case cfg.hasLeft:
		off.X = cfg.left
	case cfg.hasRight:
		off.X = container.Width - cfg.right - child.Width
	default:
		off.X = ambient.X
	}
	switch {
	case cfg.hasTop:
		off.Y = cfg.top
	case cfg.hasBottom:
		off.Y = container.Height - cfg.bottom - child.Height
	default:
		off.Y = ambient.Y
	}
	return off
}

// axisConstraints resolves one axis of a positioned child: opposite
// edges imply a stretched tight extent, an explicit extent is tight,
// and otherwise the child is loose within the space its single anchor
// leaves over.
func (p *Positioned) axisConstraints(container float64, hasNear bool, near float64, hasFar bool, far float64, hasExtent bool, extent float64) (min, max float64) {
	switch {
	case hasNear && hasFar:
		span := container - near - far
		if span < 0 {
			span = 0
		}
		return span, span
	case hasExtent:
		if extent < 0 {
			extent = 0
		}
		return extent, extent
	default:
		avail := container
		if hasNear {
			avail -= near
		} else if hasFar {
			avail -= far
		}
		if avail < 0 {
			avail = 0
		}
		return 0, avail
	}
}

// Stack lays children on top of one another, first child at the
// bottom. Non-positioned children share one sizing policy and are
// anchored by the stack alignment; Positioned children resolve their
// edge offsets against the settled stack bounds.
type Stack struct {
	children []Widget
	config   stackConfig
}

// StackOption configures a Stack during creation.
type StackOption func(*stackConfig)

// stackConfig holds configuration for Stack creation.
type stackConfig struct {
	fit   StackFit
	align Alignment
}

// WithStackFit sets the sizing policy for non-positioned children.
func WithStackFit(fit StackFit) StackOption {
	return func(c *stackConfig) {
		c.fit = fit
	}
}

// WithStackAlignment anchors non-positioned children and unpinned
// positioned axes. The zero alignment is the center; the default is
// the top-left corner.
func WithStackAlignment(a Alignment) StackOption {
	return func(c *stackConfig) {
		c.align = a
	}
}

// NewStack creates a stack of children, first child at the bottom.
func NewStack(children []Widget, opts ...StackOption) *Stack {
	config := stackConfig{align: AlignTopLeft}
	for _, opt := range opts {
		opt(&config)
	}
	return &Stack{children: children, config: config}
}

// Layout implements Widget.Layout.
func (s *Stack) Layout(ctx *LayoutContext) (LayoutResult, error) {
	c := ctx.Constraints
	if len(s.children) == 0 {
		return LayoutResult{Size: c.Constrain(Size{})}, nil
	}

	childC := c.Loosen()
	switch s.config.fit {
	case StackFitExpand:
		childC = expandConstraints(c)
	case StackFitPassthrough:
		childC = c
	}

	// Non-positioned children first; the largest of them settles the
	// stack bounds that positioned children resolve against.
	results := make([]LayoutResult, len(s.children))
	var maxW, maxH float64
	hasNonPositioned := false
	for i, child := range s.children {
		if _, ok := child.(*Positioned); ok {
			continue
		}
		hasNonPositioned = true
		res, err := ctx.LayoutChild(child, childC)
		if err != nil {
			return LayoutResult{}, err
		}
		results[i] = res
		maxW = math.Max(maxW, res.Size.Width)
		maxH = math.Max(maxH, res.Size.Height)
	}

	var size Size
	if hasNonPositioned {
		size = c.Constrain(Sz(maxW, maxH))
	} else {
		// Only positioned children: fill the bounded axes.
		size = c.Constrain(boundedBiggest(c))
	}

	res := LayoutResult{Size: size}
	for i, child := range s.children {
		var offset Point
		if pos, ok := child.(*Positioned); ok {
			posRes, err := ctx.LayoutChild(pos, pos.resolveConstraints(size))
			if err != nil {
				return LayoutResult{}, err
			}
			results[i] = posRes
			offset = pos.resolveOffset(size, posRes.Size, s.config.align)
		} else {
			offset = s.config.align.Offset(size, results[i].Size)
		}
		ctx.Place(child, offset)

		if !res.HasBaseline && results[i].HasBaseline {
			res.Baseline = offset.Y + results[i].Baseline
			res.HasBaseline = true
		}
		res.NeedsRepaint = res.NeedsRepaint || results[i].NeedsRepaint
	}
	return res, nil
}

// Paint implements Widget.Paint. Children paint bottom to top.
func (s *Stack) Paint(ctx *PaintContext) error {
	for _, child := range s.children {
		if err := ctx.PaintChild(child); err != nil {
			return err
		}
	}
	return nil
}

// expandConstraints tightens each bounded axis to its maximum.
func expandConstraints(c Constraints) Constraints {
	out := Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
	if !math.IsInf(c.MaxWidth, 1) {
		out.MinWidth = c.MaxWidth
	}
	if !math.IsInf(c.MaxHeight, 1) {
		out.MinHeight = c.MaxHeight
	}
	return out
}

// boundedBiggest is the biggest admissible size treating unbounded
// axes as zero.
func boundedBiggest(c Constraints) Size {
	w := c.MaxWidth
	if math.IsInf(w, 1) {
		w = 0
	}
	h := c.MaxHeight
	if math.IsInf(h, 1) {
		h = 0
	}
	return Sz(w, h)
}
