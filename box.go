package layout

// Box is a single-child container combining the undecorated plumbing
// widgets: padding, fixed extents, fill and border decoration, content
// clipping, and child alignment.
//
// Without options a Box is invisible and sizes to its child.
type Box struct {
	child  Widget
	config boxConfig
}

// BoxOption configures a Box during creation.
type BoxOption func(*boxConfig)

// boxConfig holds configuration for Box creation.
type boxConfig struct {
	padding     EdgeInsets
	width       float64
	height      float64
	hasWidth    bool
	hasHeight   bool
	fill        RGBA
	hasFill     bool
	border      RGBA
	borderWidth float64
	clip        bool
	align       Alignment
	hasAlign    bool
}

// WithPadding insets the child from the box edges.
func WithPadding(in EdgeInsets) BoxOption {
	return func(c *boxConfig) {
		c.padding = in
	}
}

// WithWidth fixes the box width, as far as the incoming constraints
// allow.
func WithWidth(w float64) BoxOption {
	return func(c *boxConfig) {
		c.width = w
		c.hasWidth = true
	}
}

// WithHeight fixes the box height, as far as the incoming constraints
// allow.
func WithHeight(h float64) BoxOption {
	return func(c *boxConfig) {
		c.height = h
		c.hasHeight = true
	}
}

// WithFill paints the box background.
func WithFill(color RGBA) BoxOption {
	return func(c *boxConfig) {
		c.fill = color
		c.hasFill = true
	}
}

// WithBorder strokes the box outline.
func WithBorder(color RGBA, width float64) BoxOption {
	return func(c *boxConfig) {
		c.border = color
		c.borderWidth = width
	}
}

// WithClip clips the child to the box bounds.
func WithClip() BoxOption {
	return func(c *boxConfig) {
		c.clip = true
	}
}

// WithAlignment aligns the child inside the box instead of letting it
// fill the padded area.
func WithAlignment(a Alignment) BoxOption {
	return func(c *boxConfig) {
		c.align = a
		c.hasAlign = true
	}
}

// NewBox creates a box around child. A nil child makes an empty box,
// useful for fixed-size gaps and decorated placeholders.
func NewBox(child Widget, opts ...BoxOption) *Box {
	var config boxConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &Box{child: child, config: config}
}

// Layout implements Widget.Layout.
func (b *Box) Layout(ctx *LayoutContext) (LayoutResult, error) {
	c := ctx.Constraints
	if b.config.hasWidth {
		c = c.TightenWidth(b.config.width)
	}
	if b.config.hasHeight {
		c = c.TightenHeight(b.config.height)
	}

	pad := b.config.padding
	if b.child == nil {
		size := c.Constrain(Sz(pad.Horizontal(), pad.Vertical()))
		return LayoutResult{Size: size, NeedsRepaint: b.decorated()}, nil
	}

	// Aligned children get loose constraints and float inside the
	// content area; otherwise the padded constraints pass through and
	// tightness is preserved.
	inner := c.Deflate(pad)
	if b.config.hasAlign {
		inner = inner.Loosen()
	}
	childRes, err := ctx.LayoutChild(b.child, inner)
	if err != nil {
		return LayoutResult{}, err
	}

	size := c.Constrain(childRes.Size.Inflate(pad))
	offset := pad.TopLeft()
	if b.config.hasAlign {
		content := Sz(size.Width-pad.Horizontal(), size.Height-pad.Vertical())
		if content.Width < 0 {
			content.Width = 0
		}
		if content.Height < 0 {
			content.Height = 0
		}
		offset = offset.Add(b.config.align.Offset(content, childRes.Size))
	}
	ctx.Place(b.child, offset)

	res := LayoutResult{
		Size:         size,
		NeedsRepaint: b.decorated() || childRes.NeedsRepaint,
	}
	if childRes.HasBaseline {
		res.Baseline = offset.Y + childRes.Baseline
		res.HasBaseline = true
	}
	return res, nil
}

func (b *Box) decorated() bool {
	return b.config.hasFill || b.config.borderWidth > 0
}

// Paint implements Widget.Paint.
func (b *Box) Paint(ctx *PaintContext) error {
	r := RectFromSize(ctx.Size())
	p := ctx.Painter()

	if b.config.hasFill {
		p.FillRect(r, b.config.fill)
	}
	if b.config.borderWidth > 0 {
		p.StrokeRect(r, b.config.border, b.config.borderWidth)
	}

	if b.child == nil {
		return nil
	}
	if b.config.clip {
		return ctx.WithClip(r, func() error {
			return ctx.PaintChild(b.child)
		})
	}
	return ctx.PaintChild(b.child)
}
