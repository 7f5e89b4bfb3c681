package layout

import "math"

// Flexible wraps a child of a Flex with its flex factor and fit. Flex
// containers read the wrapper; everywhere else it is transparent and
// simply delegates to its child.
//
// A nil child makes the wrapper an empty spacer that soaks up its
// allotted space.
type Flexible struct {
	child Widget
	flex  float64
	fit   FlexFit
}

// NewFlexible wraps child with a flex factor. The factor must be a
// non-negative finite number; anything else is a programming error and
// panics at construction rather than corrupting a later layout pass.
func NewFlexible(child Widget, flex float64, fit FlexFit) *Flexible {
	if flex < 0 || math.IsNaN(flex) || math.IsInf(flex, 1) {
		panic("layout: flex factor must be a non-negative finite number")
	}
	return &Flexible{child: child, flex: flex, fit: fit}
}

// NewExpanded wraps child so it fills its share of the free space.
func NewExpanded(child Widget) *Flexible {
	return NewFlexible(child, 1, FlexFitTight)
}

// NewSpacer creates empty space that expands with the given factor.
func NewSpacer(flex float64) *Flexible {
	return NewFlexible(nil, flex, FlexFitTight)
}

// Layout implements Widget.Layout.
func (f *Flexible) Layout(ctx *LayoutContext) (LayoutResult, error) {
	if f.child == nil {
		return LayoutResult{Size: ctx.Constraints.Smallest()}, nil
	}
	res, err := ctx.LayoutChild(f.child, ctx.Constraints)
	if err != nil {
		return LayoutResult{}, err
	}
	ctx.Place(f.child, Point{})
	return res, nil
}

// Paint implements Widget.Paint.
func (f *Flexible) Paint(ctx *PaintContext) error {
	if f.child == nil {
		return nil
	}
	return ctx.PaintChild(f.child)
}

// Flex lays out children along one axis. Space is allocated in two
// passes: fixed children first, in order, each seeing the budget its
// predecessors left over; then the remaining space is divided between
// Flexible children in proportion to their factors.
type Flex struct {
	axis     Axis
	children []Widget
	config   flexConfig
}

// FlexOption configures a Flex during creation.
type FlexOption func(*flexConfig)

// flexConfig holds configuration for Flex creation.
type flexConfig struct {
	spacing    float64
	mainAlign  MainAxisAlignment
	crossAlign CrossAxisAlignment
}

// WithSpacing places a fixed gap between consecutive children. The gap
// is reserved before free space is distributed.
func WithSpacing(s float64) FlexOption {
	return func(c *flexConfig) {
		c.spacing = s
	}
}

// WithMainAlignment sets how children are distributed along the main
// axis.
func WithMainAlignment(a MainAxisAlignment) FlexOption {
	return func(c *flexConfig) {
		c.mainAlign = a
	}
}

// WithCrossAlignment sets how children are positioned across the main
// axis.
func WithCrossAlignment(a CrossAxisAlignment) FlexOption {
	return func(c *flexConfig) {
		c.crossAlign = a
	}
}

// NewFlex creates a flex container along the given axis.
func NewFlex(axis Axis, children []Widget, opts ...FlexOption) *Flex {
	var config flexConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &Flex{axis: axis, children: children, config: config}
}

// NewRow creates a horizontal flex container.
func NewRow(children []Widget, opts ...FlexOption) *Flex {
	return NewFlex(Horizontal, children, opts...)
}

// NewColumn creates a vertical flex container.
func NewColumn(children []Widget, opts ...FlexOption) *Flex {
	return NewFlex(Vertical, children, opts...)
}

// flexItem pairs a child with its flex data and layout result.
type flexItem struct {
	widget Widget
	flex   float64
	fit    FlexFit
	result LayoutResult
}

// Layout implements Widget.Layout.
func (f *Flex) Layout(ctx *LayoutContext) (LayoutResult, error) {
	c := ctx.Constraints
	n := len(f.children)
	if n == 0 {
		return LayoutResult{Size: c.Smallest()}, nil
	}

	axis := f.axis
	maxMain := c.MaxAlong(axis)
	crossMax := c.MaxAlong(axis.Flip())
	bounded := !math.IsInf(maxMain, 1)
	totalSpacing := f.config.spacing * float64(n-1)

	items := make([]flexItem, n)
	totalFlex := 0.0
	for i, child := range f.children {
		items[i] = flexItem{widget: child}
		if fx, ok := child.(*Flexible); ok {
			items[i].flex = fx.flex
			items[i].fit = fx.fit
		}
		totalFlex += items[i].flex
	}

	// Pass 1: fixed children see a budget that shrinks as their
	// predecessors consume it. Spacing is reserved up front.
	used := 0.0
	maxCross := 0.0
	for i := range items {
		if items[i].flex > 0 {
			continue
		}
		avail := math.Inf(1)
		if bounded {
			avail = maxMain - totalSpacing - used
			if avail < 0 {
				avail = 0
			}
		}
		res, err := ctx.LayoutChild(items[i].widget, f.childConstraints(0, avail, crossMax))
		if err != nil {
			return LayoutResult{}, err
		}
		items[i].result = res
		used += res.Size.Axis(axis)
		if cross := res.Size.Cross(axis); cross > maxCross {
			maxCross = cross
		}
	}

	// Remaining space is shared by flex factor. An unbounded main axis
	// has no free space to share, so flexible children collapse.
	remaining := 0.0
	if bounded {
		remaining = maxMain - used - totalSpacing
		if remaining < 0 {
			remaining = 0
		}
	}
	flexUnit := 0.0
	if totalFlex > 0 && remaining > 0 {
		flexUnit = remaining / totalFlex
	}

	// Pass 2: flexible children receive flex * flexUnit as a budget.
	allocated := 0.0
	for i := range items {
		if items[i].flex == 0 {
			continue
		}
		budget := items[i].flex * flexUnit
		mainMin := 0.0
		if items[i].fit == FlexFitTight {
			mainMin = budget
		}
		res, err := ctx.LayoutChild(items[i].widget, f.childConstraints(mainMin, budget, crossMax))
		if err != nil {
			return LayoutResult{}, err
		}
		items[i].result = res
		allocated += res.Size.Axis(axis)
		if cross := res.Size.Cross(axis); cross > maxCross {
			maxCross = cross
		}
	}

	// The container fills a bounded main axis; on an unbounded one it
	// wraps its content.
	contentMain := used + allocated + totalSpacing
	mainExtent := contentMain
	if bounded {
		mainExtent = maxMain
	}

	size := c.Constrain(f.axisSize(mainExtent, maxCross))
	containerMain := size.Axis(axis)
	containerCross := size.Cross(axis)

	free := containerMain - contentMain
	if free < 0 {
		free = 0
	}
	leading, between := distributeMain(f.config.mainAlign, free, n)

	res := LayoutResult{Size: size}
	pos := leading
	for i := range items {
		it := items[i]
		crossOffset := crossOffsetFor(f.config.crossAlign, containerCross, it.result.Size.Cross(axis))
		offset := f.axisPoint(pos, crossOffset)
		ctx.Place(it.widget, offset)

		if !res.HasBaseline && it.result.HasBaseline {
			res.Baseline = offset.Y + it.result.Baseline
			res.HasBaseline = true
		}
		res.NeedsRepaint = res.NeedsRepaint || it.result.NeedsRepaint

		pos += it.result.Size.Axis(axis) + f.config.spacing + between
	}

	return res, nil
}

// childConstraints builds the constraints for one child: the main axis
// spans [mainMin, mainMax], the cross axis is loose up to the
// container's bound, or forced to it under CrossAxisStretch.
func (f *Flex) childConstraints(mainMin, mainMax, crossMax float64) Constraints {
	crossMin := 0.0
	if f.config.crossAlign == CrossAxisStretch && !math.IsInf(crossMax, 1) {
		crossMin = crossMax
	}
	if f.axis == Horizontal {
		return Constraints{
			MinWidth: mainMin, MaxWidth: mainMax,
			MinHeight: crossMin, MaxHeight: crossMax,
		}
	}
	return Constraints{
		MinWidth: crossMin, MaxWidth: crossMax,
		MinHeight: mainMin, MaxHeight: mainMax,
	}
}

func (f *Flex) axisSize(main, cross float64) Size {
	if f.axis == Horizontal {
		return Sz(main, cross)
	}
	return Sz(cross, main)
}

func (f *Flex) axisPoint(main, cross float64) Point {
	if f.axis == Horizontal {
		return Pt(main, cross)
	}
	return Pt(cross, main)
}

// distributeMain converts free main-axis space into a leading offset
// and an extra gap between consecutive children.
func distributeMain(align MainAxisAlignment, free float64, n int) (leading, between float64) {
	switch align {
	case MainAxisEnd:
		return free, 0
	case MainAxisCenter:
		return free / 2, 0
	case MainAxisSpaceBetween:
		if n == 1 {
			return free / 2, 0
		}
		return 0, free / float64(n-1)
	case MainAxisSpaceAround:
		unit := free / float64(n)
		return unit / 2, unit
	case MainAxisSpaceEvenly:
		unit := free / float64(n+1)
		return unit, unit
	default: // MainAxisStart
		return 0, 0
	}
}

// crossOffsetFor positions one child across the main axis. Baseline
// alignment is not implemented and falls back to top alignment.
func crossOffsetFor(align CrossAxisAlignment, container, child float64) float64 {
	switch align {
	case CrossAxisEnd:
		return container - child
	case CrossAxisCenter:
		return (container - child) / 2
	default: // Start, Stretch, Baseline
		return 0
	}
}

// Paint implements Widget.Paint.
func (f *Flex) Paint(ctx *PaintContext) error {
	for _, child := range f.children {
		if err := ctx.PaintChild(child); err != nil {
			return err
		}
	}
	return nil
}
