package layout

import (
	"github.com/gogpu/layout/text"
)

// DefaultMaxDepth is the nesting depth at which layout fails fast.
const DefaultMaxDepth = 512

// Widget is a node in a layout tree. Layout computes the node's size
// within the given constraints; Paint replays the stored geometry into a
// Painter. The two passes are separate: Paint never re-measures.
//
// A widget instance may appear at most once per tree, since stored results
// are keyed by identity. Implementations use pointer receivers.
type Widget interface {
	Layout(ctx *LayoutContext) (LayoutResult, error)
	Paint(ctx *PaintContext) error
}

// LayoutResult is what a widget reports back to its parent.
type LayoutResult struct {
	// Size is the extent the widget settled on. It always satisfies the
	// constraints the widget was given.
	Size Size

	// Baseline is the distance from the widget's top edge to its first
	// text baseline. Valid only when HasBaseline is true; widgets without
	// text report none.
	Baseline    float64
	HasBaseline bool

	// NeedsRepaint reports whether the widget will emit paint operations.
	// Zero-size or invisible content reports false so painters can skip
	// the subtree.
	NeedsRepaint bool
}

// placement is the stored outcome of laying out one widget: its result
// plus the offset its parent assigned.
type placement struct {
	result LayoutResult
	offset Point
}

// Tree owns a widget hierarchy and the results of its last layout pass.
// Layout and Paint are synchronous and re-entrant across trees: two trees
// may run on separate goroutines without coordination, a single Tree must
// not be shared concurrently.
type Tree struct {
	root      Widget
	results   map[Widget]placement
	theme     *Theme
	measurer  *text.Measurer
	direction TextDirection
	maxDepth  int
}

// TreeOption configures a Tree during creation.
type TreeOption func(*treeConfig)

// treeConfig holds configuration for Tree creation.
type treeConfig struct {
	theme     *Theme
	measurer  *text.Measurer
	direction TextDirection
	maxDepth  int
}

// defaultTreeConfig returns the default tree configuration.
func defaultTreeConfig() treeConfig {
	return treeConfig{
		theme:     DefaultTheme(),
		measurer:  text.NewMeasurer(),
		direction: TextDirectionLTR,
		maxDepth:  DefaultMaxDepth,
	}
}

// WithTheme sets the theme the tree is laid out and painted with.
func WithTheme(t *Theme) TreeOption {
	return func(c *treeConfig) {
		if t != nil {
			c.theme = t
		}
	}
}

// WithMeasurer sets the text measurer used by text widgets and intrinsic
// table columns. Share one measurer (and its cache) across trees that use
// the same fonts.
func WithMeasurer(m *text.Measurer) TreeOption {
	return func(c *treeConfig) {
		if m != nil {
			c.measurer = m
		}
	}
}

// WithTextDirection sets the ambient reading direction.
func WithTextDirection(d TextDirection) TreeOption {
	return func(c *treeConfig) {
		c.direction = d
	}
}

// WithMaxDepth sets the nesting depth at which layout fails with a
// *DepthError instead of recursing further. Values below 1 keep the
// default.
func WithMaxDepth(n int) TreeOption {
	return func(c *treeConfig) {
		if n >= 1 {
			c.maxDepth = n
		}
	}
}

// NewTree creates a tree rooted at the given widget.
func NewTree(root Widget, opts ...TreeOption) *Tree {
	config := defaultTreeConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Tree{
		root:      root,
		theme:     config.theme,
		measurer:  config.measurer,
		direction: config.direction,
		maxDepth:  config.maxDepth,
	}
}

// Root returns the tree's root widget.
func (t *Tree) Root() Widget { return t.root }

// Layout measures the whole tree against the given constraints and stores
// every widget's result. Results from earlier passes are discarded first,
// so laying out twice with the same constraints yields identical results.
func (t *Tree) Layout(c Constraints) (LayoutResult, error) {
	t.results = make(map[Widget]placement)
	ctx := &LayoutContext{Constraints: c, Direction: t.direction, tree: t}
	return ctx.layoutNode(t.root, c, 0)
}

// Paint replays the stored layout results into the painter. Layout must
// have run first; painting an unlaid-out tree returns ErrNoLayout.
func (t *Tree) Paint(p Painter) error {
	ctx := &PaintContext{tree: t, painter: p, transforms: NewTransformStack()}
	return ctx.PaintChildAt(t.root, Point{})
}

// ResultOf returns the stored layout result for a widget of this tree.
// The second return is false before layout, or for widgets the last pass
// never reached.
func (t *Tree) ResultOf(w Widget) (LayoutResult, bool) {
	pl, ok := t.results[w]
	return pl.result, ok
}

// OffsetOf returns the stored offset of a widget within its parent.
func (t *Tree) OffsetOf(w Widget) (Point, bool) {
	pl, ok := t.results[w]
	return pl.offset, ok
}

// LayoutContext carries everything a widget needs during measurement.
// Contexts are created by the tree; widgets receive one per Layout call.
type LayoutContext struct {
	// Constraints bound the size the widget may report.
	Constraints Constraints

	// Direction is the ambient reading direction.
	Direction TextDirection

	tree  *Tree
	depth int
}

// Theme returns the ambient theme.
func (ctx *LayoutContext) Theme() *Theme { return ctx.tree.theme }

// Measurer returns the shared text measurer.
func (ctx *LayoutContext) Measurer() *text.Measurer { return ctx.tree.measurer }

// LayoutChild measures one child under the given constraints and stores
// its result. The constraints are validated first: a min above a max
// surfaces as *InvalidConstraintsError and aborts the subtree. Exceeding
// the tree's maximum depth surfaces as *DepthError.
func (ctx *LayoutContext) LayoutChild(child Widget, c Constraints) (LayoutResult, error) {
	return ctx.layoutNode(child, c, ctx.depth+1)
}

func (ctx *LayoutContext) layoutNode(w Widget, c Constraints, depth int) (LayoutResult, error) {
	if err := c.Check(); err != nil {
		return LayoutResult{}, err
	}
	if depth > ctx.tree.maxDepth {
		return LayoutResult{}, &DepthError{Depth: depth, MaxDepth: ctx.tree.maxDepth}
	}

	childCtx := &LayoutContext{
		Constraints: c,
		Direction:   ctx.Direction,
		tree:        ctx.tree,
		depth:       depth,
	}
	res, err := w.Layout(childCtx)
	if err != nil {
		return LayoutResult{}, err
	}

	// Reported sizes never escape the constraints.
	res.Size = c.Constrain(res.Size)

	prev := ctx.tree.results[w]
	prev.result = res
	ctx.tree.results[w] = prev
	return res, nil
}

// Place records where a child sits inside the widget currently laying
// out. Paint uses the recorded offsets; a child that is laid out but
// never placed paints at the parent origin.
func (ctx *LayoutContext) Place(child Widget, offset Point) {
	pl := ctx.tree.results[child]
	pl.offset = offset
	ctx.tree.results[child] = pl
}
