package layout

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Axis identifies a layout direction.
type Axis int

const (
	// Horizontal lays content out along the X axis.
	Horizontal Axis = iota
	// Vertical lays content out along the Y axis.
	Vertical
)

// String returns the string representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return unknownStr
	}
}

// Flip returns the other axis.
func (a Axis) Flip() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// TextDirection specifies the reading direction used to resolve
// direction-sensitive layout (for example text alignment).
type TextDirection int

const (
	// TextDirectionLTR is left-to-right (English, French, etc.)
	TextDirectionLTR TextDirection = iota
	// TextDirectionRTL is right-to-left (Arabic, Hebrew)
	TextDirectionRTL
)

// String returns the string representation of the direction.
func (d TextDirection) String() string {
	switch d {
	case TextDirectionLTR:
		return "LTR"
	case TextDirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// MainAxisAlignment controls how a flex container distributes free space
// along its main axis.
type MainAxisAlignment int

const (
	// MainAxisStart packs children at the start of the main axis.
	MainAxisStart MainAxisAlignment = iota
	// MainAxisEnd packs children at the end of the main axis.
	MainAxisEnd
	// MainAxisCenter centers the packed children.
	MainAxisCenter
	// MainAxisSpaceBetween distributes free space between children only.
	// With a single child it behaves like MainAxisCenter.
	MainAxisSpaceBetween
	// MainAxisSpaceAround places half a space unit before the first child
	// and after the last, and a full unit between children.
	MainAxisSpaceAround
	// MainAxisSpaceEvenly places equal space before, between, and after
	// children (free space divided by n+1).
	MainAxisSpaceEvenly
)

// String returns the string representation of the alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisStart:
		return "Start"
	case MainAxisEnd:
		return "End"
	case MainAxisCenter:
		return "Center"
	case MainAxisSpaceBetween:
		return "SpaceBetween"
	case MainAxisSpaceAround:
		return "SpaceAround"
	case MainAxisSpaceEvenly:
		return "SpaceEvenly"
	default:
		return unknownStr
	}
}

// CrossAxisAlignment controls how a flex container positions children
// across its main axis.
type CrossAxisAlignment int

const (
	// CrossAxisStart aligns children to the start of the cross axis.
	CrossAxisStart CrossAxisAlignment = iota
	// CrossAxisEnd aligns children to the end of the cross axis.
	CrossAxisEnd
	// CrossAxisCenter centers children on the cross axis.
	CrossAxisCenter
	// CrossAxisStretch forces each child's cross-axis constraint to the
	// container's cross extent during layout, not by scaling afterwards.
	CrossAxisStretch
	// CrossAxisBaseline would align children on their text baselines.
	// Baseline alignment is not implemented: children are top-aligned and
	// the container still reports its first child's baseline.
	CrossAxisBaseline
)

// String returns the string representation of the alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisStart:
		return "Start"
	case CrossAxisEnd:
		return "End"
	case CrossAxisCenter:
		return "Center"
	case CrossAxisStretch:
		return "Stretch"
	case CrossAxisBaseline:
		return "Baseline"
	default:
		return unknownStr
	}
}

// FlexFit controls how a flexible child fills the main-axis space it was
// allotted.
type FlexFit int

const (
	// FlexFitTight forces the child to exactly its allotted extent.
	FlexFitTight FlexFit = iota
	// FlexFitLoose lets the child be anything up to its allotted extent.
	FlexFitLoose
)

// String returns the string representation of the fit.
func (f FlexFit) String() string {
	switch f {
	case FlexFitTight:
		return "Tight"
	case FlexFitLoose:
		return "Loose"
	default:
		return unknownStr
	}
}

// StackFit controls the constraints a Stack passes to its non-positioned
// children.
type StackFit int

const (
	// StackFitLoose passes the incoming constraints loosened.
	StackFitLoose StackFit = iota
	// StackFitExpand forces children to the biggest admissible size.
	StackFitExpand
	// StackFitPassthrough forwards the incoming constraints unchanged.
	StackFitPassthrough
)

// String returns the string representation of the fit.
func (f StackFit) String() string {
	switch f {
	case StackFitLoose:
		return "Loose"
	case StackFitExpand:
		return "Expand"
	case StackFitPassthrough:
		return "Passthrough"
	default:
		return unknownStr
	}
}

// Alignment is a 2D anchor within a box. Both components run from -1
// (start edge) through 0 (center) to +1 (end edge), so AlignTopLeft is
// {-1,-1} and AlignBottomRight is {1,1}. Values outside [-1,1] place
// content beyond the box edges.
type Alignment struct {
	X, Y float64
}

// Common alignments
var (
	AlignTopLeft      = Alignment{X: -1, Y: -1}
	AlignTopCenter    = Alignment{X: 0, Y: -1}
	AlignTopRight     = Alignment{X: 1, Y: -1}
	AlignCenterLeft   = Alignment{X: -1, Y: 0}
	AlignCenter       = Alignment{X: 0, Y: 0}
	AlignCenterRight  = Alignment{X: 1, Y: 0}
	AlignBottomLeft   = Alignment{X: -1, Y: 1}
	AlignBottomCenter = Alignment{X: 0, Y: 1}
	AlignBottomRight  = Alignment{X: 1, Y: 1}
)

// Offset returns the position of a child of the given size inside a
// container, anchored by the alignment. {-1,-1} yields the origin,
// {1,1} flushes the child to the bottom-right.
func (a Alignment) Offset(container, child Size) Point {
	return Point{
		X: (container.Width - child.Width) * (a.X + 1) / 2,
		Y: (container.Height - child.Height) * (a.Y + 1) / 2,
	}
}
