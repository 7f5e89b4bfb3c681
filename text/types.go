package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the reading direction of measured text.
type Direction int

const (
	// DirectionAuto resolves the direction from the text content using
	// the Unicode bidirectional algorithm (strong-character heuristic).
	DirectionAuto Direction = iota
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAuto:
		return "Auto"
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Rect represents a rectangle for glyph bounds, in the same units as the
// measurement that produced it. The Y axis grows upward from the
// baseline, matching font conventions.
type Rect struct {
	// Min is the bottom-left corner
	MinX, MinY float64
	// Max is the top-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}
