package layout

import (
	"fmt"
	"math"
)

// Constraints bound the size a widget may take. Minima are always finite;
// maxima may be +Inf to express an unbounded axis. Constraints flow down
// the tree: every widget must report a size that satisfies the constraints
// it was given.
//
// Constraints are immutable values; the With-style operations below return
// derived copies.
type Constraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Tight returns constraints that admit exactly the given size.
func Tight(s Size) Constraints {
	return Constraints{
		MinWidth: s.Width, MaxWidth: s.Width,
		MinHeight: s.Height, MaxHeight: s.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(s Size) Constraints {
	return Constraints{MaxWidth: s.Width, MaxHeight: s.Height}
}

// Unbounded returns constraints with no upper limit on either axis.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// Check validates the constraints. It returns a *InvalidConstraintsError
// when a minimum exceeds its maximum or any bound is negative or NaN.
// Invalid constraints are a caller error and are never silently repaired.
func (c Constraints) Check() error {
	switch {
	case math.IsNaN(c.MinWidth) || math.IsNaN(c.MaxWidth) ||
		math.IsNaN(c.MinHeight) || math.IsNaN(c.MaxHeight):
		return &InvalidConstraintsError{Constraints: c, Reason: "NaN bound"}
	case c.MinWidth < 0 || c.MinHeight < 0 || c.MaxWidth < 0 || c.MaxHeight < 0:
		return &InvalidConstraintsError{Constraints: c, Reason: "negative bound"}
	case c.MinWidth > c.MaxWidth:
		return &InvalidConstraintsError{Constraints: c, Reason: "min width exceeds max width"}
	case c.MinHeight > c.MaxHeight:
		return &InvalidConstraintsError{Constraints: c, Reason: "min height exceeds max height"}
	}
	return nil
}

// Constrain clamps the size to the constraints, each axis independently.
// The result always satisfies checked constraints regardless of the input,
// including NaN and infinite extents.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  c.ConstrainWidth(s.Width),
		Height: c.ConstrainHeight(s.Height),
	}
}

// ConstrainWidth clamps a width to [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(w float64) float64 {
	if math.IsNaN(w) {
		return c.MinWidth
	}
	return math.Min(math.Max(w, c.MinWidth), c.MaxWidth)
}

// ConstrainHeight clamps a height to [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(h float64) float64 {
	if math.IsNaN(h) {
		return c.MinHeight
	}
	return math.Min(math.Max(h, c.MinHeight), c.MaxHeight)
}

// IsSatisfiedBy reports whether the size lies within the constraints.
func (c Constraints) IsSatisfiedBy(s Size) bool {
	return s.Width >= c.MinWidth && s.Width <= c.MaxWidth &&
		s.Height >= c.MinHeight && s.Height <= c.MaxHeight
}

// Deflate shrinks the constraints by the given insets, flooring at zero.
// Used by padded containers to derive child constraints.
func (c Constraints) Deflate(in EdgeInsets) Constraints {
	h := in.Horizontal()
	v := in.Vertical()
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MaxWidth:  math.Max(0, c.MaxWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxHeight: math.Max(0, c.MaxHeight-v),
	}
}

// Tighten returns constraints tight at the given size, with each extent
// clamped inside the existing bounds.
func (c Constraints) Tighten(s Size) Constraints {
	w := c.ConstrainWidth(s.Width)
	h := c.ConstrainHeight(s.Height)
	return Constraints{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

// TightenWidth returns constraints with a tight width, clamped inside the
// existing horizontal bounds. The vertical bounds are unchanged.
func (c Constraints) TightenWidth(w float64) Constraints {
	w = c.ConstrainWidth(w)
	c.MinWidth = w
	c.MaxWidth = w
	return c
}

// TightenHeight returns constraints with a tight height, clamped inside
// the existing vertical bounds. The horizontal bounds are unchanged.
func (c Constraints) TightenHeight(h float64) Constraints {
	h = c.ConstrainHeight(h)
	c.MinHeight = h
	c.MaxHeight = h
	return c
}

// Loosen drops the minima to zero, keeping the maxima.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// IsTight reports whether both axes admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Biggest returns the largest size the constraints admit.
func (c Constraints) Biggest() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// Smallest returns the smallest size the constraints admit.
func (c Constraints) Smallest() Size {
	return Size{Width: c.MinWidth, Height: c.MinHeight}
}

// MinAlong returns the minimum extent along the given axis.
func (c Constraints) MinAlong(a Axis) float64 {
	if a == Horizontal {
		return c.MinWidth
	}
	return c.MinHeight
}

// MaxAlong returns the maximum extent along the given axis.
func (c Constraints) MaxAlong(a Axis) float64 {
	if a == Horizontal {
		return c.MaxWidth
	}
	return c.MaxHeight
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(w:[%g,%g] h:[%g,%g])",
		c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}
