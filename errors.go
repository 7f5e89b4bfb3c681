package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for the layout package.
var (
	// ErrEmptyStackPop is returned when Pop is called on a transform stack
	// that holds only its initial frame.
	ErrEmptyStackPop = errors.New("layout: pop on empty transform stack")

	// ErrNoLayout is returned when Paint runs before Layout has stored a
	// result for the node being painted.
	ErrNoLayout = errors.New("layout: paint before layout")
)

// InvalidConstraintsError reports constraints whose minimum exceeds the
// maximum on some axis, or that contain negative or NaN values. These are
// caller errors and are surfaced rather than silently repaired.
type InvalidConstraintsError struct {
	Constraints Constraints
	Reason      string
}

func (e *InvalidConstraintsError) Error() string {
	return fmt.Sprintf("layout: invalid constraints (%s): %v", e.Reason, e.Constraints)
}

// NotInvertibleError reports a transform whose determinant is too close to
// zero to invert.
type NotInvertibleError struct {
	Matrix      Matrix
	Determinant float64
}

func (e *NotInvertibleError) Error() string {
	return fmt.Sprintf("layout: matrix not invertible (det=%g)", e.Determinant)
}

// DepthError reports a layout pass that exceeded the configured maximum
// nesting depth. Deep trees fail fast instead of exhausting the stack.
type DepthError struct {
	Depth    int
	MaxDepth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("layout: tree depth %d exceeds maximum %d", e.Depth, e.MaxDepth)
}
