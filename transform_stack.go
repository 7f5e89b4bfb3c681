package layout

// TransformStack tracks the current transform during a paint traversal.
// The stack starts with a single identity frame and is never empty: Pop on
// the initial frame is an error, not a silent reset.
//
// TransformStack is not safe for concurrent use; each traversal owns one.
type TransformStack struct {
	frames []Matrix
}

// NewTransformStack creates a stack holding the identity transform.
func NewTransformStack() *TransformStack {
	return &TransformStack{frames: []Matrix{Identity()}}
}

// Current returns the transform on top of the stack.
func (s *TransformStack) Current() Matrix {
	return s.frames[len(s.frames)-1]
}

// Push composes m onto the current transform and makes the result the new
// top. The previous top is restored by the matching Pop.
func (s *TransformStack) Push(m Matrix) {
	s.frames = append(s.frames, s.Current().Multiply(m))
}

// PushReplace pushes m as the new top without composing it with the
// current transform.
func (s *TransformStack) PushReplace(m Matrix) {
	s.frames = append(s.frames, m)
}

// Pop removes the top frame, restoring the transform saved by the matching
// Push. Popping the initial frame returns ErrEmptyStackPop.
func (s *TransformStack) Pop() error {
	if len(s.frames) == 1 {
		return ErrEmptyStackPop
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Depth returns the number of frames above the initial one.
func (s *TransformStack) Depth() int {
	return len(s.frames) - 1
}
