package recording

import (
	"github.com/gogpu/layout"
	"github.com/gogpu/layout/text"
)

// Recorder captures painter operations as commands. It implements
// [layout.Painter], so a laid-out tree paints into it directly:
//
//	rec := recording.NewRecorder()
//	if err := tree.Paint(rec); err != nil {
//	    // handle paint failure
//	}
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command

	// Depth counters for balance diagnostics. The paint traversal keeps
	// Save/Restore and PushClip/PopClip paired; hand-driven recorders
	// may not, and underflows are logged rather than dropped.
	saveDepth int
	clipDepth int
}

var _ layout.Painter = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 256)}
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be
// used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{commands: r.commands}
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int { return len(r.commands) }

// Save implements layout.Painter.
func (r *Recorder) Save() {
	r.saveDepth++
	r.commands = append(r.commands, SaveCommand{})
}

// Restore implements layout.Painter.
func (r *Recorder) Restore() {
	if r.saveDepth == 0 {
		layout.Logger().Warn("recording: Restore without matching Save")
	} else {
		r.saveDepth--
	}
	r.commands = append(r.commands, RestoreCommand{})
}

// SetTransform implements layout.Painter.
func (r *Recorder) SetTransform(m layout.Matrix) {
	r.commands = append(r.commands, SetTransformCommand{Matrix: m})
}

// FillRect implements layout.Painter.
func (r *Recorder) FillRect(rect layout.Rect, c layout.RGBA) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: c})
}

// StrokeRect implements layout.Painter.
func (r *Recorder) StrokeRect(rect layout.Rect, c layout.RGBA, width float64) {
	r.commands = append(r.commands, StrokeRectCommand{Rect: rect, Color: c, Width: width})
}

// Line implements layout.Painter.
func (r *Recorder) Line(from, to layout.Point, c layout.RGBA, width float64) {
	r.commands = append(r.commands, LineCommand{From: from, To: to, Color: c, Width: width})
}

// Text implements layout.Painter.
func (r *Recorder) Text(line text.LineMetrics, origin layout.Point, style layout.TextStyle) {
	r.commands = append(r.commands, TextCommand{Line: line, Origin: origin, Style: style})
}

// PushClip implements layout.Painter.
func (r *Recorder) PushClip(rect layout.Rect) {
	r.clipDepth++
	r.commands = append(r.commands, PushClipCommand{Rect: rect})
}

// PopClip implements layout.Painter.
func (r *Recorder) PopClip() {
	if r.clipDepth == 0 {
		layout.Logger().Warn("recording: PopClip without matching PushClip")
	} else {
		r.clipDepth--
	}
	r.commands = append(r.commands, PopClipCommand{})
}

// Recording is an immutable container for recorded painter commands.
// It can be inspected directly or replayed to a Backend.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands in emission order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns how many commands of the given type were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Balanced reports whether Save/Restore and PushClip/PopClip pair up
// across the whole recording, with no restore or pop arriving before its
// opening command. Trees painted through layout.Tree always produce
// balanced recordings.
func (r *Recording) Balanced() bool {
	save, clip := 0, 0
	for _, cmd := range r.commands {
		switch cmd.Type() {
		case CmdSave:
			save++
		case CmdRestore:
			save--
		case CmdPushClip:
			clip++
		case CmdPopClip:
			clip--
		}
		if save < 0 || clip < 0 {
			return false
		}
	}
	return save == 0 && clip == 0
}
