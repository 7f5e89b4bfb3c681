package recording

import (
	"github.com/gogpu/layout"
)

// Backend is a replay target with a lifecycle around the painter
// operations. Begin runs before the first command and End after the
// last; between them the Recording streams its commands through the
// embedded painter interface.
//
// Exporters implement Backend: a PDF writer would open its content
// stream in Begin and close the document in End.
type Backend interface {
	// Begin prepares the backend before any command is replayed.
	// Returns an error if initialization fails.
	Begin() error

	// End finalizes the backend after the last command.
	// Returns an error if finalization fails.
	End() error

	layout.Painter
}

// Replay drives the backend through its lifecycle and streams every
// recorded command into it. A Begin error aborts the replay before any
// command is delivered; the End error is returned after all of them have
// been.
func (r *Recording) Replay(b Backend) error {
	if err := b.Begin(); err != nil {
		return err
	}
	r.ReplayTo(b)
	return b.End()
}

// ReplayTo streams the recorded commands into a painter without any
// lifecycle hooks. Replaying into a second Recorder duplicates the
// recording.
func (r *Recording) ReplayTo(p layout.Painter) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			p.Save()
		case RestoreCommand:
			p.Restore()
		case SetTransformCommand:
			p.SetTransform(c.Matrix)
		case FillRectCommand:
			p.FillRect(c.Rect, c.Color)
		case StrokeRectCommand:
			p.StrokeRect(c.Rect, c.Color, c.Width)
		case LineCommand:
			p.Line(c.From, c.To, c.Color, c.Width)
		case TextCommand:
			p.Text(c.Line, c.Origin, c.Style)
		case PushClipCommand:
			p.PushClip(c.Rect)
		case PopClipCommand:
			p.PopClip()
		default:
			layout.Logger().Debug("recording: skipping unknown command",
				"type", cmd.Type())
		}
	}
}
