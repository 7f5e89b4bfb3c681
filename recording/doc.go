// Package recording captures paint operations as typed commands.
//
// A Recorder implements [layout.Painter]: painting a laid-out tree into it
// yields a Recording, an immutable command list that can be inspected,
// asserted on in tests, or replayed into another painter or an export
// backend.
//
// # Architecture
//
// Three pieces cooperate:
//
//   - Recorder: the layout.Painter sink that appends commands
//   - Recording: the immutable command list a finished Recorder yields
//   - Backend: a replay target with Begin/End lifecycle hooks
//
// Commands carry their arguments as plain values (rectangles, colors,
// measured lines), so a Recording is self-contained: replaying it needs
// no access to the widget tree that produced it.
//
// # Recording a tree
//
//	tree := layout.NewTree(root)
//	if _, err := tree.Layout(layout.Tight(layout.Size{Width: 400, Height: 300})); err != nil {
//	    // handle layout failure
//	}
//
//	rec := recording.NewRecorder()
//	if err := tree.Paint(rec); err != nil {
//	    // handle paint failure
//	}
//	r := rec.FinishRecording()
//
//	fmt.Printf("%d commands, %d text runs\n", r.Len(), r.Count(recording.CmdText))
//
// # Replaying
//
// Replay drives a Backend through its lifecycle and streams every command
// into it. ReplayTo skips the lifecycle and streams into a bare
// layout.Painter, which is how recordings are duplicated or forwarded:
//
//	pdf := newPDFBackend(pageSize)
//	if err := r.Replay(pdf); err != nil {
//	    // handle export failure
//	}
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Each goroutine should use its
// own Recorder instance. Recording objects are immutable after
// FinishRecording and can be safely shared and replayed from multiple
// goroutines.
package recording
