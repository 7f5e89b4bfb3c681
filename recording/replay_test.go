package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/layout"
)

// stubBackend records its lifecycle around an embedded Recorder sink.
type stubBackend struct {
	*Recorder
	began    bool
	ended    bool
	beginErr error
	endErr   error
}

func newStubBackend() *stubBackend {
	return &stubBackend{Recorder: NewRecorder()}
}

func (b *stubBackend) Begin() error {
	b.began = true
	return b.beginErr
}

func (b *stubBackend) End() error {
	b.ended = true
	return b.endErr
}

func sampleRecording() *Recording {
	rec := NewRecorder()
	rec.Save()
	rec.SetTransform(layout.Translate(5, 5))
	rec.FillRect(layout.Rect{Width: 40, Height: 30}, layout.Red)
	rec.Line(layout.Pt(0, 0), layout.Pt(40, 0), layout.Black, 1)
	rec.PushClip(layout.Rect{Width: 40, Height: 30})
	rec.PopClip()
	rec.Restore()
	return rec.FinishRecording()
}

func TestReplayToDuplicatesRecording(t *testing.T) {
	src := sampleRecording()

	dup := NewRecorder()
	src.ReplayTo(dup)
	got := dup.FinishRecording()

	if got.Len() != src.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), src.Len())
	}
	for i := range src.Commands() {
		if got.Commands()[i] != src.Commands()[i] {
			t.Errorf("command[%d] = %v, want %v", i, got.Commands()[i], src.Commands()[i])
		}
	}
}

func TestReplayLifecycle(t *testing.T) {
	src := sampleRecording()
	backend := newStubBackend()

	if err := src.Replay(backend); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if !backend.began {
		t.Error("Begin was not called")
	}
	if !backend.ended {
		t.Error("End was not called")
	}
	if got := backend.Len(); got != src.Len() {
		t.Errorf("backend received %d commands, want %d", got, src.Len())
	}
}

func TestReplayBeginErrorAborts(t *testing.T) {
	src := sampleRecording()
	backend := newStubBackend()
	backend.beginErr = errors.New("backend unavailable")

	err := src.Replay(backend)
	if !errors.Is(err, backend.beginErr) {
		t.Fatalf("Replay() error = %v, want %v", err, backend.beginErr)
	}
	if backend.Len() != 0 {
		t.Errorf("backend received %d commands, want 0", backend.Len())
	}
	if backend.ended {
		t.Error("End was called after Begin failure")
	}
}

func TestReplayEndError(t *testing.T) {
	src := sampleRecording()
	backend := newStubBackend()
	backend.endErr = errors.New("flush failed")

	err := src.Replay(backend)
	if !errors.Is(err, backend.endErr) {
		t.Fatalf("Replay() error = %v, want %v", err, backend.endErr)
	}
	if got := backend.Len(); got != src.Len() {
		t.Errorf("backend received %d commands, want %d", got, src.Len())
	}
}

func TestReplayTextCommand(t *testing.T) {
	// Text commands round-trip with their measured line intact.
	rec := NewRecorder()

	tree := layout.NewTree(layout.NewText("hello world"))
	if _, err := tree.Layout(layout.Loose(layout.Sz(400, 100))); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if err := tree.Paint(rec); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	src := rec.FinishRecording()
	if src.Count(CmdText) != 1 {
		t.Fatalf("Count(CmdText) = %d, want 1", src.Count(CmdText))
	}

	dup := NewRecorder()
	src.ReplayTo(dup)
	got := dup.FinishRecording()

	var srcText, dupText TextCommand
	for _, cmd := range src.Commands() {
		if c, ok := cmd.(TextCommand); ok {
			srcText = c
		}
	}
	for _, cmd := range got.Commands() {
		if c, ok := cmd.(TextCommand); ok {
			dupText = c
		}
	}
	if dupText.Line.Text != srcText.Line.Text {
		t.Errorf("replayed line text = %q, want %q", dupText.Line.Text, srcText.Line.Text)
	}
	if dupText.Origin != srcText.Origin {
		t.Errorf("replayed origin = %v, want %v", dupText.Origin, srcText.Origin)
	}
}
