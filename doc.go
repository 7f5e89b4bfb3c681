// Package layout provides constraint-based layout and text measurement
// for document composition.
//
// # Overview
//
// layout is the measurement core of the GoGPU document stack. Given a tree
// of widgets (boxes, flex rows and columns, stacks, paragraphs, tables) and
// a budget of available space, it computes the size and position of every
// node and breaks paragraph text into lines. It draws nothing itself: paint
// traversal emits high-level operations (rects, lines, text runs, clips)
// to a Painter, and backends such as the recording package decide what to
// do with them.
//
// # Quick Start
//
//	import "github.com/gogpu/layout"
//
//	// Build a tree
//	root := layout.NewColumn([]layout.Widget{
//	    layout.NewText("Hello, layout"),
//	    layout.NewExpanded(layout.NewBox(nil, layout.WithFill(layout.White))),
//	}, layout.WithSpacing(6))
//
//	// Measure it against a page
//	tree := layout.NewTree(root)
//	result, err := tree.Layout(layout.Loose(layout.Size{Width: 595, Height: 842}))
//
//	// Replay geometry into a recorder
//	rec := recording.NewRecorder()
//	err = tree.Paint(rec)
//
// # Layout Model
//
// Constraints flow down, sizes flow up, parents position children. A widget
// receives Constraints (min/max width and height, max may be unbounded),
// returns a LayoutResult, and must keep its reported size inside the
// constraints. Layout and paint are separate passes: layout stores results
// in the tree, paint replays them without re-measuring.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down, angles in
// radians. All lengths are abstract units (callers typically use points).
//
// # Text
//
// The text subpackage measures characters, words, lines, and paragraphs
// against real font metrics (go-text/typesetting by default, x/image as an
// alternate backend) and falls back to a deterministic estimator when a
// font cannot answer. Line breaking is greedy with optional hyphenation
// and justification marking.
package layout

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
