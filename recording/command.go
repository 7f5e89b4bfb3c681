package recording

import (
	"github.com/gogpu/layout"
	"github.com/gogpu/layout/text"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one painter operation.
type CommandType uint8

const (
	// State commands
	CmdSave         CommandType = iota // Save current state
	CmdRestore                         // Restore previous state
	CmdSetTransform                    // Set transformation matrix

	// Drawing commands
	CmdFillRect   // Fill a rectangle
	CmdStrokeRect // Stroke a rectangle
	CmdLine       // Draw a line segment
	CmdText       // Draw a measured line of text

	// Clip commands
	CmdPushClip // Intersect the clip with a rectangle
	CmdPopClip  // Remove the last pushed clip
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdSetTransform: "SetTransform",
	CmdFillRect:     "FillRect",
	CmdStrokeRect:   "StrokeRect",
	CmdLine:         "Line",
	CmdText:         "Text",
	CmdPushClip:     "PushClip",
	CmdPopClip:      "PopClip",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Each command is one recorded painter operation together with its
// arguments, stored as plain values so recordings stay self-contained.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand pushes the painter's transform and clip state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the state saved by the matching Save.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetTransformCommand replaces the current transform with an absolute
// matrix. The paint traversal emits one per painted widget, carrying the
// widget's position in root coordinates.
type SetTransformCommand struct {
	// Matrix is the new transformation matrix.
	Matrix layout.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillRectCommand fills an axis-aligned rectangle.
type FillRectCommand struct {
	// Rect is the rectangle to fill, in the widget's local space.
	Rect layout.Rect
	// Color is the fill color.
	Color layout.RGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeRectCommand outlines an axis-aligned rectangle.
type StrokeRectCommand struct {
	// Rect is the rectangle to outline, in the widget's local space.
	Rect layout.Rect
	// Color is the stroke color.
	Color layout.RGBA
	// Width is the stroke width.
	Width float64
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// LineCommand draws a straight line segment.
type LineCommand struct {
	// From is the start point.
	From layout.Point
	// To is the end point.
	To layout.Point
	// Color is the line color.
	Color layout.RGBA
	// Width is the line width.
	Width float64
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// TextCommand draws one measured line of text.
type TextCommand struct {
	// Line holds the measured words and their widths.
	Line text.LineMetrics
	// Origin is the baseline start of the line.
	Origin layout.Point
	// Style carries font, size, and color.
	Style layout.TextStyle
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// --------------------------------------------------------------------------
// Clip Commands
// --------------------------------------------------------------------------

// PushClipCommand intersects the clip region with a rectangle.
type PushClipCommand struct {
	// Rect is the clip rectangle, in the widget's local space.
	Rect layout.Rect
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

// PopClipCommand removes the clip pushed by the matching PushClip.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }
