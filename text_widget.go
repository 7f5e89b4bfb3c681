package layout

import (
	"github.com/gogpu/layout/text"
)

// TextAlign positions lines of a Text widget within its width.
type TextAlign int

const (
	// TextAlignStart aligns lines to the reading direction's start edge.
	TextAlignStart TextAlign = iota
	// TextAlignCenter centers each line.
	TextAlignCenter
	// TextAlignEnd aligns lines to the reading direction's end edge.
	TextAlignEnd
	// TextAlignJustify stretches full lines to the widget width. Lines
	// below the justification threshold, and the last line of each
	// paragraph, fall back to start alignment.
	TextAlignJustify
)

// String returns the string representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignStart:
		return "Start"
	case TextAlignCenter:
		return "Center"
	case TextAlignEnd:
		return "End"
	case TextAlignJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// defaultJustifyThreshold marks lines at least this full for
// justification when TextAlignJustify is on and no threshold is set.
const defaultJustifyThreshold = 0.5

// Text measures and paints a run of text. Layout breaks the content
// into lines against the incoming width bound; Paint replays those
// lines without re-measuring. The first line's baseline becomes the
// widget baseline.
type Text struct {
	content string
	config  textConfig

	// Settled by Layout, consumed by Paint.
	lines     []text.LineMetrics
	style     TextStyle
	direction text.Direction
}

// TextOption configures a Text during creation.
type TextOption func(*textConfig)

// textConfig holds configuration for Text creation.
type textConfig struct {
	style            TextStyle
	align            TextAlign
	hyphenation      text.HyphenationPolicy
	hyphenPenalty    float64
	justifyThreshold float64
	autoDirection    bool
}

// WithStyle overrides the theme's default text style. Unset style
// fields still fall back to the theme.
func WithStyle(s TextStyle) TextOption {
	return func(c *textConfig) {
		c.style = s
	}
}

// WithTextAlign sets how lines sit within the widget width.
func WithTextAlign(a TextAlign) TextOption {
	return func(c *textConfig) {
		c.align = a
	}
}

// WithHyphenation enables word splitting under the given policy.
func WithHyphenation(p text.HyphenationPolicy) TextOption {
	return func(c *textConfig) {
		c.hyphenation = p
	}
}

// WithHyphenationPenalty discourages hyphen breaks; see
// text.LineBreakingOptions.
func WithHyphenationPenalty(penalty float64) TextOption {
	return func(c *textConfig) {
		c.hyphenPenalty = penalty
	}
}

// WithJustificationThreshold overrides the line fullness required for
// justification, as a fraction of the width bound.
func WithJustificationThreshold(t float64) TextOption {
	return func(c *textConfig) {
		c.justifyThreshold = t
	}
}

// WithAutoDirection resolves the reading direction from the content's
// first strong character instead of the tree's ambient direction.
func WithAutoDirection() TextOption {
	return func(c *textConfig) {
		c.autoDirection = true
	}
}

// NewText creates a text widget.
func NewText(content string, opts ...TextOption) *Text {
	var config textConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &Text{content: content, config: config}
}

// Content returns the text content.
func (t *Text) Content() string { return t.content }

// Layout implements Widget.Layout.
func (t *Text) Layout(ctx *LayoutContext) (LayoutResult, error) {
	c := ctx.Constraints
	style := t.config.style.merge(ctx.Theme().DefaultStyle)

	dir := textDirectionOf(ctx.Direction)
	if t.config.autoDirection {
		dir = text.ResolveDirection(t.content, text.DirectionAuto)
	}

	mopts := text.MeasurementOptions{
		Font:           style.Font,
		Size:           style.Size,
		LineHeight:     style.LineHeight,
		LetterSpacing:  style.LetterSpacing,
		WordSpacing:    style.WordSpacing,
		HasWordSpacing: style.HasWordSpacing,
		Direction:      dir,
		Hyphenation:    t.config.hyphenation,
	}

	maxWidth := 0.0
	if c.HasBoundedWidth() {
		maxWidth = c.MaxWidth
	}
	justify := 0.0
	if t.config.align == TextAlignJustify {
		justify = t.config.justifyThreshold
		if justify <= 0 {
			justify = defaultJustifyThreshold
		}
	}
	bopts := text.LineBreakingOptions{
		MaxWidth:               maxWidth,
		Strategy:               text.StrategySimple,
		HyphenationPenalty:     t.config.hyphenPenalty,
		JustificationThreshold: justify,
	}

	lines := ctx.Measurer().BreakIntoLines(t.content, mopts, bopts)

	t.lines = lines
	t.style = style
	t.direction = dir

	var width, height float64
	visible := false
	for _, line := range lines {
		if line.Width > width {
			width = line.Width
		}
		height += line.Height
		visible = visible || len(line.Words) > 0
	}

	res := LayoutResult{
		Size:         c.Constrain(Sz(width, height)),
		NeedsRepaint: visible && !t.style.Color.IsTransparent(),
	}
	if len(lines) > 0 {
		res.Baseline = lines[0].Baseline
		res.HasBaseline = true
	}
	return res, nil
}

// Paint implements Widget.Paint.
func (t *Text) Paint(ctx *PaintContext) error {
	p := ctx.Painter()
	width := ctx.Size().Width

	y := 0.0
	for _, line := range t.lines {
		if len(line.Words) > 0 {
			x := t.lineOffsetX(line, width)
			p.Text(line, Pt(x, y+line.Baseline), t.style)
		}
		y += line.Height
	}
	return nil
}

// lineOffsetX positions one line within the widget width according to
// the alignment and reading direction.
func (t *Text) lineOffsetX(line text.LineMetrics, width float64) float64 {
	slack := width - line.Width
	if slack < 0 {
		slack = 0
	}

	align := t.config.align
	if align == TextAlignJustify {
		// Justified lines are stretched by the renderer; the rest
		// start-align.
		align = TextAlignStart
	}

	rtl := t.direction == text.DirectionRTL
	switch align {
	case TextAlignCenter:
		return slack / 2
	case TextAlignEnd:
		if rtl {
			return 0
		}
		return slack
	default: // TextAlignStart
		if rtl {
			return slack
		}
		return 0
	}
}

// textDirectionOf maps the ambient direction into the text package.
func textDirectionOf(d TextDirection) text.Direction {
	if d == TextDirectionRTL {
		return text.DirectionRTL
	}
	return text.DirectionLTR
}
