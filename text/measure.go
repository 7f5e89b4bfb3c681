package text

import (
	"strings"
	"sync/atomic"
)

// WidthTolerance absorbs floating point drift when comparing measured
// widths against limits. A line "fits" when it exceeds the maximum
// width by no more than this value.
const WidthTolerance = 0.01

// CharacterMetrics describes a single measured character.
type CharacterMetrics struct {
	// Rune is the measured character.
	Rune rune

	// Advance is the font's horizontal advance at the measured size.
	Advance float64

	// Width is the layout width: the advance plus letter spacing.
	Width float64

	// Height is the vertical extent of the font (ascent + descent),
	// independent of the particular glyph.
	Height float64

	// LeftBearing is the gap between the origin and the glyph's left
	// edge. RightBearing is the gap between the glyph's right edge and
	// the advance. Estimated fonts report zero bearings.
	LeftBearing  float64
	RightBearing float64
}

// WordMetrics describes a measured word.
type WordMetrics struct {
	// Text is the word content, without surrounding spaces.
	Text string

	// Characters holds per-character metrics in text order.
	Characters []CharacterMetrics

	// Width is the sum of the character widths.
	Width float64

	// Height is the vertical extent of the font.
	Height float64

	// Hyphenatable reports whether the word offers at least one legal
	// split point under the measurement's hyphenation policy.
	Hyphenatable bool

	// HyphenationPoints holds legal split points as rune offsets, in
	// ascending order. Empty when hyphenation is disabled.
	HyphenationPoints []int
}

// RuneCount returns the number of characters in the word.
func (w WordMetrics) RuneCount() int {
	return len(w.Characters)
}

// LineMetrics describes one laid-out line of text.
type LineMetrics struct {
	// Text is the line content with single spaces between words.
	Text string

	// Words holds the words on the line in visual order.
	Words []WordMetrics

	// Width is the natural width: word widths plus inter-word gaps.
	Width float64

	// Height is the line box height (line height multiple times size).
	Height float64

	// Baseline is the distance from the top of the line box to the
	// baseline. Extra leading is split evenly above and below.
	Baseline float64

	// SpaceWidth is the width of one inter-word gap on this line.
	SpaceWidth float64

	// Justified marks lines that should be stretched to the full
	// available width by widening gaps. Set during line breaking.
	Justified bool
}

// ParagraphMetrics aggregates the lines of a broken paragraph.
type ParagraphMetrics struct {
	// Lines holds the measured lines in top-to-bottom order.
	Lines []LineMetrics

	// Width is the widest line's width.
	Width float64

	// Height is the sum of the line heights.
	Height float64

	// LineCount is len(Lines).
	LineCount int

	// AverageLineWidth is the mean natural line width, 0 for empty text.
	AverageLineWidth float64
}

// Measurer measures text without rasterizing it.
//
// Metrics come from the configured Provider. When the provider cannot
// answer a query (unregistered font, missing glyph) the measurer falls
// back to deterministic estimates, so measurement never fails: a
// missing font degrades accuracy, not behavior.
//
// Measurer is safe for concurrent use.
type Measurer struct {
	provider   Provider
	hyphenator Hyphenator
	cache      *MeasureCache

	// fallbacks counts queries answered by the estimator instead of
	// the provider.
	fallbacks atomic.Uint64
}

// NewMeasurer creates a measurer. Without options it estimates every
// metric; pass WithProvider to measure against real fonts.
func NewMeasurer(opts ...MeasurerOption) *Measurer {
	config := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Measurer{
		provider:   config.provider,
		hyphenator: config.hyphenator,
		cache:      config.cache,
	}
}

// FallbackCount returns how many metric queries were answered by the
// estimator because the provider failed them. Useful for detecting
// missing fonts in tests and diagnostics.
func (m *Measurer) FallbackCount() uint64 {
	return m.fallbacks.Load()
}

// generation returns the provider's cache generation, 0 when the
// provider does not version its fonts.
func (m *Measurer) generation() uint64 {
	if g, ok := m.provider.(interface{ Generation() uint64 }); ok {
		return g.Generation()
	}
	return 0
}

func (m *Measurer) advance(desc FontDescriptor, r rune, size float64) float64 {
	adv, err := m.provider.GlyphAdvance(desc, r, size)
	if err != nil {
		m.fallbacks.Add(1)
		return estimateAdvance(desc, r, size)
	}
	return adv
}

func (m *Measurer) glyphBounds(desc FontDescriptor, r rune, size float64) Rect {
	b, err := m.provider.GlyphBounds(desc, r, size)
	if err != nil {
		m.fallbacks.Add(1)
		b, _ = Estimator{}.GlyphBounds(desc, r, size)
	}
	return b
}

func (m *Measurer) fontMetrics(desc FontDescriptor, size float64) FontMetrics {
	fm, err := m.provider.FontMetrics(desc, size)
	if err != nil {
		m.fallbacks.Add(1)
		fm, _ = Estimator{}.FontMetrics(desc, size)
	}
	return fm
}

// spaceWidth returns the width of one inter-word gap: the font's space
// advance, unless word spacing overrides it.
func (m *Measurer) spaceWidth(opts MeasurementOptions) float64 {
	if opts.HasWordSpacing {
		return opts.WordSpacing * opts.Size
	}
	return m.advance(opts.Font, ' ', opts.Size)
}

// MeasureCharacter measures a single character.
func (m *Measurer) MeasureCharacter(r rune, opts MeasurementOptions) CharacterMetrics {
	opts = opts.Normalize()
	return m.measureCharacter(r, opts, m.fontMetrics(opts.Font, opts.Size))
}

func (m *Measurer) measureCharacter(r rune, opts MeasurementOptions, fm FontMetrics) CharacterMetrics {
	adv := m.advance(opts.Font, r, opts.Size)
	b := m.glyphBounds(opts.Font, r, opts.Size)

	return CharacterMetrics{
		Rune:         r,
		Advance:      adv,
		Width:        adv + opts.LetterSpacing*opts.Size,
		Height:       fm.Ascent + fm.Descent,
		LeftBearing:  b.MinX,
		RightBearing: adv - b.MaxX,
	}
}

// MeasureWord measures a word as the sum of its character widths.
// Results are cached when the measurer has a cache attached.
func (m *Measurer) MeasureWord(word string, opts MeasurementOptions) WordMetrics {
	opts = opts.Normalize()

	if m.cache == nil {
		return m.measureWord(word, opts)
	}

	key := wordKey{
		text:          word,
		font:          opts.Font,
		size:          opts.Size,
		letterSpacing: opts.LetterSpacing,
		wordSpacing:   opts.WordSpacing,
		hasWordSpace:  opts.HasWordSpacing,
		hyphenation:   opts.Hyphenation,
		generation:    m.generation(),
	}
	return m.cache.words.GetOrCreate(key, func() WordMetrics {
		return m.measureWord(word, opts)
	})
}

func (m *Measurer) measureWord(word string, opts MeasurementOptions) WordMetrics {
	fm := m.fontMetrics(opts.Font, opts.Size)

	runes := []rune(word)
	chars := make([]CharacterMetrics, 0, len(runes))
	width := 0.0
	for _, r := range runes {
		cm := m.measureCharacter(r, opts, fm)
		chars = append(chars, cm)
		width += cm.Width
	}

	wm := WordMetrics{
		Text:       word,
		Characters: chars,
		Width:      width,
		Height:     fm.Ascent + fm.Descent,
	}

	if opts.Hyphenation.Enabled {
		wm.HyphenationPoints = m.hyphenator.Points(word, opts.Hyphenation)
		wm.Hyphenatable = len(wm.HyphenationPoints) > 0
	}

	return wm
}

// MeasureLine combines measured words into one line. Words are joined
// by inter-word gaps; the line box height and baseline come from the
// font metrics and the line height multiple.
func (m *Measurer) MeasureLine(words []WordMetrics, opts MeasurementOptions) LineMetrics {
	opts = opts.Normalize()

	space := m.spaceWidth(opts)
	width := 0.0
	texts := make([]string, 0, len(words))
	for i, w := range words {
		if i > 0 {
			width += space
		}
		width += w.Width
		texts = append(texts, w.Text)
	}

	fm := m.fontMetrics(opts.Font, opts.Size)
	lineBox := opts.LineHeight * opts.Size
	// Half-leading: the difference between the line box and the font
	// extent is split evenly above and below the text.
	leading := lineBox - (fm.Ascent + fm.Descent)

	return LineMetrics{
		Text:       strings.Join(texts, " "),
		Words:      words,
		Width:      width,
		Height:     lineBox,
		Baseline:   fm.Ascent + leading/2,
		SpaceWidth: space,
	}
}

// MeasureParagraph breaks text into lines and aggregates their
// extents. Empty text yields zero lines and zero extents.
func (m *Measurer) MeasureParagraph(text string, opts MeasurementOptions, breaking LineBreakingOptions) ParagraphMetrics {
	lines := m.BreakIntoLines(text, opts, breaking)

	p := ParagraphMetrics{
		Lines:     lines,
		LineCount: len(lines),
	}
	if len(lines) == 0 {
		return p
	}

	total := 0.0
	for _, line := range lines {
		if line.Width > p.Width {
			p.Width = line.Width
		}
		p.Height += line.Height
		total += line.Width
	}
	p.AverageLineWidth = total / float64(len(lines))
	return p
}
