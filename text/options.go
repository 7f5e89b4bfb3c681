package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (gotext)
	}
}

// WithParser specifies the font parser backend.
// The default is "gotext" which uses github.com/go-text/typesetting;
// "ximage" selects golang.org/x/image/font/opentype instead.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// MeasurerOption configures Measurer creation.
type MeasurerOption func(*measurerConfig)

// measurerConfig holds configuration for Measurer.
type measurerConfig struct {
	provider   Provider
	hyphenator Hyphenator
	cache      *MeasureCache
}

// defaultMeasurerConfig returns the default measurer configuration.
func defaultMeasurerConfig() measurerConfig {
	return measurerConfig{
		provider:   Estimator{},
		hyphenator: BoundsHyphenator{},
		cache:      nil, // caching is opt-in
	}
}

// WithProvider sets the metric provider, typically a *Registry.
// Queries the provider fails to answer fall back to the estimator.
func WithProvider(p Provider) MeasurerOption {
	return func(c *measurerConfig) {
		if p != nil {
			c.provider = p
		}
	}
}

// WithHyphenator sets the hyphenation point finder.
func WithHyphenator(h Hyphenator) MeasurerOption {
	return func(c *measurerConfig) {
		if h != nil {
			c.hyphenator = h
		}
	}
}

// WithCache attaches a word measurement cache. The cache is owned by
// the caller and may be shared between measurers; invalidate it with
// Clear when fonts change outside a Registry.
func WithCache(cache *MeasureCache) MeasurerOption {
	return func(c *measurerConfig) {
		c.cache = cache
	}
}

// MeasurementOptions describes how a piece of text should be measured.
// The zero value is usable: Normalize fills in a 12 point size and a
// 1.2 line height.
type MeasurementOptions struct {
	// Font identifies the font to measure with.
	Font FontDescriptor

	// Size is the font size in layout units (points).
	Size float64

	// LineHeight is the line box height as a multiple of Size.
	LineHeight float64

	// LetterSpacing is extra tracking added after every character, as
	// a multiple of Size. Zero adds nothing.
	LetterSpacing float64

	// WordSpacing overrides the width of inter-word gaps, as a
	// multiple of Size. It only applies when HasWordSpacing is true;
	// otherwise gaps use the font's space advance.
	WordSpacing    float64
	HasWordSpacing bool

	// Direction is the reading direction. DirectionAuto resolves it
	// from the text content.
	Direction Direction

	// Hyphenation controls whether and where words may be split.
	Hyphenation HyphenationPolicy
}

// Normalize returns a copy with unset fields replaced by defaults.
func (o MeasurementOptions) Normalize() MeasurementOptions {
	if o.Size <= 0 {
		o.Size = 12
	}
	if o.LineHeight <= 0 {
		o.LineHeight = 1.2
	}
	o.Hyphenation = o.Hyphenation.normalize()
	return o
}

// HyphenationPolicy controls word splitting during line breaking.
type HyphenationPolicy struct {
	// Enabled turns hyphenation on.
	Enabled bool

	// MinWordLength is the minimum rune count a word needs before it
	// may be hyphenated.
	MinWordLength int

	// MinLeftChars is the minimum number of runes that must remain
	// before the hyphen.
	MinLeftChars int

	// MinRightChars is the minimum number of runes that must move to
	// the next line.
	MinRightChars int
}

// DefaultHyphenationPolicy returns the policy used when fields are
// unset: disabled, with 6/2/3 length bounds once enabled.
func DefaultHyphenationPolicy() HyphenationPolicy {
	return HyphenationPolicy{
		Enabled:       false,
		MinWordLength: 6,
		MinLeftChars:  2,
		MinRightChars: 3,
	}
}

func (p HyphenationPolicy) normalize() HyphenationPolicy {
	def := DefaultHyphenationPolicy()
	if p.MinWordLength <= 0 {
		p.MinWordLength = def.MinWordLength
	}
	if p.MinLeftChars <= 0 {
		p.MinLeftChars = def.MinLeftChars
	}
	if p.MinRightChars <= 0 {
		p.MinRightChars = def.MinRightChars
	}
	return p
}

// Strategy selects a line breaking algorithm.
type Strategy int

const (
	// StrategySimple is first-fit greedy breaking: words fill a line
	// until the next one no longer fits.
	StrategySimple Strategy = iota
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategySimple:
		return "Simple"
	default:
		return unknownStr
	}
}

// LineBreakingOptions controls how text is broken into lines.
type LineBreakingOptions struct {
	// MaxWidth is the line width limit in layout units. Zero or
	// negative means unbounded, producing one line per paragraph.
	MaxWidth float64

	// Strategy selects the breaking algorithm.
	Strategy Strategy

	// HyphenationPenalty discourages hyphen breaks: a word is only
	// split when the width recovered on the current line exceeds the
	// penalty. Same units as MaxWidth.
	HyphenationPenalty float64

	// LoosePenalty and TightPenalty are reserved for strategies that
	// score whole paragraphs. The simple strategy ignores them.
	LoosePenalty float64
	TightPenalty float64

	// JustificationThreshold marks lines for justification: a line
	// whose natural width is at least the threshold fraction of
	// MaxWidth is flagged. Zero disables justification. The last line
	// of a paragraph is never flagged.
	JustificationThreshold float64
}
