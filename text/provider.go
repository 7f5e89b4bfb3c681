package text

import "strings"

// Provider answers font metric queries for measurement.
//
// A Provider is addressed by descriptor rather than by font object, so
// callers never hold parsed font handles. Registry is the standard
// implementation; Estimator answers without any font data at all.
//
// Providers must be safe for concurrent use.
type Provider interface {
	// GlyphAdvance returns the horizontal advance of the glyph for r
	// at the given size, in the same units as size.
	GlyphAdvance(desc FontDescriptor, r rune, size float64) (float64, error)

	// GlyphBounds returns the tight bounding box of the glyph for r at
	// the given size, relative to the baseline origin, Y up.
	GlyphBounds(desc FontDescriptor, r rune, size float64) (Rect, error)

	// FontMetrics returns ascent, descent and line gap at the given size.
	FontMetrics(desc FontDescriptor, size float64) (FontMetrics, error)

	// UnitsPerEm returns the design units per em of the font.
	UnitsPerEm(desc FontDescriptor) (int, error)

	// SupportsRune reports whether the font has a glyph for r.
	SupportsRune(desc FontDescriptor, r rune) bool
}

// Estimator is a Provider that approximates metrics without font data.
//
// Widths are derived from the font size using per-character class
// weights, adjusted by a coefficient guessed from the family name. The
// result is deterministic: the same inputs always produce the same
// widths, so layouts stay stable even when no fonts are registered.
//
// A Measurer falls back to these estimates whenever its configured
// provider fails a query.
type Estimator struct{}

// GlyphAdvance implements Provider.GlyphAdvance.
func (Estimator) GlyphAdvance(desc FontDescriptor, r rune, size float64) (float64, error) {
	return estimateAdvance(desc, r, size), nil
}

// GlyphBounds implements Provider.GlyphBounds.
// Estimated glyphs have zero side bearings.
func (Estimator) GlyphBounds(desc FontDescriptor, r rune, size float64) (Rect, error) {
	advance := estimateAdvance(desc, r, size)
	return Rect{
		MinX: 0,
		MinY: -estimatedDescentRatio * size,
		MaxX: advance,
		MaxY: estimatedAscentRatio * size,
	}, nil
}

// FontMetrics implements Provider.FontMetrics.
func (Estimator) FontMetrics(desc FontDescriptor, size float64) (FontMetrics, error) {
	return FontMetrics{
		Ascent:  estimatedAscentRatio * size,
		Descent: estimatedDescentRatio * size,
		LineGap: 0,
	}, nil
}

// UnitsPerEm implements Provider.UnitsPerEm.
func (Estimator) UnitsPerEm(desc FontDescriptor) (int, error) {
	return 1000, nil
}

// SupportsRune implements Provider.SupportsRune.
// The estimator accepts every rune.
func (Estimator) SupportsRune(desc FontDescriptor, r rune) bool {
	return true
}

// Vertical extent ratios for estimated fonts, as fractions of the size.
const (
	estimatedAscentRatio  = 0.8
	estimatedDescentRatio = 0.2
)

// Advance weights for estimated glyphs, as fractions of the size.
const (
	weightNarrow  = 0.34
	weightSpace   = 0.30
	weightUpper   = 0.66
	weightWide    = 0.89
	weightDefault = 0.52
	weightMono    = 0.60
)

const (
	narrowRunes = "iljt.,:;!|'\"`()[]{}"
	wideRunes   = "mwMW@"
)

// estimateAdvance approximates the advance of r in the given font.
func estimateAdvance(desc FontDescriptor, r rune, size float64) float64 {
	if monospaceFamily(desc.Family) {
		return weightMono * size
	}

	w := weightDefault
	switch {
	case r == ' ' || r == '\t':
		w = weightSpace
	case strings.ContainsRune(narrowRunes, r):
		w = weightNarrow
	case strings.ContainsRune(wideRunes, r):
		w = weightWide
	case r >= 'A' && r <= 'Z':
		w = weightUpper
	case r >= '0' && r <= '9':
		w = weightUpper
	}

	if desc.Style.Bold() {
		w *= 1.03
	}
	if condensedFamily(desc.Family) {
		w *= 0.85
	}

	return w * size
}

func monospaceFamily(family string) bool {
	f := strings.ToLower(family)
	return strings.Contains(f, "mono") ||
		strings.Contains(f, "courier") ||
		strings.Contains(f, "consol")
}

func condensedFamily(family string) bool {
	f := strings.ToLower(family)
	return strings.Contains(f, "condensed") || strings.Contains(f, "narrow")
}
