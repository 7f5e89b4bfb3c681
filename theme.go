package layout

import "github.com/gogpu/layout/text"

// TextStyle describes how a run of text is measured and painted.
// A zero LineHeight or Size falls back to the theme defaults.
type TextStyle struct {
	// Font selects the face family and style variant.
	Font text.FontDescriptor

	// Size is the font size in length units (typically points).
	Size float64

	// LineHeight is a multiplier applied to Size to obtain the line box
	// height. 0 means the theme default.
	LineHeight float64

	// LetterSpacing is extra advance per character, as a multiple of Size.
	LetterSpacing float64

	// WordSpacing overrides the inter-word gap, as a multiple of Size.
	// When HasWordSpacing is false the font's space advance is used.
	WordSpacing    float64
	HasWordSpacing bool

	// Color is the fill color handed to the painter.
	Color RGBA
}

// merge fills unset fields from the fallback style.
func (s TextStyle) merge(fallback TextStyle) TextStyle {
	if s.Font.Family == "" {
		s.Font = fallback.Font
	}
	if s.Size == 0 {
		s.Size = fallback.Size
	}
	if s.LineHeight == 0 {
		s.LineHeight = fallback.LineHeight
	}
	if s.Color == (RGBA{}) {
		s.Color = fallback.Color
	}
	return s
}

// ColorScheme is the palette a tree paints with. Widgets read it, never
// write it.
type ColorScheme struct {
	Background   RGBA
	OnBackground RGBA
	Primary      RGBA
	OnPrimary    RGBA
	Outline      RGBA
}

// SpacingScale holds the spacing steps used for default gaps and padding.
type SpacingScale struct {
	XS, SM, MD, LG, XL float64
}

// Theme bundles the ambient styling a tree is laid out and painted with.
// Themes are consumed read-only; derive a modified copy instead of
// mutating a shared one.
type Theme struct {
	DefaultStyle TextStyle
	Colors       ColorScheme
	Spacing      SpacingScale
}

// DefaultTheme returns the built-in theme: Helvetica-class metrics at 12
// units with a 1.2 line height, black on white.
func DefaultTheme() *Theme {
	return &Theme{
		DefaultStyle: TextStyle{
			Font:       text.FontDescriptor{Family: "Helvetica"},
			Size:       12,
			LineHeight: 1.2,
			Color:      Black,
		},
		Colors: ColorScheme{
			Background:   White,
			OnBackground: Black,
			Primary:      RGB(0.12, 0.29, 0.85),
			OnPrimary:    White,
			Outline:      RGB(0.46, 0.46, 0.50),
		},
		Spacing: SpacingScale{XS: 2, SM: 4, MD: 8, LG: 16, XL: 32},
	}
}
