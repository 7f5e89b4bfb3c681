package text

// FontStyle selects a style variant within a font family.
type FontStyle int

const (
	// StyleRegular is the upright book weight.
	StyleRegular FontStyle = iota
	// StyleBold is the heavy weight.
	StyleBold
	// StyleItalic is the slanted variant.
	StyleItalic
	// StyleBoldItalic combines bold and italic.
	StyleBoldItalic
)

// String returns the string representation of the style.
func (s FontStyle) String() string {
	switch s {
	case StyleRegular:
		return "Regular"
	case StyleBold:
		return "Bold"
	case StyleItalic:
		return "Italic"
	case StyleBoldItalic:
		return "BoldItalic"
	default:
		return unknownStr
	}
}

// Bold reports whether the style includes a bold weight.
func (s FontStyle) Bold() bool {
	return s == StyleBold || s == StyleBoldItalic
}

// Italic reports whether the style includes an italic slant.
func (s FontStyle) Italic() bool {
	return s == StyleItalic || s == StyleBoldItalic
}

// FontDescriptor identifies a font by family name and style.
//
// Descriptors are plain comparable values. They are used as registry
// and cache keys, so two descriptors with the same fields always refer
// to the same font.
type FontDescriptor struct {
	// Family is the family name, such as "Helvetica" or "Roboto".
	Family string
	// Style is the variant within the family.
	Style FontStyle
}

// Font creates a descriptor for the regular style of a family.
func Font(family string) FontDescriptor {
	return FontDescriptor{Family: family, Style: StyleRegular}
}

// WithStyle returns a copy of the descriptor with the given style.
func (d FontDescriptor) WithStyle(s FontStyle) FontDescriptor {
	d.Style = s
	return d
}

// String returns a human-readable form such as "Helvetica-Bold".
func (d FontDescriptor) String() string {
	if d.Style == StyleRegular {
		return d.Family
	}
	return d.Family + "-" + d.Style.String()
}
