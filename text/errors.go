package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotRegistered is returned by a Registry when no source
	// matches the requested descriptor, after style fallback.
	ErrFontNotRegistered = errors.New("text: font not registered")

	// ErrGlyphNotFound is returned when a font has no glyph for a rune.
	ErrGlyphNotFound = errors.New("text: glyph not found")
)
