package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	pf := &gotextParsedFont{font: face.Font}
	// font.Font is safe for concurrent use but font.Face is not, so a
	// fresh Face wraps the shared Font for each borrower.
	pf.faces.New = func() any {
		return font.NewFace(pf.font)
	}
	return pf, nil
}

// gotextParsedFont implements ParsedFont using typesetting's font package.
type gotextParsedFont struct {
	font  *font.Font
	faces sync.Pool
}

func (f *gotextParsedFont) acquire() *font.Face {
	return f.faces.Get().(*font.Face)
}

func (f *gotextParsedFont) release(face *font.Face) {
	f.faces.Put(face)
}

// Name implements ParsedFont.Name.
// Family metadata is not exposed by this backend.
func (f *gotextParsedFont) Name() string {
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	face := f.acquire()
	defer f.release(face)

	return int(face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint16 {
	face := f.acquire()
	defer f.release(face)

	gid, ok := face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(glyphIndex uint16, size float64) float64 {
	face := f.acquire()
	defer f.release(face)

	// Advances come back in font units.
	advance := face.HorizontalAdvance(font.GID(glyphIndex))
	return float64(advance) * size / float64(face.Upem())
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *gotextParsedFont) GlyphBounds(glyphIndex uint16, size float64) Rect {
	face := f.acquire()
	defer f.release(face)

	ext, ok := face.GlyphExtents(font.GID(glyphIndex))
	if !ok {
		return Rect{}
	}

	scale := size / float64(face.Upem())
	// Extents use the harfbuzz convention: YBearing is the glyph top
	// and Height extends downward as a negative value.
	return Rect{
		MinX: float64(ext.XBearing) * scale,
		MinY: float64(ext.YBearing+ext.Height) * scale,
		MaxX: float64(ext.XBearing+ext.Width) * scale,
		MaxY: float64(ext.YBearing) * scale,
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(size float64) FontMetrics {
	face := f.acquire()
	defer f.release(face)

	ext, ok := face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}

	scale := size / float64(face.Upem())
	gap := float64(ext.LineGap) * scale
	if gap < 0 {
		gap = 0
	}

	// Descender is negative in font conventions; metrics report the
	// distance below the baseline as positive.
	return FontMetrics{
		Ascent:  float64(ext.Ascender) * scale,
		Descent: -float64(ext.Descender) * scale,
		LineGap: gap,
	}
}
