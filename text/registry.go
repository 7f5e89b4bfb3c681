package text

import (
	"sync"
	"sync/atomic"
)

// Registry maps font descriptors to loaded font sources and answers
// metric queries against them. It is the standard Provider used by a
// Measurer when real fonts are available.
//
// Lookup falls back from a styled descriptor to the regular style of
// the same family, so registering only the regular cut still serves
// bold and italic requests with regular metrics.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[FontDescriptor]*FontSource

	// generation increments on every registration. Measurement caches
	// stamp it into their keys so entries from before a font change
	// can never be served after it.
	generation atomic.Uint64
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[FontDescriptor]*FontSource),
	}
}

// Register associates a descriptor with a font source, replacing any
// previous association.
func (g *Registry) Register(desc FontDescriptor, src *FontSource) {
	g.mu.Lock()
	g.sources[desc] = src
	g.mu.Unlock()
	g.generation.Add(1)
}

// Generation returns the current registration generation. It changes
// whenever the set of registered fonts changes.
func (g *Registry) Generation() uint64 {
	return g.generation.Load()
}

// Lookup resolves a descriptor to a registered source. A styled
// descriptor falls back to the regular style of its family.
func (g *Registry) Lookup(desc FontDescriptor) (*FontSource, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if src, ok := g.sources[desc]; ok {
		return src, true
	}
	if desc.Style != StyleRegular {
		if src, ok := g.sources[FontDescriptor{Family: desc.Family}]; ok {
			return src, true
		}
	}
	return nil, false
}

func (g *Registry) parsed(desc FontDescriptor) (ParsedFont, error) {
	src, ok := g.Lookup(desc)
	if !ok {
		return nil, ErrFontNotRegistered
	}
	return src.Parsed(), nil
}

// GlyphAdvance implements Provider.GlyphAdvance.
func (g *Registry) GlyphAdvance(desc FontDescriptor, r rune, size float64) (float64, error) {
	parsed, err := g.parsed(desc)
	if err != nil {
		return 0, err
	}
	gid := parsed.GlyphIndex(r)
	if gid == 0 {
		return 0, ErrGlyphNotFound
	}
	return parsed.GlyphAdvance(gid, size), nil
}

// GlyphBounds implements Provider.GlyphBounds.
func (g *Registry) GlyphBounds(desc FontDescriptor, r rune, size float64) (Rect, error) {
	parsed, err := g.parsed(desc)
	if err != nil {
		return Rect{}, err
	}
	gid := parsed.GlyphIndex(r)
	if gid == 0 {
		return Rect{}, ErrGlyphNotFound
	}
	return parsed.GlyphBounds(gid, size), nil
}

// FontMetrics implements Provider.FontMetrics.
func (g *Registry) FontMetrics(desc FontDescriptor, size float64) (FontMetrics, error) {
	parsed, err := g.parsed(desc)
	if err != nil {
		return FontMetrics{}, err
	}
	return parsed.Metrics(size), nil
}

// UnitsPerEm implements Provider.UnitsPerEm.
func (g *Registry) UnitsPerEm(desc FontDescriptor) (int, error) {
	parsed, err := g.parsed(desc)
	if err != nil {
		return 0, err
	}
	return parsed.UnitsPerEm(), nil
}

// SupportsRune implements Provider.SupportsRune.
func (g *Registry) SupportsRune(desc FontDescriptor, r rune) bool {
	parsed, err := g.parsed(desc)
	if err != nil {
		return false
	}
	return parsed.GlyphIndex(r) != 0
}
