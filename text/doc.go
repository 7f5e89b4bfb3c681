// Package text measures text without rasterizing it.
//
// The package answers one question in several granularities: how much
// space does this text occupy at this font and size? It measures
// characters, words, lines and paragraphs, and breaks paragraphs into
// lines under a width limit, with optional hyphenation and
// justification marking.
//
// The measurement pipeline separates concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Registry: maps font descriptors to sources, answers metric queries
//   - Measurer: measures and line-breaks text against a Provider
//   - FontParser: pluggable parsing backend (default: go-text/typesetting)
//
// # Example usage
//
//	// Load fonts once, share across the application.
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry := text.NewRegistry()
//	registry.Register(text.Font("Roboto"), source)
//
//	m := text.NewMeasurer(text.WithProvider(registry))
//	para := m.MeasureParagraph("The quick brown fox jumps over the lazy dog.",
//	    text.MeasurementOptions{Font: text.Font("Roboto"), Size: 12},
//	    text.LineBreakingOptions{MaxWidth: 180},
//	)
//	fmt.Println(para.LineCount, para.Height)
//
// # Measurement never fails
//
// Every query a provider cannot answer is served by a deterministic
// estimator instead: widths derived from the font size and character
// class. An unregistered font or a missing glyph degrades accuracy,
// never behavior, so layout code has no error paths for text.
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface. The
// default backend is github.com/go-text/typesetting; "ximage" selects
// golang.org/x/image/font/opentype. Custom parsers can be registered:
//
//	// Register a custom parser
//	text.RegisterParser("myparser", myCustomParser)
//
//	// Use the custom parser
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
