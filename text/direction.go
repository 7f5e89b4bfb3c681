package text

import "golang.org/x/text/unicode/bidi"

// ResolveDirection resolves DirectionAuto from text content using the
// first strong character, per the Unicode bidirectional algorithm's
// paragraph rules. Explicit directions pass through unchanged.
//
// Text with no strong characters (digits, punctuation, whitespace)
// resolves to DirectionLTR.
//
// Direction does not change measured widths; it tells the renderer
// which edge lines start from.
func ResolveDirection(text string, d Direction) Direction {
	if d != DirectionAuto {
		return d
	}

	for i := 0; i < len(text); {
		props, sz := bidi.LookupString(text[i:])
		if sz == 0 {
			break
		}
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
		i += sz
	}
	return DirectionLTR
}
