package text

import "unicode"

// Hyphenator finds legal split points inside a word.
//
// Implementations return rune offsets, in ascending order, at which
// the word may be broken. A split at offset k puts the first k runes
// plus a hyphen on the current line and the rest on the next.
type Hyphenator interface {
	Points(word string, policy HyphenationPolicy) []int
}

// BoundsHyphenator offers a split at every rune offset that respects
// the policy's length bounds. It uses no dictionary: it never knows
// syllables, it only knows how short each fragment is allowed to be.
//
// Splits are only offered between two letters, so punctuation inside a
// word is never separated from its neighbors.
type BoundsHyphenator struct{}

// Points implements Hyphenator.Points.
func (BoundsHyphenator) Points(word string, policy HyphenationPolicy) []int {
	runes := []rune(word)
	n := len(runes)
	if n < policy.MinWordLength {
		return nil
	}

	lo := policy.MinLeftChars
	hi := n - policy.MinRightChars
	if lo < 1 {
		lo = 1
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo > hi {
		return nil
	}

	var points []int
	for k := lo; k <= hi; k++ {
		if unicode.IsLetter(runes[k-1]) && unicode.IsLetter(runes[k]) {
			points = append(points, k)
		}
	}
	return points
}
