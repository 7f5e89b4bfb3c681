package text

import "strings"

// BreakIntoLines breaks text into measured lines.
//
// Hard breaks ("\n", with "\r\n" normalized) always start a new line,
// and blank lines are preserved as empty lines so vertical rhythm
// survives round trips. Within a paragraph, words are separated by
// runs of whitespace and placed greedily: each word goes on the
// current line if it fits, otherwise a new line starts.
//
// When hyphenation is enabled, a word that does not fit may be split
// at a legal point; the leading fragment gets a trailing hyphen and
// the rest is carried to the next line. A word wider than the limit
// that cannot be split becomes a single overflowing line.
//
// Empty text yields zero lines.
func (m *Measurer) BreakIntoLines(text string, opts MeasurementOptions, breaking LineBreakingOptions) []LineMetrics {
	opts = opts.Normalize()

	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []LineMetrics
	for _, para := range strings.Split(text, "\n") {
		paraLines := m.breakParagraph(para, opts, breaking)
		markJustified(paraLines, breaking)
		lines = append(lines, paraLines...)
	}
	return lines
}

// breakParagraph breaks a single paragraph (no hard breaks) into lines.
func (m *Measurer) breakParagraph(para string, opts MeasurementOptions, breaking LineBreakingOptions) []LineMetrics {
	fields := strings.Fields(para)
	if len(fields) == 0 {
		// Blank line: no words, full line height.
		return []LineMetrics{m.MeasureLine(nil, opts)}
	}

	words := make([]WordMetrics, 0, len(fields))
	for _, f := range fields {
		words = append(words, m.MeasureWord(f, opts))
	}

	if breaking.MaxWidth <= 0 {
		// Unbounded width: the paragraph stays on one line.
		return []LineMetrics{m.MeasureLine(words, opts)}
	}

	space := m.spaceWidth(opts)
	limit := breaking.MaxWidth + WidthTolerance

	var lines []LineMetrics
	var cur []WordMetrics
	curWidth := 0.0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		lines = append(lines, m.MeasureLine(cur, opts))
		cur = nil
		curWidth = 0
	}

	for i := 0; i < len(words); i++ {
		w := words[i]
		sep := 0.0
		if len(cur) > 0 {
			sep = space
		}

		if curWidth+sep+w.Width <= limit {
			cur = append(cur, w)
			curWidth += sep + w.Width
			continue
		}

		if opts.Hyphenation.Enabled && w.Hyphenatable {
			avail := limit - curWidth - sep
			left, rest, ok := m.hyphenSplit(w, avail, opts)
			// Mid-line splits must recover more width than the
			// penalty; a word alone on its line splits regardless,
			// since the alternative is overflowing.
			if ok && (len(cur) == 0 || left.Width > breaking.HyphenationPenalty) {
				cur = append(cur, left)
				curWidth += sep + left.Width
				flush()
				words[i] = rest
				i--
				continue
			}
		}

		if len(cur) == 0 {
			// A single word wider than the limit overflows rather
			// than failing.
			lines = append(lines, m.MeasureLine([]WordMetrics{w}, opts))
			continue
		}

		flush()
		i-- // retry the word on a fresh line
	}
	flush()

	return lines
}

// hyphenSplit splits w at the largest legal point whose leading
// fragment, hyphen included, fits in avail. The remainder is measured
// with the same options and may be split again on a later line.
func (m *Measurer) hyphenSplit(w WordMetrics, avail float64, opts MeasurementOptions) (left, rest WordMetrics, ok bool) {
	runes := []rune(w.Text)
	points := w.HyphenationPoints

	for p := len(points) - 1; p >= 0; p-- {
		k := points[p]
		candidate := m.MeasureWord(string(runes[:k])+"-", opts)
		if candidate.Width <= avail {
			return candidate, m.MeasureWord(string(runes[k:]), opts), true
		}
	}
	return WordMetrics{}, WordMetrics{}, false
}

// markJustified flags lines whose natural width reaches the threshold
// fraction of the limit. The paragraph's last line is never flagged.
func markJustified(lines []LineMetrics, breaking LineBreakingOptions) {
	if breaking.JustificationThreshold <= 0 || breaking.MaxWidth <= 0 {
		return
	}
	cutoff := breaking.JustificationThreshold * breaking.MaxWidth
	for i := 0; i < len(lines)-1; i++ {
		if lines[i].Width >= cutoff {
			lines[i].Justified = true
		}
	}
}
