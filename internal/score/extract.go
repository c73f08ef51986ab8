package score

import (
	"math"
	"regexp"
	"strconv"
)

var (
	// numericRe finds the word "score" followed closely by a 1-3 digit run.
	// The lookahead is bounded so the match cannot jump across sentences.
	numericRe = regexp.MustCompile(`(?i)\bscore\b\D{0,10}(\d{1,3})`)
	// starRe finds a bracketed star rating such as "[3.5/5⭐]".
	starRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*5\s*⭐`)
)

// Extraction is the result of scanning analysis text for a quality score.
type Extraction struct {
	// Score is the normalized 0-100 score. Only meaningful when Found is true.
	Score int
	// Found reports whether any score could be extracted. Absence is an
	// expected outcome, not an error.
	Found bool
	// OutOfRange reports that the matched number exceeded 100 and was
	// clamped. Callers should treat this as a warning.
	OutOfRange bool
}

// Extract scans free-form analysis text for a quality score. The numeric
// "Score: NN" form wins; a "[n/5⭐]" star rating is rescaled to 0-100 as a
// fallback. Extraction is a pure function of the input.
func Extract(analysis string) Extraction {
	if m := numericRe.FindStringSubmatch(analysis); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return clamp(n)
		}
	}
	if m := starRe.FindStringSubmatch(analysis); m != nil {
		stars, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return clamp(int(math.Round(stars / 5 * 100)))
		}
	}
	return Extraction{}
}

func clamp(n int) Extraction {
	if n > 100 {
		return Extraction{Score: 100, Found: true, OutOfRange: true}
	}
	return Extraction{Score: n, Found: true}
}
