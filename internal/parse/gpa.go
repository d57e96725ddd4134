package parse

import (
	"regexp"
	"strconv"

	"goexchange/domain/parsing"
)

var gpaPair = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)`)

// gpaTolerance forgives rounding slop like "4.51/4.5" in hand-typed
// cells without accepting genuinely inverted pairs.
const gpaTolerance = 0.05

// ParseGPA extracts a score/scale pair from a raw GPA cell. Surrounding
// text is tolerated. Returns nil, not an error, when no pair is found,
// the scale is non-positive, or the score exceeds the scale beyond the
// tolerance.
func ParseGPA(raw string) *parsing.GPA {
	m := gpaPair.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	scale, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil
	}
	if scale <= 0 || score > scale+gpaTolerance {
		return nil
	}
	if score > scale {
		score = scale
	}
	return &parsing.GPA{Score: score, Scale: scale}
}
