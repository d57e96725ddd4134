package parse

import (
	"regexp"
	"strings"

	"goexchange/domain/parsing"
)

var reviewYear = regexp.MustCompile(`20\d{2}(?:\s*-\s*20\d{2})?`)

var reviewPositive = []string{"Y", "O", "YES", "TRUE", "AVAILABLE", "있음", "후기", "수기"}

// ParseReview reads the exchange-student review column: "Y(2018)",
// "2013-2019", "O", "X". A year implies availability; otherwise only an
// explicit positive marker counts.
func ParseReview(raw string) parsing.Review {
	text := strings.TrimSpace(raw)
	if text == "" {
		return parsing.Review{}
	}

	upper := strings.ToUpper(text)
	switch upper {
	case "X", "N", "NO", "NONE", "-":
		return parsing.Review{}
	}

	if year := reviewYear.FindString(text); year != "" {
		return parsing.Review{Available: true, Year: strings.ReplaceAll(year, " ", "")}
	}

	for _, keyword := range reviewPositive {
		if strings.HasPrefix(upper, keyword) {
			return parsing.Review{Available: true}
		}
	}
	return parsing.Review{}
}
