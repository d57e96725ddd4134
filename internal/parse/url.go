package parse

import (
	"regexp"
	"strings"
)

var (
	schemedOrWWW = regexp.MustCompile(`(?i)(https?://|www\.)[^\s()\[\]{}]+`)
	bareDomain   = regexp.MustCompile(`\b[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}(?:[/?#][^\s()\[\]{}]*)?`)
)

// ParseURL finds the first URL-like token in a raw website cell and
// guarantees a scheme on the result. Bare "www." strings and naked
// domains default to HTTPS. Returns "" for blank or URL-free input.
func ParseURL(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	url := schemedOrWWW.FindString(text)
	if url == "" {
		// Second pass: domain-like tokens. Requiring a letter in the
		// TLD keeps floating-point numbers out.
		url = bareDomain.FindString(text)
		if url == "" {
			return ""
		}
	}

	url = strings.TrimRight(url, ".,")
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		url = "https://" + url
	}
	return url
}
