package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReview(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		available bool
		year      string
	}{
		{name: "yes with year", raw: "Y(2018)", available: true, year: "2018"},
		{name: "year range", raw: "2013-2019", available: true, year: "2013-2019"},
		{name: "spaced year range", raw: "2013 - 2019", available: true, year: "2013-2019"},
		{name: "bare year", raw: "2017", available: true, year: "2017"},
		{name: "positive marker", raw: "O", available: true},
		{name: "korean marker", raw: "있음", available: true},
		{name: "negative x", raw: "X"},
		{name: "negative dash", raw: "-"},
		{name: "negative no", raw: "no"},
		{name: "unrelated text", raw: "문의 요망"},
		{name: "empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReview(tt.raw)
			assert.Equal(t, tt.available, got.Available)
			assert.Equal(t, tt.year, got.Year)
		})
	}
}
