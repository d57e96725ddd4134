package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticLookup(t *testing.T) {
	l := NewStaticLookup()

	tests := []struct {
		nation string
		region string
		found  bool
	}{
		{nation: "미국", region: "북미", found: true},
		{nation: "프랑스", region: "유럽", found: true},
		{nation: "일본", region: "아시아", found: true},
		{nation: "칠레", region: "남미", found: true},
		{nation: "화성", found: false},
		{nation: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.nation, func(t *testing.T) {
			region, ok := l.Region(tt.nation)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.region, region)
		})
	}
}
