// Package region supplies the nation -> region backfill used when a file
// vintage leaves the region column unclassified. The table mirrors the
// reference sheet of the newer vintage.
package region

// StaticLookup is an in-memory nation -> region table. Read-only after
// construction; safe for concurrent use.
type StaticLookup struct {
	byNation map[string]string
}

// NewStaticLookup builds the default table.
func NewStaticLookup() *StaticLookup {
	return &StaticLookup{byNation: map[string]string{
		"미국":     "북미",
		"캐나다":    "북미",
		"멕시코":    "북미",
		"독일":     "유럽",
		"영국":     "유럽",
		"터키":     "유럽",
		"프랑스":    "유럽",
		"스페인":    "유럽",
		"이탈리아":   "유럽",
		"네덜란드":   "유럽",
		"스위스":    "유럽",
		"오스트리아":  "유럽",
		"체코":     "유럽",
		"폴란드":    "유럽",
		"헝가리":    "유럽",
		"스웨덴":    "유럽",
		"노르웨이":   "유럽",
		"덴마크":    "유럽",
		"핀란드":    "유럽",
		"벨기에":    "유럽",
		"일본":     "아시아",
		"중국":     "아시아",
		"대만":     "아시아",
		"키르기즈스탄": "아시아",
		"싱가포르":   "아시아",
		"말레이시아":  "아시아",
		"인도네시아":  "아시아",
		"베트남":    "아시아",
		"태국":     "아시아",
		"호주":     "오세아니아",
		"브라질":    "남미",
		"칠레":     "남미",
	}}
}

// Region returns the region for a nation, or false when untracked.
func (l *StaticLookup) Region(nation string) (string, bool) {
	region, ok := l.byNation[nation]
	return region, ok
}
