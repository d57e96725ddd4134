package parse

// Standard is one row of the institutional language-score table: a level
// code bundled with per-exam minimum thresholds.
type Standard struct {
	Category string
	Scores   []ExamScore
}

// ExamScore keeps the bundle ordered so expansion is deterministic.
type ExamScore struct {
	Exam  string
	Score float64
}

// Standards is the closed code -> bundle table plus the legacy-spelling
// aliases. Immutable after construction.
type Standards struct {
	byCode map[string]Standard
	order  []string
	legacy map[string]string
}

// NewStandards builds the 2024 institutional score table.
func NewStandards() *Standards {
	s := &Standards{
		byCode: map[string]Standard{},
		legacy: map[string]string{
			"A-1": "A1", "A-2": "A2", "A-3": "A3", "A-4": "A4", "A-5": "A5",
			"B-1": "B1", "B-2": "B2", "B-3": "B3",
			"C-1": "C1", "C-2": "C2",
			"D-1": "D1", "D-2": "D2", "D-3": "D3",
			"E-1": "E1", "E-2": "E2", "E-3": "E3",
		},
	}

	add := func(code, category string, scores ...ExamScore) {
		s.byCode[code] = Standard{Category: category, Scores: scores}
		s.order = append(s.order, code)
	}

	add("A1", GroupEnglish,
		ExamScore{ExamTOEFL, 85}, ExamScore{ExamIELTS, 6.5},
		ExamScore{ExamTOEIC, 900}, ExamScore{ExamTOEFLITP, 600})
	add("A2", GroupEnglish,
		ExamScore{ExamTOEFL, 80}, ExamScore{ExamIELTS, 6},
		ExamScore{ExamTOEIC, 850}, ExamScore{ExamTOEFLITP, 560})
	add("A3", GroupEnglish,
		ExamScore{ExamTOEFL, 75}, ExamScore{ExamIELTS, 5.5},
		ExamScore{ExamTOEIC, 800}, ExamScore{ExamTOEFLITP, 545})
	add("A4", GroupEnglish,
		ExamScore{ExamTOEFL, 70}, ExamScore{ExamIELTS, 5},
		ExamScore{ExamTOEIC, 750}, ExamScore{ExamTOEFLITP, 530})
	add("A5", GroupEnglish,
		ExamScore{ExamTOEFL, 60}, ExamScore{ExamIELTS, 4.5},
		ExamScore{ExamTOEIC, 700}, ExamScore{ExamTOEFLITP, 515})

	add("EU_A2", GroupEnglish,
		ExamScore{ExamTOEFL, 24}, ExamScore{ExamIELTS, 4.5}, ExamScore{ExamTOEIC, 225})
	add("EU_B1", GroupEnglish,
		ExamScore{ExamTOEFL, 44}, ExamScore{ExamIELTS, 5.5}, ExamScore{ExamTOEIC, 550})
	add("EU_B2", GroupEnglish,
		ExamScore{ExamTOEFL, 72}, ExamScore{ExamIELTS, 6}, ExamScore{ExamTOEIC, 785})
	add("EU_C1", GroupEnglish,
		ExamScore{ExamTOEFL, 95}, ExamScore{ExamIELTS, 7}, ExamScore{ExamTOEIC, 945})
	add("EU_C2", GroupEnglish,
		ExamScore{ExamTOEFL, 114}, ExamScore{ExamIELTS, 8})

	add("CN_B1", GroupChinese, ExamScore{ExamHSK, 6})
	add("CN_B2", GroupChinese, ExamScore{ExamHSK, 5})
	add("CN_B3", GroupChinese, ExamScore{ExamHSK, 4})

	add("JP_C1", GroupJapanese, ExamScore{ExamJLPT, 1}, ExamScore{ExamJPT, 900})
	add("JP_C2", GroupJapanese, ExamScore{ExamJLPT, 2}, ExamScore{ExamJPT, 600})

	add("D1", GroupFrench, ExamScore{ExamDELF, 2})
	add("D2", GroupFrench, ExamScore{ExamDELF, 1})
	add("D3", GroupFrench, ExamScore{ExamDELF, 0.5})

	add("E1", GroupGerman, ExamScore{ExamZD, 2})
	add("E2", GroupGerman, ExamScore{ExamZD, 1})
	add("E3", GroupGerman, ExamScore{ExamZD, 0.5})

	return s
}

// Lookup returns the bundle for a code, resolving legacy hyphenated
// spellings first.
func (s *Standards) Lookup(code string) (Standard, bool) {
	std, ok := s.byCode[s.Canonical(code)]
	return std, ok
}

// Canonical collapses legacy spellings like "A-4" to "A4". Unknown codes
// pass through unchanged.
func (s *Standards) Canonical(code string) string {
	if mapped, ok := s.legacy[code]; ok {
		return mapped
	}
	return code
}

// Has reports whether the (canonicalized) code is in the table.
func (s *Standards) Has(code string) bool {
	_, ok := s.byCode[s.Canonical(code)]
	return ok
}
