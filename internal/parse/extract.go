package parse

import (
	"regexp"
	"strconv"
	"strings"

	"goexchange/domain/parsing"
)

// scoreRule is one declarative exam+score matcher. Rules run in the
// fixed order below; the first group captures the score token.
type scoreRule struct {
	re      *regexp.Regexp
	exam    string
	convert func(string) (float64, bool)
	// keepLevel marks CEFR-graded exams whose matched level string is
	// recorded as the level code (DELF B2 -> level "B2").
	keepLevel bool
}

func numericScore(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func cefrScore(raw string) (float64, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "A1":
		return 0.25, true
	case "A2":
		return 0.5, true
	case "B1":
		return 1, true
	case "B2":
		return 2, true
	case "C1":
		return 3, true
	case "C2":
		return 4, true
	}
	return 0, false
}

var optionalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`어학\s*성적?\s*없음`),
	regexp.MustCompile(`면제`),
	regexp.MustCompile(`불필요`),
	regexp.MustCompile(`\bN/?A\b`),
	regexp.MustCompile(`선택\s*가능`),
}

// Extractor turns clauses into requirement candidates. Pure and
// safe for concurrent use; all tables are read-only.
type Extractor struct {
	aliases   *AliasTable
	standards *Standards
	rules     []scoreRule
}

// NewExtractor wires the default rule set over the given tables.
func NewExtractor(aliases *AliasTable, standards *Standards) *Extractor {
	return &Extractor{
		aliases:   aliases,
		standards: standards,
		rules: []scoreRule{
			{re: regexp.MustCompile(`TOEFL\s*(?:ITP|PBT)\s*([\d,]+)`), exam: ExamTOEFLITP, convert: numericScore},
			{re: regexp.MustCompile(`TOEFL\s*(?:\(?IBT\)?)?\s*([\d,]+)`), exam: ExamTOEFL, convert: numericScore},
			{re: regexp.MustCompile(`토플\s*(?:IBT)?\s*([\d,]+)`), exam: ExamTOEFL, convert: numericScore},
			{re: regexp.MustCompile(`TOEIC\s*([\d,]+)`), exam: ExamTOEIC, convert: numericScore},
			{re: regexp.MustCompile(`토익\s*([\d,]+)`), exam: ExamTOEIC, convert: numericScore},
			{re: regexp.MustCompile(`(?:IELTS|ITELTS|IETS)\s*(\d+(?:\.\d+)?)`), exam: ExamIELTS, convert: numericScore},
			{re: regexp.MustCompile(`아이엘츠\s*(\d+(?:\.\d+)?)`), exam: ExamIELTS, convert: numericScore},
			{re: regexp.MustCompile(`DUOLINGO\s*(\d+)`), exam: ExamDuolingo, convert: numericScore},
			{re: regexp.MustCompile(`듀오링고\s*(\d+)`), exam: ExamDuolingo, convert: numericScore},
			{re: regexp.MustCompile(`신?HSK\s*(\d)\s*급?`), exam: ExamHSK, convert: numericScore},
			{re: regexp.MustCompile(`JLPT\s*N?\s*(\d)`), exam: ExamJLPT, convert: numericScore},
			{re: regexp.MustCompile(`JPT\s*([\d,]+)`), exam: ExamJPT, convert: numericScore},
			{re: regexp.MustCompile(`DELF\s*([A-C][1-2])`), exam: ExamDELF, convert: cefrScore, keepLevel: true},
			{re: regexp.MustCompile(`ZD\s*([A-C][1-2])`), exam: ExamZD, convert: cefrScore, keepLevel: true},
			{re: regexp.MustCompile(`TOPIK\s*(\d)\s*급?`), exam: ExamTOPIK, convert: numericScore},
			{re: regexp.MustCompile(`토픽\s*(\d)\s*급?`), exam: ExamTOPIK, convert: numericScore},
		},
	}
}

var (
	explicitEUCode = regexp.MustCompile(`\bEU_[A-E][1-5]\b`)
	euPrefixedCode = regexp.MustCompile(`유럽(?:권)?\s*([A-E]-?[1-5])`)
	cnPrefixedCode = regexp.MustCompile(`중국(?:어)?(?:권)?\s*([A-E]-?[1-5])`)
	jpPrefixedCode = regexp.MustCompile(`일본(?:어)?(?:권)?\s*([A-E]-?[1-5])`)
	genericCode    = regexp.MustCompile(`\b[A-E]-?[1-5]\b`)
)

// ResolveStandardCodes extracts level codes from text, applying the
// region remapping rules: Europe prefixes EU_, Chinese context prefixes
// CN_ for B-grades, Japanese context prefixes JP_ for C-grades. Codes
// outside any region context stay generic. Order of first appearance is
// preserved; duplicates collapse.
func (e *Extractor) ResolveStandardCodes(text, region string) []string {
	upperRegion := strings.ToUpper(region)
	isEurope := strings.Contains(region, "유럽") || strings.Contains(upperRegion, "EUROPE") || strings.Contains(text, "유럽")
	isChinese := strings.Contains(region, "중국") || strings.Contains(region, "중화") || strings.Contains(upperRegion, "CHINA") || strings.Contains(text, "중국")
	isJapanese := strings.Contains(region, "일본") || strings.Contains(upperRegion, "JAPAN") || strings.Contains(text, "일본")

	var codes []string
	seen := map[string]bool{}
	push := func(code string) {
		code = e.standards.Canonical(code)
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	for _, m := range explicitEUCode.FindAllString(text, -1) {
		if e.standards.Has(m) {
			push(m)
		}
	}
	for _, rule := range []struct {
		re     *regexp.Regexp
		prefix string
	}{
		{euPrefixedCode, "EU_"},
		{cnPrefixedCode, "CN_"},
		{jpPrefixedCode, "JP_"},
	} {
		for _, m := range rule.re.FindAllStringSubmatch(text, -1) {
			code := rule.prefix + strings.ReplaceAll(m[1], "-", "")
			if e.standards.Has(code) {
				push(code)
			}
		}
	}

	for _, m := range genericCode.FindAllString(text, -1) {
		grade := strings.ReplaceAll(m, "-", "")
		switch grade[0] {
		case 'A':
			if isEurope && e.standards.Has("EU_"+grade) {
				push("EU_" + grade)
			} else if e.standards.Has(grade) {
				push(grade)
			}
		case 'B':
			switch {
			case isEurope && e.standards.Has("EU_"+grade):
				push("EU_" + grade)
			case isChinese && e.standards.Has("CN_"+grade):
				push("CN_" + grade)
			default:
				push(grade)
			}
		case 'C':
			switch {
			case isEurope && e.standards.Has("EU_"+grade):
				push("EU_" + grade)
			case isJapanese && e.standards.Has("JP_"+grade):
				push("JP_" + grade)
			default:
				push(grade)
			}
		default: // D, E
			if e.standards.Has(grade) {
				push(grade)
			}
		}
	}

	return codes
}

// Extract parses one normalized field into ordered requirement
// candidates. Standard codes set the baseline; explicit exam+score
// mentions override the baseline for that exam. excluded exams are
// never added.
func (e *Extractor) Extract(normalized, region string, excluded map[string]bool) []parsing.Requirement {
	codes := e.ResolveStandardCodes(normalized, region)

	var order []string
	byExam := map[string]*parsing.Requirement{}
	add := func(req parsing.Requirement) *parsing.Requirement {
		if existing, ok := byExam[req.ExamType]; ok {
			return existing
		}
		order = append(order, req.ExamType)
		byExam[req.ExamType] = &req
		return &req
	}

	// Baseline from standard-code bundles.
	for _, code := range codes {
		std, ok := e.standards.Lookup(code)
		if !ok {
			continue
		}
		for _, es := range std.Scores {
			if excluded[es.Exam] {
				continue
			}
			add(parsing.Requirement{
				LanguageGroup: std.Category,
				ExamType:      es.Exam,
				MinScore:      parsing.Score(es.Score),
				LevelCode:     code,
				IsAvailable:   true,
				Source:        parsing.SourceCode,
			})
		}
	}

	// Direct mentions, clause by clause, override the baseline.
	for _, clause := range SplitClauses(normalized) {
		for _, rule := range e.rules {
			for _, m := range rule.re.FindAllStringSubmatch(clause, -1) {
				if excluded[rule.exam] {
					continue
				}
				score, ok := rule.convert(m[1])
				if !ok {
					continue
				}
				group, ok := e.aliases.Group(rule.exam)
				if !ok {
					continue
				}
				if existing, found := byExam[rule.exam]; found {
					existing.MinScore = parsing.Score(score)
					existing.Source = parsing.SourceOverride
					continue
				}
				level := ""
				if rule.keepLevel {
					level = strings.ToUpper(m[1])
				} else {
					for _, code := range codes {
						if std, ok := e.standards.Lookup(code); ok && std.Category == group {
							level = code
							break
						}
					}
				}
				req := parsing.Requirement{
					LanguageGroup: group,
					ExamType:      rule.exam,
					MinScore:      parsing.Score(score),
					LevelCode:     level,
					IsAvailable:   true,
					Source:        parsing.SourceDirect,
				}
				order = append(order, req.ExamType)
				byExam[req.ExamType] = &req
			}
		}
	}

	out := make([]parsing.Requirement, 0, len(order))
	for _, exam := range order {
		out = append(out, *byExam[exam])
	}
	return out
}

// IsOptional reports whether the normalized text waives language scores
// entirely ("면제", "어학성적 없음"). Distinct from exclusion.
func (e *Extractor) IsOptional(normalized string) bool {
	for _, p := range optionalPatterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}
