// Package parse is the text-to-structured-data extraction core. It turns
// free-form Korean/English spreadsheet cells into requirement records:
// exam thresholds, level codes, exclusion clauses, GPA pairs, and
// website strings.
//
// Every entry point is total. Malformed input yields empty or nil
// results, never an error; unknown exam labels are dropped silently.
// All lookup tables are built once and read-only afterwards, so a single
// Parser is safe for concurrent use across rows.
package parse

import "goexchange/domain/parsing"

// Parser bundles the pipeline stages behind one facade: normalizer,
// clause splitter, requirement extractor, exclusion detector, and
// assembler, all sharing the same immutable tables.
type Parser struct {
	aliases    *AliasTable
	standards  *Standards
	extractor  *Extractor
	exclusions *ExclusionDetector
	assembler  *Assembler
}

// New builds a Parser over the default alias and standards tables.
func New() *Parser {
	aliases := NewAliasTable()
	standards := NewStandards()
	return &Parser{
		aliases:    aliases,
		standards:  standards,
		extractor:  NewExtractor(aliases, standards),
		exclusions: NewExclusionDetector(aliases),
		assembler:  NewAssembler(aliases),
	}
}

// ParseLanguageRequirements parses a language-requirement cell in the
// context of the row's region. Blank input and explicit waivers come
// back with IsOptional set and no requirements. Exclusions written
// inline in the requirement text itself ("TOEIC 제외") are applied here;
// exclusions from the separate note field are merged later via
// AssembleWithExclusions.
func (p *Parser) ParseLanguageRequirements(text, region string) parsing.RequirementSet {
	normalized, ok := Normalize(text)
	if !ok {
		return parsing.RequirementSet{IsOptional: true}
	}

	set := parsing.RequirementSet{RawText: normalized}
	if p.extractor.IsOptional(normalized) {
		set.IsOptional = true
		return set
	}

	inline := p.exclusions.Detect(normalized)
	candidates := p.extractor.Extract(normalized, region, inline)
	set.Requirements = p.assembler.Merge(candidates, inline)
	return set
}

// ParseExclusions scans an auxiliary note field for negated exam
// mentions and returns the excluded canonical codes.
func (p *Parser) ParseExclusions(note string) map[string]bool {
	normalized, ok := Normalize(note)
	if !ok {
		return map[string]bool{}
	}
	return p.exclusions.Detect(normalized)
}

// AssembleWithExclusions merges note-derived exclusions into an already
// parsed requirement set, flipping availability and synthesizing records
// for exams that were only ever mentioned as disallowed.
func (p *Parser) AssembleWithExclusions(set parsing.RequirementSet, excluded map[string]bool) []parsing.Requirement {
	return p.assembler.Merge(set.Requirements, excluded)
}

// ParseGPA extracts a score/scale pair from a raw GPA cell.
func (p *Parser) ParseGPA(text string) *parsing.GPA {
	return ParseGPA(text)
}

// ParseURL normalizes a raw website cell to a schemed URL, or "".
func (p *Parser) ParseURL(text string) string {
	return ParseURL(text)
}

// ParseReview reads the review-availability column.
func (p *Parser) ParseReview(text string) parsing.Review {
	return ParseReview(text)
}

// Aliases exposes the read-only alias table for collaborators that need
// canonical-code resolution (the loader, reports).
func (p *Parser) Aliases() *AliasTable {
	return p.aliases
}
