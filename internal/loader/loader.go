// Package loader turns cleaned rows into persisted universities and
// language requirements, upserting on the (name_eng, nation) business
// key and accumulating semesters across recruitment cycles.
package loader

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"goexchange/domain/university"
	"goexchange/internal/parse"
	"goexchange/ports"
)

// unclassifiedRegion is the placeholder some vintages put in the region
// column; it triggers the nation -> region backfill.
const unclassifiedRegion = "미분류"

// Loader orchestrates per-row parsing and persistence.
type Loader struct {
	repo    ports.UniversityRepository
	regions ports.RegionLookup
	parser  *parse.Parser
	log     *zap.SugaredLogger
}

// New wires a loader.
func New(repo ports.UniversityRepository, regions ports.RegionLookup, parser *parse.Parser, log *zap.SugaredLogger) *Loader {
	return &Loader{repo: repo, regions: regions, parser: parser, log: log}
}

// LoadSheet upserts every row of a cleaned sheet. Rows missing the
// business key are skipped, not fatal; a row yielding nothing is a
// legitimate outcome.
func (l *Loader) LoadSheet(ctx context.Context, rows []ports.Row, md university.FileMetadata) (university.LoadStats, error) {
	var stats university.LoadStats

	for _, row := range rows {
		nameKor := row["name_kor"]
		nameEng := row["name_eng"]
		nation := row["nation"]
		if nameKor == "" || nameEng == "" || nation == "" {
			stats.Skipped++
			continue
		}

		u, inserted, err := l.upsertUniversity(ctx, row, md, nameKor, nameEng, nation)
		if err != nil {
			return stats, err
		}
		if inserted {
			stats.Inserted++
		} else {
			stats.Updated++
		}

		n, err := l.loadRequirements(ctx, u, row)
		if err != nil {
			return stats, err
		}
		stats.LanguageReqs += n
	}
	return stats, nil
}

func (l *Loader) upsertUniversity(ctx context.Context, row ports.Row, md university.FileMetadata, nameKor, nameEng, nation string) (*university.University, bool, error) {
	region := row["region"]
	if region == "" || region == unclassifiedRegion {
		if mapped, ok := l.regions.Region(nation); ok {
			region = mapped
		} else if region == "" {
			region = unclassifiedRegion
		}
	}

	programType := row["program_type"]
	if programType == "" {
		programType = "일반교환"
	}

	review := l.parser.ParseReview(row["review_raw"])

	minGPA := 0.0
	if gpa := l.parser.ParseGPA(row["min_gpa"]); gpa != nil {
		minGPA = gpa.Score
	}

	remark := row["remark"]
	if ref := row["remark_ref"]; ref != "" {
		if remark != "" {
			remark = remark + "\n" + ref
		} else {
			remark = ref
		}
	}

	next := &university.University{
		Semester:        md.Semester,
		Region:          region,
		Nation:          nation,
		NameKor:         nameKor,
		NameEng:         nameEng,
		Badge:           row["institution"],
		MinGPA:          minGPA,
		SignificantNote: row["significant_note"],
		Remark:          remark,
		AvailableMajors: row["available_majors"],
		WebsiteURL:      l.parser.ParseURL(row["website_url"]),
		IsExchange:      strings.Contains(programType, "교환"),
		IsVisit:         strings.Contains(programType, "방문"),
		HasReview:       review.Available,
		ReviewYear:      review.Year,
	}

	existing, err := l.repo.FindByBusinessKey(ctx, nameEng, nation)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		id, err := l.repo.Insert(ctx, next)
		if err != nil {
			return nil, false, err
		}
		next.ID = id
		return next, true, nil
	}

	next.ID = existing.ID
	next.Semester = accumulateSemesters(existing.Semester, md.Semester)
	if err := l.repo.Update(ctx, next); err != nil {
		return nil, false, err
	}
	l.log.Debugw("updated university", "name_eng", nameEng, "nation", nation, "semester", next.Semester)
	return next, false, nil
}

func (l *Loader) loadRequirements(ctx context.Context, u *university.University, row ports.Row) (int, error) {
	text := row["language_requirement"]
	if text == "" {
		return 0, nil
	}

	set := l.parser.ParseLanguageRequirements(text, u.Region)
	if set.IsOptional {
		return 0, nil
	}

	excluded := l.parser.ParseExclusions(row["significant_note"])
	merged := l.parser.AssembleWithExclusions(set, excluded)
	if len(merged) == 0 {
		return 0, nil
	}

	rows := university.FromParsed(u.ID, merged)
	if err := l.repo.ReplaceLanguageRequirements(ctx, u.ID, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// accumulateSemesters adds the new semester to the stored comma list,
// keeping the list sorted newest first.
func accumulateSemesters(existing, next string) string {
	if next == "" {
		return existing
	}
	seen := map[string]bool{}
	var all []string
	for _, s := range strings.Split(existing, ", ") {
		if s = strings.TrimSpace(s); s != "" && !seen[s] {
			seen[s] = true
			all = append(all, s)
		}
	}
	if !seen[next] {
		all = append(all, next)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(all)))
	return strings.Join(all, ", ")
}
