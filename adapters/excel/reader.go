// Package excel reads university recruitment workbooks: merged-cell
// resolution, header detection across one or two header rows, and
// Korean column-name normalization.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"goexchange/domain/university"
	"goexchange/internal/errors"
	"goexchange/ports"
)

// Sheet names and header rows vary across file vintages; these keywords
// identify the main sheet and the header row.
var (
	mainSheetKeyword = "지원가능대학"
	headerKeywords   = []string{"대학명", "국가명", "프로그램", "구분", "일련번호"}
	// A second header row carries sub-labels like these.
	continuationKeywords = []string{"최소", "학점", "어학", "성적", "특이사항", "유의사항", "참고", "사항", "비고"}
)

// columnMapping normalizes the header spellings seen across vintages to
// stable field names. Comparison happens on the scrubbed, upper-cased
// header.
var columnMapping = map[string]string{
	"프로그램 구분":        "program_type",
	"구분":             "program_type",
	"기관":             "institution",
	"뱃지":             "institution",
	"BADGE":          "institution",
	"지역":             "region",
	"국가명":            "nation",
	"대학명(한글)":       "name_kor",
	"대학명(국문)":       "name_kor",
	"대학명(영문)":       "name_eng",
	"최소 학점":          "min_gpa",
	"지원 자격":          "min_gpa",
	"지원 자격 최소 학점":   "min_gpa",
	"어학성적":           "language_requirement",
	"특이사항":           "significant_note",
	"유의사항":           "remark",
	"비고":             "remark",
	"참고사항":           "remark_ref",
	"수학가능학과/영어강의목록 등": "available_majors",
	"수학가능학과":         "available_majors",
	"웹사이트":           "website_url",
	"웹사이트 주소":        "website_url",
	"교환학생수기 여부":      "review_raw",
	"수기여부":           "review_raw",
	"FACTSHEET 여부":   "review_raw",
}

var (
	headerScrub    = regexp.MustCompile(`\s+`)
	headerSpecials = regexp.MustCompile(`[^\w\s가-힣()/,]`)
	semesterRe     = regexp.MustCompile(`(\d{4})-?(\d)`)
	roundRe        = regexp.MustCompile(`(\d)차`)
)

// Reader extracts one workbook into a ports.Sheet.
type Reader struct {
	filePath string
}

// NewReader creates a reader for the given workbook path.
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath}
}

// Read opens the workbook, resolves merged cells, finds the header row,
// and returns normalized rows plus filename-derived metadata.
func (r *Reader) Read() (*ports.Sheet, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.ExtractError("workbook not found: " + r.filePath)
	}

	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := r.pickSheet(f)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if err := r.fanOutMergedCells(f, sheetName, rows); err != nil {
		return nil, err
	}

	headers, dataRows := r.splitHeader(rows)
	if headers == nil {
		return nil, errors.ExtractError("no header row found in " + filepath.Base(r.filePath))
	}
	headers = normalizeHeaders(headers, widest(dataRows))

	sheet := &ports.Sheet{
		Headers:  headers,
		Metadata: r.Metadata(),
	}
	for _, raw := range dataRows {
		row := ports.Row{}
		empty := true
		for i, header := range headers {
			value := ""
			if i < len(raw) {
				value = strings.TrimSpace(raw[i])
			}
			if value != "" {
				empty = false
			}
			// Later duplicate headers coalesce into the first column.
			if prev, ok := row[header]; ok && prev != "" {
				if value != "" && value != prev {
					row[header] = prev + " " + value
				}
				continue
			}
			row[header] = value
		}
		if !empty {
			sheet.Rows = append(sheet.Rows, row)
		}
	}
	return sheet, nil
}

// Metadata derives semester and recruitment round from the filename,
// e.g. "2024-1학기 2차 지원가능대학.xlsx" -> semester 2024-1, round 2차.
func (r *Reader) Metadata() university.FileMetadata {
	stem := strings.TrimSuffix(filepath.Base(r.filePath), filepath.Ext(r.filePath))
	md := university.FileMetadata{Filename: filepath.Base(r.filePath)}
	if m := semesterRe.FindStringSubmatch(stem); m != nil {
		md.Semester = m[1] + "-" + m[2]
	}
	if m := roundRe.FindStringSubmatch(stem); m != nil {
		md.RecruitmentRound = m[1] + "차"
	}
	return md
}

func (r *Reader) pickSheet(f *excelize.File) string {
	names := f.GetSheetList()
	for _, name := range names {
		if strings.Contains(name, mainSheetKeyword) {
			return name
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return "Sheet1"
}

// fanOutMergedCells copies each merge range's top-left value into every
// covered cell so forward fills and header merges see complete rows.
func (r *Reader) fanOutMergedCells(f *excelize.File, sheetName string, rows [][]string) error {
	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return fmt.Errorf("failed to read merge ranges: %w", err)
	}
	for _, m := range merges {
		sc, sr, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			continue
		}
		ec, er, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			continue
		}
		value := m.GetCellValue()
		for row := sr; row <= er && row <= len(rows); row++ {
			for col := sc; col <= ec; col++ {
				for len(rows[row-1]) < col {
					rows[row-1] = append(rows[row-1], "")
				}
				rows[row-1][col-1] = value
			}
		}
	}
	return nil
}

// splitHeader locates the header row within the first ten rows and
// merges a continuation row when present.
func (r *Reader) splitHeader(rows [][]string) ([]string, [][]string) {
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		joined := strings.Join(rows[i], " ")
		if !containsAny(joined, headerKeywords) {
			continue
		}
		headers := rows[i]
		data := rows[i+1:]
		if len(data) > 0 && containsAny(strings.Join(data[0], " "), continuationKeywords) && !looksLikeData(data[0]) {
			headers = mergeHeaderRows(headers, data[0])
			data = data[1:]
		}
		return headers, data
	}
	return nil, nil
}

// looksLikeData guards against eating a real data row whose remark cell
// happens to contain a header keyword: data rows carry a university name
// column with long mixed content.
func looksLikeData(row []string) bool {
	filled := 0
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			filled++
		}
	}
	return filled > 6
}

func mergeHeaderRows(top, bottom []string) []string {
	n := len(top)
	if len(bottom) > n {
		n = len(bottom)
	}
	merged := make([]string, n)
	for i := 0; i < n; i++ {
		var t, b string
		if i < len(top) {
			t = strings.TrimSpace(top[i])
		}
		if i < len(bottom) {
			b = strings.TrimSpace(bottom[i])
		}
		if t != "" {
			merged[i] = t
		} else {
			merged[i] = b
		}
	}
	return merged
}

func normalizeHeaders(headers []string, width int) []string {
	for len(headers) < width {
		headers = append(headers, "")
	}
	out := make([]string, len(headers))
	for i, h := range headers {
		scrubbed := strings.ReplaceAll(h, "\n", " ")
		scrubbed = strings.ReplaceAll(scrubbed, "\r", " ")
		scrubbed = headerSpecials.ReplaceAllString(scrubbed, "")
		scrubbed = strings.TrimSpace(headerScrub.ReplaceAllString(scrubbed, " "))
		if scrubbed == "" {
			out[i] = fmt.Sprintf("unnamed_%d", i)
			continue
		}
		upper := strings.ToUpper(scrubbed)
		mapped := upper
		for key, target := range columnMapping {
			if upper == strings.ToUpper(key) {
				mapped = target
				break
			}
		}
		out[i] = mapped
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func widest(rows [][]string) int {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}
