package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"goexchange/internal/errors"
)

func writeWorkbook(t *testing.T, name string, build func(f *excelize.File, sheet string)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "지원가능대학"
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	build(f, sheet)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func setRow(t *testing.T, f *excelize.File, sheet string, row int, values ...string) {
	t.Helper()
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
}

func TestReadNormalizesKoreanHeaders(t *testing.T) {
	path := writeWorkbook(t, "2024-1학기 2차 지원가능대학.xlsx", func(f *excelize.File, sheet string) {
		setRow(t, f, sheet, 1, "구분", "지역", "국가명", "대학명(한글)", "대학명(영문)", "어학성적", "최소 학점", "특이사항")
		setRow(t, f, sheet, 2, "일반교환", "북미", "미국", "하버드대", "Harvard University", "TOEFL 100", "3.0/4.5", "")
		setRow(t, f, sheet, 3, "일반교환", "북미", "미국", "MIT", "Massachusetts Institute of Technology", "A-2", "3.2/4.5", "TOEIC 제외")
	})

	sheet, err := NewReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"program_type", "region", "nation", "name_kor", "name_eng",
		"language_requirement", "min_gpa", "significant_note",
	}, sheet.Headers)

	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "하버드대", sheet.Rows[0]["name_kor"])
	assert.Equal(t, "TOEFL 100", sheet.Rows[0]["language_requirement"])
	assert.Equal(t, "TOEIC 제외", sheet.Rows[1]["significant_note"])

	assert.Equal(t, "2024-1", sheet.Metadata.Semester)
	assert.Equal(t, "2차", sheet.Metadata.RecruitmentRound)
}

func TestReadFansOutMergedCells(t *testing.T) {
	path := writeWorkbook(t, "2023-2학기 지원가능대학.xlsx", func(f *excelize.File, sheet string) {
		setRow(t, f, sheet, 1, "구분", "국가명", "대학명(한글)", "대학명(영문)")
		setRow(t, f, sheet, 2, "일반교환", "미국", "하버드대", "Harvard University")
		setRow(t, f, sheet, 3, "", "", "예일대", "Yale University")
		require.NoError(t, f.MergeCell(sheet, "A2", "A3"))
		require.NoError(t, f.MergeCell(sheet, "B2", "B3"))
	})

	sheet, err := NewReader(path).Read()
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "미국", sheet.Rows[1]["nation"])
	assert.Equal(t, "일반교환", sheet.Rows[1]["program_type"])
}

func TestReadMergesTwoRowHeader(t *testing.T) {
	path := writeWorkbook(t, "2022-1학기 지원가능대학.xlsx", func(f *excelize.File, sheet string) {
		setRow(t, f, sheet, 1, "구분", "국가명", "대학명(한글)", "대학명(영문)", "어학성적", "", "")
		setRow(t, f, sheet, 2, "", "", "", "", "", "최소 학점", "특이사항")
		setRow(t, f, sheet, 3, "일반교환", "미국", "하버드대", "Harvard University", "TOEFL 100", "3.0 이상", "")
	})

	sheet, err := NewReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"program_type", "nation", "name_kor", "name_eng",
		"language_requirement", "min_gpa", "significant_note",
	}, sheet.Headers)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "3.0 이상", sheet.Rows[0]["min_gpa"])
}

func TestReadPicksMainSheetByKeyword(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "안내"))
	_, err := f.NewSheet("2024 지원가능대학")
	require.NoError(t, err)

	setRow(t, f, "안내", 1, "이 파일은 목록입니다")
	setRow(t, f, "2024 지원가능대학", 1, "구분", "국가명", "대학명(한글)", "대학명(영문)")
	setRow(t, f, "2024 지원가능대학", 2, "일반교환", "미국", "하버드대", "Harvard University")

	path := filepath.Join(t.TempDir(), "2024-1 지원가능대학.xlsx")
	require.NoError(t, f.SaveAs(path))

	sheet, err := NewReader(path).Read()
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "하버드대", sheet.Rows[0]["name_kor"])
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "없는파일.xlsx")).Read()
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.CodeExtractError, appErr.Code)
}

func TestMetadataFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		semester string
		round    string
	}{
		{name: "semester and round", filename: "2024-1학기 2차 지원가능대학.xlsx", semester: "2024-1", round: "2차"},
		{name: "semester only", filename: "2023-2학기 지원가능대학.xlsx", semester: "2023-2"},
		{name: "compact semester", filename: "20241 목록.xlsx", semester: "2024-1"},
		{name: "no match", filename: "목록.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := NewReader(tt.filename).Metadata()
			assert.Equal(t, tt.semester, md.Semester)
			assert.Equal(t, tt.round, md.RecruitmentRound)
			assert.Equal(t, tt.filename, md.Filename)
		})
	}
}
