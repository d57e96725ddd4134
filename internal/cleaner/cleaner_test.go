package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goexchange/ports"
)

func TestCleanForwardFill(t *testing.T) {
	c := New(nil)

	sheet := &ports.Sheet{Rows: []ports.Row{
		{"name_kor": "하버드대", "nation": "미국", "region": "북미", "program_type": "일반교환", "institution": "본교"},
		{"name_kor": "MIT", "nation": "", "region": "", "program_type": "", "institution": ""},
		{"name_kor": "옥스퍼드대", "nation": "영국", "region": "유럽", "program_type": "", "institution": ""},
	}}

	rows := c.Clean(sheet)
	require.Len(t, rows, 3)

	assert.Equal(t, "미국", rows[1]["nation"])
	assert.Equal(t, "북미", rows[1]["region"])
	assert.Equal(t, "일반교환", rows[1]["program_type"])
	assert.Equal(t, "본교", rows[1]["institution"])

	assert.Equal(t, "영국", rows[2]["nation"])
	assert.Equal(t, "유럽", rows[2]["region"])
}

func TestCleanDropsSummaryRows(t *testing.T) {
	c := New(nil)

	sheet := &ports.Sheet{Rows: []ports.Row{
		{"name_kor": "하버드대", "nation": "미국"},
		{"name_kor": "합계 120개교", "nation": "미국"},
		{"name_kor": "소계", "nation": "미국"},
		{"name_kor": "", "nation": ""},
	}}

	rows := c.Clean(sheet)
	require.Len(t, rows, 1)
	assert.Equal(t, "하버드대", rows[0]["name_kor"])
}

func TestCleanDropsExcludedInstitutions(t *testing.T) {
	c := New([]string{"SAF", "acuca"})

	sheet := &ports.Sheet{Rows: []ports.Row{
		{"name_kor": "하버드대", "nation": "미국", "institution": "본교"},
		{"name_kor": "기타대", "nation": "미국", "institution": "SAF"},
		{"name_kor": "또기타대", "nation": "미국", "institution": "ACUCA"},
	}}

	rows := c.Clean(sheet)
	require.Len(t, rows, 1)
	assert.Equal(t, "하버드대", rows[0]["name_kor"])
}

func TestCleanBlankRowsDoNotInheritFill(t *testing.T) {
	c := New(nil)

	sheet := &ports.Sheet{Rows: []ports.Row{
		{"name_kor": "하버드대", "nation": "미국", "region": "북미"},
		{"name_kor": "", "nation": "", "region": ""},
		{"name_kor": "MIT", "nation": "", "region": ""},
	}}

	rows := c.Clean(sheet)
	require.Len(t, rows, 2)
	assert.Equal(t, "하버드대", rows[0]["name_kor"])

	// The blank row is gone, but the fill chain still reaches later rows.
	assert.Equal(t, "MIT", rows[1]["name_kor"])
	assert.Equal(t, "미국", rows[1]["nation"])
	assert.Equal(t, "북미", rows[1]["region"])
}

func TestCleanScrubsCellsButKeepsLineBreaks(t *testing.T) {
	c := New(nil)

	sheet := &ports.Sheet{Rows: []ports.Row{
		{
			"name_kor":             "  하버드대  ",
			"nation":               "미국",
			"language_requirement": "TOEFL   80\nIELTS  6.0",
			"program_type":         "일반\n교환",
		},
	}}

	rows := c.Clean(sheet)
	require.Len(t, rows, 1)
	assert.Equal(t, "하버드대", rows[0]["name_kor"])
	assert.Equal(t, "TOEFL 80\nIELTS 6.0", rows[0]["language_requirement"])
	assert.Equal(t, "일반교환", rows[0]["program_type"])
}

func TestNormalizeGPA(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already scaled", raw: "3.0/4.5", want: "3.0/4.5"},
		{name: "floor gets default scale", raw: "3.0 이상", want: "3.0/4.5"},
		{name: "bare number gets default scale", raw: "3.2", want: "3.2/4.5"},
		{name: "free text unchanged", raw: "성적 제한 없음", want: "성적 제한 없음"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGPA(tt.raw))
		})
	}
}
