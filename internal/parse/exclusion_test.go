package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectExclusions(t *testing.T) {
	d := NewExclusionDetector(NewAliasTable())

	tests := []struct {
		name string
		note string
		want []string
	}{
		{
			name: "single exam",
			note: "ITP 제외",
			want: []string{ExamTOEFLITP},
		},
		{
			name: "comma list",
			note: "TOEIC, ITP 제외",
			want: []string{ExamTOEIC, ExamTOEFLITP},
		},
		{
			name: "slash list with multi-word exam",
			note: "TOEIC/TOEFL ITP 제외",
			want: []string{ExamTOEIC, ExamTOEFLITP},
		},
		{
			name: "bullet with 불가",
			note: "* TOEIC 불가",
			want: []string{ExamTOEIC},
		},
		{
			name: "paren list after acceptance",
			note: "* TOEFL만 인정(IELTS, TOEIC 제외)",
			want: []string{ExamIELTS, ExamTOEIC},
		},
		{
			name: "newline bullets",
			note: "- ITP 제외\n- DUOLINGO 불가",
			want: []string{ExamTOEFLITP, ExamDuolingo},
		},
		{
			name: "unknown variant is a no-op",
			note: "TOEFL Home Edition 제외",
			want: nil,
		},
		{
			name: "korean connective stops the scan",
			note: "기관 제출용 TOEIC 제외",
			want: []string{ExamTOEIC},
		},
		{
			name: "no keyword",
			note: "TOEFL 80 이상 필요",
			want: nil,
		},
		{
			name: "empty",
			note: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.note)
			assert.Len(t, got, len(tt.want))
			for _, exam := range tt.want {
				assert.True(t, got[exam], "expected %s excluded", exam)
			}
		})
	}
}

func TestDetectKoreanAliases(t *testing.T) {
	d := NewExclusionDetector(NewAliasTable())

	got := d.Detect("토익 제외")
	assert.True(t, got[ExamTOEIC])
	assert.Len(t, got, 1)
}
