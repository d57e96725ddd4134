package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goexchange/domain/university"
	"goexchange/internal/parse"
)

// fakeRepo serves canned data and records search arguments.
type fakeRepo struct {
	universities []university.University
	requirements map[int64][]university.LanguageRequirement

	searchedExam  string
	searchedScore float64
}

func (f *fakeRepo) FindByBusinessKey(context.Context, string, string) (*university.University, error) {
	return nil, nil
}

func (f *fakeRepo) Insert(context.Context, *university.University) (int64, error) { return 0, nil }
func (f *fakeRepo) Update(context.Context, *university.University) error          { return nil }

func (f *fakeRepo) ReplaceLanguageRequirements(context.Context, int64, []university.LanguageRequirement) error {
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*university.University, error) {
	for _, u := range f.universities {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, errors.New("university not found")
}

func (f *fakeRepo) List(context.Context) ([]university.University, error) {
	return f.universities, nil
}

func (f *fakeRepo) RequirementsByUniversity(_ context.Context, id int64) ([]university.LanguageRequirement, error) {
	return f.requirements[id], nil
}

func (f *fakeRepo) AllRequirements(context.Context) ([]university.LanguageRequirement, error) {
	var out []university.LanguageRequirement
	for _, rows := range f.requirements {
		out = append(out, rows...)
	}
	return out, nil
}

func (f *fakeRepo) SearchByLanguage(_ context.Context, examType string, score float64) ([]university.University, error) {
	f.searchedExam = examType
	f.searchedScore = score
	return f.universities, nil
}

func newTestApp(repo *fakeRepo) *App {
	return NewApp(repo, parse.New(), zap.NewNop().Sugar())
}

func doGet(t *testing.T, app *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doGet(t, newTestApp(&fakeRepo{}), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListUniversities(t *testing.T) {
	repo := &fakeRepo{universities: []university.University{
		{ID: 1, NameKor: "하버드대", NameEng: "Harvard University", Nation: "미국"},
	}}
	rec := doGet(t, newTestApp(repo), "/api/universities")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []university.University
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Harvard University", out[0].NameEng)
}

func TestGetUniversity(t *testing.T) {
	repo := &fakeRepo{universities: []university.University{{ID: 7, NameEng: "Harvard University"}}}
	app := newTestApp(repo)

	rec := doGet(t, app, "/api/universities/7")
	require.Equal(t, http.StatusOK, rec.Code)

	var out university.University
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(7), out.ID)

	assert.Equal(t, http.StatusNotFound, doGet(t, app, "/api/universities/99").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/api/universities/abc").Code)
}

func TestGetRequirements(t *testing.T) {
	minScore := 80.0
	repo := &fakeRepo{requirements: map[int64][]university.LanguageRequirement{
		1: {{ID: 10, UniversityID: 1, ExamType: "TOEFL", MinScore: &minScore, IsAvailable: true}},
	}}
	rec := doGet(t, newTestApp(repo), "/api/universities/1/requirements")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []university.LanguageRequirement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "TOEFL", out[0].ExamType)
}

func TestSearchResolvesExamAliases(t *testing.T) {
	tests := []struct {
		param string
		exam  string
	}{
		{param: "TOEFL", exam: "TOEFL"},
		{param: "toefl", exam: "TOEFL"},
		{param: "ITP", exam: "TOEFL_ITP"},
		{param: "토익", exam: "TOEIC"},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			repo := &fakeRepo{}
			rec := doGet(t, newTestApp(repo), fmt.Sprintf("/api/search?exam=%s&score=85", tt.param))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.exam, repo.searchedExam)
			assert.Equal(t, 85.0, repo.searchedScore)
		})
	}
}

func TestSearchRejectsBadInput(t *testing.T) {
	app := newTestApp(&fakeRepo{})

	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/api/search?exam=GRE&score=300").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/api/search?exam=TOEFL&score=high").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, app, "/api/search?score=85").Code)
}

func TestReport(t *testing.T) {
	minScore := 80.0
	repo := &fakeRepo{
		universities: []university.University{{ID: 1}},
		requirements: map[int64][]university.LanguageRequirement{
			1: {{UniversityID: 1, ExamType: "TOEFL", MinScore: &minScore, IsAvailable: true}},
		},
	}
	rec := doGet(t, newTestApp(repo), "/api/report")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Universities int `json:"universities"`
		Requirements int `json:"requirements"`
		Exams        []struct {
			ExamType string  `json:"exam_type"`
			Min      float64 `json:"min"`
		} `json:"exams"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Universities)
	assert.Equal(t, 1, out.Requirements)
	require.Len(t, out.Exams, 1)
	assert.Equal(t, "TOEFL", out.Exams[0].ExamType)
	assert.Equal(t, 80.0, out.Exams[0].Min)
}
