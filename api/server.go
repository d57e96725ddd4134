// Package api serves the read-only query surface over loaded exchange
// data.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"goexchange/internal/parse"
	"goexchange/internal/report"
	"goexchange/ports"
)

// App is the HTTP application.
type App struct {
	router *chi.Mux
	repo   ports.UniversityRepository
	parser *parse.Parser
	log    *zap.SugaredLogger
}

// NewApp wires routes and middleware.
func NewApp(repo ports.UniversityRepository, parser *parse.Parser, log *zap.SugaredLogger) *App {
	app := &App{
		router: chi.NewRouter(),
		repo:   repo,
		parser: parser,
		log:    log,
	}

	app.router.Use(middleware.RequestID)
	app.router.Use(middleware.RealIP)
	app.router.Use(middleware.Recoverer)
	app.router.Use(middleware.Timeout(30 * time.Second))

	app.router.Get("/health", app.handleHealth)
	app.router.Route("/api", func(r chi.Router) {
		r.Get("/universities", app.handleListUniversities)
		r.Get("/universities/{id}", app.handleGetUniversity)
		r.Get("/universities/{id}/requirements", app.handleGetRequirements)
		r.Get("/search", app.handleSearch)
		r.Get("/report", app.handleReport)
	})
	return app
}

// Router exposes the mux for the HTTP server.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleListUniversities(w http.ResponseWriter, r *http.Request) {
	universities, err := a.repo.List(r.Context())
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err)
		return
	}
	a.writeJSON(w, http.StatusOK, universities)
}

func (a *App) handleGetUniversity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}
	u, err := a.repo.GetByID(r.Context(), id)
	if err != nil {
		a.writeError(w, http.StatusNotFound, err)
		return
	}
	a.writeJSON(w, http.StatusOK, u)
}

func (a *App) handleGetRequirements(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}
	rows, err := a.repo.RequirementsByUniversity(r.Context(), id)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err)
		return
	}
	a.writeJSON(w, http.StatusOK, rows)
}

// handleSearch finds universities reachable with ?exam=&score=. The exam
// parameter accepts any alias spelling and resolves to the canonical
// code.
func (a *App) handleSearch(w http.ResponseWriter, r *http.Request) {
	examType, ok := a.parser.Aliases().Resolve(r.URL.Query().Get("exam"))
	if !ok {
		a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown exam"})
		return
	}
	score, err := strconv.ParseFloat(r.URL.Query().Get("score"), 64)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid score"})
		return
	}
	universities, err := a.repo.SearchByLanguage(r.Context(), examType, score)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err)
		return
	}
	a.writeJSON(w, http.StatusOK, universities)
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := report.Build(r.Context(), a.repo)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, err)
		return
	}
	a.writeJSON(w, http.StatusOK, rep)
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.log.Errorw("failed to encode response", "error", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, status int, err error) {
	a.log.Errorw("request failed", "status", status, "error", err)
	a.writeJSON(w, status, map[string]string{"error": err.Error()})
}
