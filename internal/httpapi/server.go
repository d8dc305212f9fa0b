// Package httpapi exposes the grader over HTTP: score a proposal, save a
// draft version, and read back the version history of a proposal.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"proposal_grader/internal/history"
	"proposal_grader/internal/report"
	"proposal_grader/internal/rubric"
	"proposal_grader/internal/workspace"
)

type App struct {
	router        *chi.Mux
	workspaceRoot string
}

func NewApp(workspaceRoot string) (*App, error) {
	root, err := workspace.EnsureAt(workspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("ensure workspace: %w", err)
	}

	app := &App{
		router:        chi.NewRouter(),
		workspaceRoot: root,
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app, nil
}

func (a *App) Handler() http.Handler { return a.router }

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Post("/api/score", a.handleScore)
	a.router.Post("/api/proposals/{title}/versions", a.handleSaveVersion)
	a.router.Get("/api/proposals/{title}/versions", a.handleListVersions)
	a.router.Get("/api/proposals/{title}/report", a.handleReport)
}

func titleParam(r *http.Request) string {
	raw := chi.URLParam(r, "title")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

type scoreRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScore grades the posted text and returns the full score breakdown.
// Nothing is persisted; use the versions endpoint to keep a draft.
func (a *App) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}

	score := rubric.Score(req.Text)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(score)
}

// handleSaveVersion stores the posted text as a new draft of the titled
// proposal, scores it, and writes the score report into the project dir.
func (a *App) handleSaveVersion(w http.ResponseWriter, r *http.Request) {
	title := titleParam(r)
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}

	project, err := workspace.CreateProject(a.workspaceRoot, title, "source.md", []byte(req.Text))
	if err != nil {
		http.Error(w, "Failed to open project", http.StatusInternalServerError)
		return
	}
	version, err := history.SaveVersion(project.HistoryPath, project.ID, title, req.Text)
	if err != nil {
		http.Error(w, "Failed to save version", http.StatusInternalServerError)
		return
	}

	score := rubric.Score(req.Text)
	summary := report.Build(title, req.Text, score)
	if err := report.SaveJSON(project.ReportPath, summary); err != nil {
		http.Error(w, "Failed to write report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"version": version,
		"score":   score,
	})
}

func (a *App) handleListVersions(w http.ResponseWriter, r *http.Request) {
	title := titleParam(r)
	project, err := workspace.CreateProject(a.workspaceRoot, title, "source.md", nil)
	if err != nil {
		http.Error(w, "Failed to open project", http.StatusInternalServerError)
		return
	}

	versions, err := history.ListVersions(project.HistoryPath, project.ID)
	if err != nil {
		http.Error(w, "Failed to load versions", http.StatusInternalServerError)
		return
	}
	if versions == nil {
		versions = []history.Version{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(versions)
}

// handleReport serves the last saved report, rendered as HTML when the
// client asks for it with ?format=html.
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	title := titleParam(r)
	project, err := workspace.CreateProject(a.workspaceRoot, title, "source.md", nil)
	if err != nil {
		http.Error(w, "Failed to open project", http.StatusInternalServerError)
		return
	}

	summary, err := report.LoadJSON(project.ReportPath)
	if err != nil {
		http.Error(w, "No report for this proposal", http.StatusNotFound)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		html, err := report.RenderHTML(report.Markdown(summary))
		if err != nil {
			http.Error(w, "Failed to render report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
