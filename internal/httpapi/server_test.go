package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"proposal_grader/internal/history"
	"proposal_grader/internal/rubric"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(filepath.Join(t.TempDir(), "ProposalGrader"))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

func postJSON(t *testing.T, app *App, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestScoreEndpoint(t *testing.T) {
	app := newTestApp(t)
	rec := postJSON(t, app, "/api/score", map[string]string{
		"title": "Invoice Automation",
		"text":  "## Problem Statement\n\nThe finance team loses 40 hours per month.\n",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var score rubric.ProposalScore
	if err := json.Unmarshal(rec.Body.Bytes(), &score); err != nil {
		t.Fatalf("decode score: %v", err)
	}
	if score.TotalScore < 0 || score.TotalScore > 100 {
		t.Fatalf("total out of range: %d", score.TotalScore)
	}
	if len(score.Dimensions) != 4 {
		t.Fatalf("expected 4 dimensions, got %d", len(score.Dimensions))
	}
}

func TestScoreRejectsEmptyText(t *testing.T) {
	app := newTestApp(t)
	rec := postJSON(t, app, "/api/score", map[string]string{"title": "x", "text": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestVersionLifecycle(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{"Draft one.", "Draft two, revised."} {
		rec := postJSON(t, app, "/api/proposals/Invoice%20Automation/versions", map[string]string{"text": body})
		if rec.Code != http.StatusOK {
			t.Fatalf("save version: got %d: %s", rec.Code, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/proposals/Invoice%20Automation/versions", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list versions: got %d", rec.Code)
	}

	var versions []history.Version
	if err := json.Unmarshal(rec.Body.Bytes(), &versions); err != nil {
		t.Fatalf("decode versions: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(versions))
	}
	if versions[0].Body != "Draft one." {
		t.Fatalf("expected oldest first, got %q", versions[0].Body)
	}
}

func TestReportEndpoint(t *testing.T) {
	app := newTestApp(t)
	if rec := postJSON(t, app, "/api/proposals/Rollout/versions", map[string]string{"text": "## Problem Statement\n\nWe lose 12 hours weekly.\n"}); rec.Code != http.StatusOK {
		t.Fatalf("save version: got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/proposals/Rollout/report?format=html", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("report: got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "<h1>") {
		t.Fatalf("expected html report, got:\n%s", rec.Body.String())
	}

	missing := httptest.NewRequest(http.MethodGet, "/api/proposals/Unknown/report", nil)
	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, missing)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unsaved proposal, got %d", rec.Code)
	}
}
