package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
)

// handleSubmitTestResults ingests a test report posted by a CI run.
func (x *Server) handleSubmitTestResults(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RepoURL        string          `json:"repo_url"`
		Org            string          `json:"org"`
		WorkflowRunID  string          `json:"workflow_run_id"`
		WorkflowRunURL string          `json:"workflow_run_url"`
		TestResults    json.RawMessage `json:"test_results"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	original, err := model.ParseRepoURL(req.RepoURL)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	filename, err := x.uc.InsertTestReport(r.Context(), &model.TestReport{
		RepoURL:        req.RepoURL,
		RepoFullName:   original.FullName(),
		Org:            model.NormalizeOrg(req.Org),
		WorkflowRunID:  req.WorkflowRunID,
		WorkflowRunURL: req.WorkflowRunURL,
		TestResults:    req.TestResults,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"message":        "Test results received",
		"filename":       filename,
		"repo_full_name": original.FullName(),
	})
}

func (x *Server) handleFindTestResult(w http.ResponseWriter, r *http.Request) {
	repoURL := r.URL.Query().Get("repo_url")
	if repoURL == "" {
		respondError(r.Context(), w, goerr.Wrap(types.ErrValidationFailed,
			"repo_url query parameter is required"))
		return
	}

	found, err := x.uc.FindTestReport(r.Context(), repoURL, r.URL.Query().Get("org"))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"filename": found.Filename,
		"data":     found.Report,
	})
}

func (x *Server) handleGetTestResult(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	report, err := x.uc.GetTestReport(r.Context(), filename)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"filename": filename,
		"data":     report,
	})
}
