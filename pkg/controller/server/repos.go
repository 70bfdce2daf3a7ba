package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/utils/safe"
)

// maxTestCaseSize caps the multipart upload of a test case document.
const maxTestCaseSize = 10 << 20

type repoRequest struct {
	RepoURL string `json:"repo_url"`
	Org     string `json:"org"`
}

func decodeJSONBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid JSON request body",
			goerr.V("cause", err.Error()),
		)
	}
	return nil
}

func (x *Server) handleCreateFork(w http.ResponseWriter, r *http.Request) {
	var req repoRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	record, err := x.uc.CreateFork(r.Context(), req.RepoURL, req.Org)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"data":   record,
	})
}

// handleSubmitTestCase accepts a multipart form with repo_url, org,
// tech_stack and the test_case_file upload. POST creates or replaces the
// test case; PUT requires one to exist already.
func (x *Server) handleSubmitTestCase(update bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxTestCaseSize); err != nil {
			respondError(r.Context(), w, goerr.Wrap(types.ErrValidationFailed,
				"invalid multipart form", goerr.V("cause", err.Error())))
			return
		}

		file, _, err := r.FormFile("test_case_file")
		if err != nil {
			respondError(r.Context(), w, goerr.Wrap(types.ErrValidationFailed,
				"test_case_file is required"))
			return
		}
		defer safe.Close(file)

		testCase, err := io.ReadAll(file)
		if err != nil {
			respondError(r.Context(), w, goerr.Wrap(err, "failed to read test case file"))
			return
		}

		result, err := x.uc.SubmitTestCase(r.Context(), &model.SubmitTestCaseInput{
			RepoURL:   r.FormValue("repo_url"),
			Org:       r.FormValue("org"),
			Framework: model.Framework(r.FormValue("tech_stack")),
			TestCase:  testCase,
			Update:    update,
		})
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"status":         "ok",
			"message":        "Test case saved. Pushing to GitHub in background.",
			"file_path":      result.FilePath,
			"repo_full_name": result.RepoFullName,
			"org":            result.Org,
			"tech_stack":     result.Framework,
		})
	}
}

func (x *Server) handleDeleteRepository(w http.ResponseWriter, r *http.Request) {
	var req struct {
		repoRequest
		DeleteFork bool `json:"delete_fork"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := x.uc.DeleteRepository(r.Context(), &model.DeleteRepositoryInput{
		RepoURL:    req.RepoURL,
		Org:        req.Org,
		DeleteFork: req.DeleteFork,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"data":   result,
	})
}

type pushRequest struct {
	RepoURL     string `json:"repo_url"`
	Org         string `json:"org"`
	TechStack   string `json:"tech_stack"`
	CallbackURL string `json:"callback_url"`
}

func (x *pushRequest) toInput() (*model.PushInput, error) {
	original, err := model.ParseRepoURL(x.RepoURL)
	if err != nil {
		return nil, err
	}
	return &model.PushInput{
		Original:    *original,
		Org:         x.Org,
		Framework:   model.Framework(x.TechStack),
		CallbackURL: x.CallbackURL,
	}, nil
}

// handlePushTest runs the push pipeline synchronously and returns its
// summary, unlike the background run a test-case submission enqueues.
func (x *Server) handlePushTest(w http.ResponseWriter, r *http.Request) {
	var req pushRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	summary, err := x.uc.PushTestAssets(r.Context(), input)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"data":   summary,
	})
}

func (x *Server) handleUpdateWorkflow(w http.ResponseWriter, r *http.Request) {
	var req pushRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	summary, err := x.uc.UpdateWorkflow(r.Context(), input)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"data":   summary,
	})
}

func (x *Server) handleSyncUpstream(w http.ResponseWriter, r *http.Request) {
	var req struct {
		repoRequest
		Branch string `json:"branch"`
	}
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	raw, err := x.uc.SyncUpstream(r.Context(), &model.SyncUpstreamInput{
		RepoURL: req.RepoURL,
		Org:     req.Org,
		Branch:  types.BranchName(req.Branch),
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"data":   json.RawMessage(raw),
	})
}
