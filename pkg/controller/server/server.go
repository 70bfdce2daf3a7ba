package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/forkrun/pkg/domain/interfaces"
	"github.com/secmon-lab/forkrun/pkg/domain/types"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"github.com/secmon-lab/forkrun/pkg/utils/errutil"
	"github.com/secmon-lab/forkrun/pkg/utils/logging"
)

type Server struct {
	uc  interfaces.UseCase
	mux *chi.Mux
}

func New(uc interfaces.UseCase) *Server {
	x := &Server{uc: uc}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/repos", func(r chi.Router) {
		r.Post("/fork", x.handleCreateFork)
		r.Post("/test", x.handleSubmitTestCase(false))
		r.Put("/test", x.handleSubmitTestCase(true))
		r.Delete("/", x.handleDeleteRepository)
		r.Post("/push-test", x.handlePushTest)
		r.Put("/update-workflow", x.handleUpdateWorkflow)
		r.Post("/sync-upstream", x.handleSyncUpstream)

		r.Post("/test-results", x.handleSubmitTestResults)
		r.Get("/test-results", x.handleFindTestResult)
		r.Get("/test-results/{filename}", x.handleGetTestResult)
	})

	x.mux = r
	return x
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"detail":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

// respondError maps the error taxonomy to HTTP status codes: validation
// failures to 400, missing local state to 404, upstream GitHub failures to
// 502 and a full push queue to 503. Anything else is a 500 and goes through
// the error reporter.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrValidationFailed),
		errors.Is(err, types.ErrInvalidOption),
		errors.Is(err, repository.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, types.ErrGitHubAPI):
		code = http.StatusBadGateway
	case errors.Is(err, types.ErrQueueFull):
		code = http.StatusServiceUnavailable
	}

	if code == http.StatusInternalServerError {
		errutil.HandleError(ctx, "request failed", err)
	} else {
		logging.From(ctx).Warn("request rejected",
			slog.Int("status_code", code),
			slog.Any("error", err),
		)
	}

	respondJSON(w, code, map[string]string{"detail": err.Error()})
}
