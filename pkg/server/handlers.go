package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/errors"
)

// maxRequestBodyBytes bounds the summarize request body.
const maxRequestBodyBytes = 64 * 1024

type summarizeRequest struct {
	GitHubURL string `json:"github_url"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, errors.ValidationError("request body must be JSON with a github_url field", err))
		return
	}
	req.GitHubURL = strings.TrimSpace(req.GitHubURL)
	if req.GitHubURL == "" {
		writeError(w, errors.ValidationError("github_url is required", nil))
		return
	}

	out, err := s.svc.Summarize(r.Context(), req.GitHubURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps typed errors to their HTTP status. The message comes
// from errors.Message so untyped internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.HTTPStatus(err), errorResponse{
		Status:  "error",
		Message: errors.Message(err),
	})
}
