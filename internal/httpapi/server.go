package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/codebench-dev/backend/internal/catalog"
	"github.com/codebench-dev/backend/internal/results"
	"github.com/codebench-dev/backend/internal/submission"
)

// SubmitRequest is the body of POST /api/submit.
type SubmitRequest struct {
	Code       string `json:"code"`
	QuestionID int64  `json:"questionId"`
	Language   string `json:"language"`
}

type SubmitResponse struct {
	JobID string `json:"jobId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server is the REST surface over the submission pipeline. Submission
// failures are reported generically; internal detail stays in the logs.
type Server struct {
	submissions *submission.Service
	catalog     catalog.Store
	results     results.Store
	logger      *slog.Logger
}

func NewServer(
	submissions *submission.Service,
	catalogStore catalog.Store,
	resultStore results.Store,
	logger *slog.Logger,
) *Server {
	return &Server{
		submissions: submissions,
		catalog:     catalogStore,
		results:     resultStore,
		logger:      logger,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/submit", s.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/api/results/{jobId}", s.handleGetResult).Methods(http.MethodGet)
	r.HandleFunc("/api/questions", s.handleListQuestions).Methods(http.MethodGet)
	r.HandleFunc("/api/questions/{id}", s.handleGetQuestion).Methods(http.MethodGet)
	return r
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	jobID, err := s.submissions.Submit(r.Context(), req.Code, req.QuestionID, req.Language)
	if err != nil {
		s.logger.Error("submission failed",
			"questionId", req.QuestionID, "language", req.Language, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error processing submission"})
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{JobID: jobID})
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	res, err := s.results.Get(r.Context(), jobID)
	if errors.Is(err, results.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "result not found"})
		return
	}
	if err != nil {
		s.logger.Error("result lookup failed", "jobId", jobID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	language := languageParam(r)

	questions, err := s.catalog.Questions(r.Context(), language)
	if err != nil {
		s.logger.Error("question listing failed", "language", language, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	if questions == nil {
		questions = []catalog.Question{}
	}

	writeJSON(w, http.StatusOK, questions)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid question id"})
		return
	}
	language := languageParam(r)

	question, err := s.catalog.Question(r.Context(), id, language)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "question not found"})
		return
	}
	if err != nil {
		s.logger.Error("question lookup failed", "questionId", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func languageParam(r *http.Request) string {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = "java"
	}
	return language
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
