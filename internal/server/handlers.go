package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sublearn/sublearn/internal/pipeline"
	"github.com/sublearn/sublearn/internal/quiz"
	"github.com/sublearn/sublearn/internal/transcribe"
	"github.com/sublearn/sublearn/internal/translate"
	"github.com/sublearn/sublearn/internal/user"
)

// Handler carries the collaborators behind the HTTP API.
type Handler struct {
	users        *user.Service
	orchestrator *pipeline.Orchestrator
	quizzes      *quiz.Generator

	defaultTranscriber transcribe.Name
	defaultTranslator  translate.Name
	quizQuestionCount  int
	logger             *slog.Logger
}

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	Users              *user.Service
	Orchestrator       *pipeline.Orchestrator
	Quizzes            *quiz.Generator
	DefaultTranscriber transcribe.Name
	DefaultTranslator  translate.Name
	QuizQuestionCount  int
}

// NewHandler creates the API handler set.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		users:              cfg.Users,
		orchestrator:       cfg.Orchestrator,
		quizzes:            cfg.Quizzes,
		defaultTranscriber: cfg.DefaultTranscriber,
		defaultTranslator:  cfg.DefaultTranslator,
		quizQuestionCount:  cfg.QuizQuestionCount,
		logger:             slog.Default(),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// Login authenticates a user and returns a session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	usr, token, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		jsonError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	resp := loginResponse{Token: token}
	resp.User.ID = usr.ID
	resp.User.Name = usr.Name
	resp.User.Email = usr.Email
	jsonResponse(w, resp, http.StatusOK)
}

type processChunkRequest struct {
	VideoPath           string  `json:"video_path"`
	StartTime           float64 `json:"start_time"`
	EndTime             float64 `json:"end_time"`
	TranscriptionEngine string  `json:"transcription_engine,omitempty"`
	TranslationEngine   string  `json:"translation_engine,omitempty"`
}

type processChunkResponse struct {
	TaskID string `json:"task_id"`
}

// ProcessChunk accepts a chunk-processing request and runs the pipeline in
// the background. The caller polls the progress endpoint with the returned
// task id.
func (h *Handler) ProcessChunk(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req processChunkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pipelineReq := pipeline.Request{
		Chunk: pipeline.Chunk{
			VideoPath: req.VideoPath,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		},
		UserID:              sess.UserID,
		SessionToken:        sess.Token,
		TranscriptionEngine: h.defaultTranscriber,
		TranslationEngine:   h.defaultTranslator,
	}
	if req.TranscriptionEngine != "" {
		pipelineReq.TranscriptionEngine = transcribe.Name(req.TranscriptionEngine)
	}
	if req.TranslationEngine != "" {
		pipelineReq.TranslationEngine = translate.Name(req.TranslationEngine)
	}
	if err := pipelineReq.Chunk.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	taskID := uuid.New().String()
	go func() {
		// Detached from the request context so the pipeline outlives the
		// HTTP exchange.
		if err := h.orchestrator.ProcessChunk(context.Background(), taskID, pipelineReq); err != nil {
			h.logger.Error("chunk processing failed", "task_id", taskID, "error", err)
		}
	}()

	jsonResponse(w, processChunkResponse{TaskID: taskID}, http.StatusAccepted)
}

// ChunkProgress returns the progress record for a task.
func (h *Handler) ChunkProgress(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		jsonError(w, "missing task ID", http.StatusBadRequest)
		return
	}

	progress, ok := h.orchestrator.Progress(taskID)
	if !ok {
		jsonError(w, "task not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, progress, http.StatusOK)
}

type startQuizRequest struct {
	Language      string   `json:"language"`
	NumQuestions  int      `json:"num_questions,omitempty"`
	QuestionTypes []string `json:"question_types,omitempty"`
}

// StartQuiz creates a quiz session from the user's due vocabulary.
func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req startQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		jsonError(w, "language is required", http.StatusBadRequest)
		return
	}

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = h.quizQuestionCount
	}
	var types []quiz.QuestionType
	for _, name := range req.QuestionTypes {
		types = append(types, quiz.QuestionType(name))
	}

	quizSession, err := h.quizzes.GenerateSession(r.Context(), sess.UserID, req.Language, numQuestions, types)
	if err != nil {
		h.logger.Error("failed to generate quiz session", "user_id", sess.UserID, "error", err)
		jsonError(w, "failed to generate quiz", http.StatusInternalServerError)
		return
	}
	jsonResponse(w, quizSession, http.StatusCreated)
}

// QuizSession returns a quiz session owned by the caller.
func (h *Handler) QuizSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	quizSession, err := h.quizzes.Session(r.Context(), sessionID)
	if errors.Is(err, quiz.ErrSessionNotFound) {
		jsonError(w, "quiz session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		jsonError(w, "failed to load quiz session", http.StatusInternalServerError)
		return
	}
	if quizSession.UserID != sess.UserID {
		jsonError(w, "quiz session not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, quizSession, http.StatusOK)
}

type submitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	Quality    int    `json:"quality"`
}

// SubmitAnswer grades one quiz answer and feeds the result into the
// spaced-repetition scheduler.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	quizSession, err := h.quizzes.Session(r.Context(), sessionID)
	if errors.Is(err, quiz.ErrSessionNotFound) || (err == nil && quizSession.UserID != sess.UserID) {
		jsonError(w, "quiz session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		jsonError(w, "failed to load quiz session", http.StatusInternalServerError)
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.quizzes.SubmitAnswer(r.Context(), sessionID, req.QuestionID, req.Answer, req.Quality)
	switch {
	case errors.Is(err, quiz.ErrQuestionNotFound):
		jsonError(w, "question not found", http.StatusNotFound)
		return
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		jsonError(w, "question already answered", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("failed to submit quiz answer", "session_id", sessionID, "error", err)
		jsonError(w, "failed to submit answer", http.StatusInternalServerError)
		return
	}
	jsonResponse(w, result, http.StatusOK)
}

func jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	jsonResponse(w, map[string]string{"error": msg}, status)
}
