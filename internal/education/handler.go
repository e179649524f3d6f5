// Package education serves the Learn & Quiz page: it drives the quiz engine
// through explicit transitions and decorates each answer with an educational
// insight from the completion gateway.
package education

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"cancercare-companion/internal/agent"
	"cancercare-companion/internal/platform/httpx"
	"cancercare-companion/internal/prompt"
	"cancercare-companion/internal/quiz"
	"cancercare-companion/internal/session"
)

// QuestionsPerQuiz questions are drawn from the catalog for each run.
const QuestionsPerQuiz = 5

type Handler struct {
	gateway *agent.Gateway
	catalog []quiz.Question
}

func NewHandler(gateway *agent.Gateway, catalog []quiz.Question) *Handler {
	return &Handler{gateway: gateway, catalog: catalog}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	defer s.Unlock()

	if err := s.Quiz.Start(h.catalog, QuestionsPerQuiz); err != nil {
		httpx.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, h.state(s.Quiz))
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	defer s.Unlock()
	httpx.JSON(w, http.StatusOK, h.state(s.Quiz))
}

type answerRequest struct {
	Option string `json:"option"`
}

// SubmitAnswer scores the selected option. The engine rejects a second
// submission for the same question; that surfaces as a conflict, and score
// and transcript stay untouched.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Option == "" {
		httpx.Error(w, http.StatusBadRequest, "option is required")
		return
	}

	s := session.FromContext(r.Context())
	s.Lock()
	question, err := s.Quiz.Current()
	if err == nil {
		_, err = s.Quiz.SubmitAnswer(req.Option)
	}
	var record quiz.AnswerRecord
	var score, total int
	if err == nil {
		transcript := s.Quiz.Transcript()
		record = transcript[len(transcript)-1]
		score = s.Quiz.Score()
		total = s.Quiz.Total()
	}
	s.Unlock()

	if err != nil {
		writeEngineError(w, err)
		return
	}

	// "Learn More": a brief insight on the question's topic.
	topic := strings.SplitN(question.Text, "?", 2)[0]
	insight := h.gateway.Generate(r.Context(), prompt.QuizInsight(topic))

	httpx.JSON(w, http.StatusOK, map[string]any{
		"correct":     record.IsCorrect,
		"selected":    record.Selected,
		"answer":      record.Correct,
		"explanation": question.Explanation,
		"score":       score,
		"total":       total,
		"insight":     insight,
	})
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	defer s.Unlock()

	if err := s.Quiz.Advance(); err != nil {
		writeEngineError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.state(s.Quiz))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	defer s.Unlock()

	s.Quiz.Reset()
	httpx.JSON(w, http.StatusOK, h.state(s.Quiz))
}

// state reflects the engine; it never drives transitions.
func (h *Handler) state(e *quiz.Engine) map[string]any {
	switch {
	case !e.Started():
		return map[string]any{
			"status":             "not_started",
			"questions_per_quiz": QuestionsPerQuiz,
		}
	case e.Completed():
		return map[string]any{
			"status":     "completed",
			"score":      e.Score(),
			"total":      e.Total(),
			"transcript": e.Transcript(),
		}
	default:
		question, _ := e.Current()
		return map[string]any{
			"status":           "in_progress",
			"question_number":  e.CurrentIndex() + 1,
			"total":            e.Total(),
			"score":            e.Score(),
			"question":         question.Text,
			"options":          question.Options,
			"awaiting_advance": e.AwaitingAdvance(),
		}
	}
}

func writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, quiz.ErrInvalidTransition) {
		httpx.Error(w, http.StatusConflict, err.Error())
		return
	}
	httpx.Error(w, http.StatusInternalServerError, err.Error())
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/quiz", h.GetState)
	r.Post("/quiz/start", h.Start)
	r.Post("/quiz/answer", h.SubmitAnswer)
	r.Post("/quiz/next", h.Advance)
	r.Post("/quiz/reset", h.Reset)
}
