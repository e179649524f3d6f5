package support

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"cancercare-companion/internal/agent"
	"cancercare-companion/internal/platform/httpx"
	"cancercare-companion/internal/prompt"
	"cancercare-companion/internal/session"
)

type Handler struct {
	gateway *agent.Gateway
}

func NewHandler(gateway *agent.Gateway) *Handler {
	return &Handler{gateway: gateway}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat generates an empathetic reply to the user's message. The exchange is
// appended to the session-held history; a failed completion leaves the
// history with the user turn only.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		httpx.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	s := session.FromContext(r.Context())
	s.Lock()
	s.Chat = append(s.Chat, session.ChatMessage{
		Role: "user", Content: req.Message, Timestamp: time.Now(),
	})
	s.Unlock()

	reply := h.gateway.Generate(r.Context(), prompt.EmotionalSupport(req.Message))
	if !reply.Failed() {
		s.Lock()
		s.Chat = append(s.Chat, session.ChatMessage{
			Role: "assistant", Content: reply.Text, Timestamp: time.Now(),
		})
		s.Unlock()
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"response": reply})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	history := make([]session.ChatMessage, len(s.Chat))
	copy(history, s.Chat)
	s.Unlock()
	httpx.JSON(w, http.StatusOK, map[string]any{"history": history})
}

// Tools serves the static self-help exercises offered alongside the chat.
func (h *Handler) Tools(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"tools": supportTools})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/support/chat", h.Chat)
	r.Get("/support/history", h.History)
	r.Get("/support/tools", h.Tools)
}
