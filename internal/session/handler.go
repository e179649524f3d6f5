package session

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cancercare-companion/internal/platform/httpx"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

type setPageRequest struct {
	Page Page `json:"page"`
}

// GetState renders the navigation state and summary counters for the current
// session.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	s := FromContext(r.Context())
	s.Lock()
	defer s.Unlock()

	httpx.JSON(w, http.StatusOK, map[string]any{
		"session_id":    s.ID,
		"current_page":  s.CurrentPage,
		"created_at":    s.CreatedAt,
		"follow_ups":    s.FollowUps.Len(),
		"reminders":     len(s.Reminders),
		"chat_messages": len(s.Chat),
		"quiz_started":  s.Quiz.Started(),
		"has_profile":   s.Profile != nil,
		"has_meal_plan": s.MealPlan != "",
	})
}

// SetPage mutates the current-page key, i.e. the navigation shell.
func (h *Handler) SetPage(w http.ResponseWriter, r *http.Request) {
	var req setPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !ValidPage(req.Page) {
		httpx.Error(w, http.StatusBadRequest, "unknown page: "+string(req.Page))
		return
	}

	s := FromContext(r.Context())
	s.Lock()
	s.CurrentPage = req.Page
	s.Unlock()

	httpx.JSON(w, http.StatusOK, map[string]any{"current_page": req.Page})
}

// ListPages renders the persistent navigation menu.
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"pages": PageTitles})
}

// EndSession discards all session state and expires the cookie.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	s := FromContext(r.Context())
	h.manager.End(s.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "session ended"})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/session", h.GetState)
	r.Delete("/session", h.EndSession)
	r.Post("/session/page", h.SetPage)
	r.Get("/pages", h.ListPages)
}
