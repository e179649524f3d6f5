package mealplan

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cancercare-companion/internal/agent"
	"cancercare-companion/internal/platform/httpx"
	"cancercare-companion/internal/prompt"
	"cancercare-companion/internal/session"
)

const downloadFileName = "cancer_friendly_meal_plan.txt"

type Handler struct {
	gateway *agent.Gateway
}

func NewHandler(gateway *agent.Gateway) *Handler {
	return &Handler{gateway: gateway}
}

// Generate builds a 7-day plan from the submitted preferences and caches the
// result in the session so it can be downloaded or exported afterwards.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var prefs prompt.MealPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request")
		return
	}
	if prefs.Budget == "" {
		httpx.Error(w, http.StatusBadRequest, "budget is required")
		return
	}
	if len(prefs.TastePreferences) == 0 {
		prefs.TastePreferences = []string{"All"}
	}

	reply := h.gateway.Generate(r.Context(), prompt.MealPlan(prefs))
	if !reply.Failed() {
		s := session.FromContext(r.Context())
		s.Lock()
		s.MealPlan = reply.Text
		s.Unlock()
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"meal_plan": reply})
}

// Download serves the cached plan as a plain-text attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	plan := s.MealPlan
	s.Unlock()

	if plan == "" {
		httpx.Error(w, http.StatusNotFound, "no meal plan generated yet")
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadFileName))
	w.Write([]byte(plan))
}

// DownloadPDF serves the cached plan rendered as a PDF document.
func (h *Handler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	plan := s.MealPlan
	s.Unlock()

	if plan == "" {
		httpx.Error(w, http.StatusNotFound, "no meal plan generated yet")
		return
	}
	data, err := buildPDF(plan)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to build PDF: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cancer_friendly_meal_plan.pdf"`)
	w.Write(data)
}

// Guidelines serves the static nutrition and food-safety guidance shown next
// to the planner.
func (h *Handler) Guidelines(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"nutrition_guidelines": nutritionGuidelines,
		"preparation_tips":     preparationTips,
	})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/meal-plan", h.Generate)
	r.Get("/meal-plan/download", h.Download)
	r.Get("/meal-plan/download/pdf", h.DownloadPDF)
	r.Get("/meal-plan/guidelines", h.Guidelines)
}
