package patient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cancercare-companion/internal/followup"
	"cancercare-companion/internal/platform/charts"
	"cancercare-companion/internal/platform/httpx"
	"cancercare-companion/internal/prompt"
	"cancercare-companion/internal/session"
)

const dateLayout = "2006-01-02"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GenerateTreatmentPlan builds a treatment-plan prompt from the submitted
// profile, caches the profile in the session for later reuse, and returns
// the gateway reply.
func (h *Handler) GenerateTreatmentPlan(w http.ResponseWriter, r *http.Request) {
	var details prompt.PatientDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request")
		return
	}
	if details.Age <= 0 || details.Age > 120 {
		httpx.Error(w, http.StatusBadRequest, "age must be between 1 and 120")
		return
	}
	if details.CancerType == "" {
		httpx.Error(w, http.StatusBadRequest, "cancer_type is required")
		return
	}
	if details.Stage == "" {
		httpx.Error(w, http.StatusBadRequest, "stage is required")
		return
	}

	s := session.FromContext(r.Context())
	s.Lock()
	s.Profile = &details
	s.Unlock()

	reply := h.svc.GenerateTreatmentPlan(r.Context(), details)
	httpx.JSON(w, http.StatusOK, map[string]any{"plan": reply})
}

type supportRequest struct {
	Symptoms []string `json:"symptoms"`
}

// SupportRecommendations uses the session-cached profile plus the currently
// reported symptoms.
func (h *Handler) SupportRecommendations(w http.ResponseWriter, r *http.Request) {
	var req supportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request")
		return
	}
	if len(req.Symptoms) == 0 {
		httpx.Error(w, http.StatusBadRequest, "symptoms are required")
		return
	}

	s := session.FromContext(r.Context())
	s.Lock()
	var details prompt.PatientDetails
	if s.Profile != nil {
		details = *s.Profile
	}
	s.Unlock()

	reply := h.svc.SupportRecommendations(r.Context(), details, req.Symptoms)
	httpx.JSON(w, http.StatusOK, map[string]any{"recommendations": reply})
}

type followUpRequest struct {
	Date          string         `json:"date"`
	Weight        float64        `json:"weight"`
	BloodPressure string         `json:"blood_pressure"`
	Temperature   float64        `json:"temperature"`
	SymptomLevels map[string]int `json:"symptom_levels"`
	EnergyLevel   string         `json:"energy_level"`
	Appetite      string         `json:"appetite"`
	Mobility      string         `json:"mobility"`
	SleepQuality  string         `json:"sleep_quality"`
	Mood          string         `json:"mood"`
	Notes         string         `json:"notes"`
}

func (req *followUpRequest) validate() (followup.Record, error) {
	if req.Date == "" {
		return followup.Record{}, errors.New("date is required")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return followup.Record{}, fmt.Errorf("date must be formatted %s", dateLayout)
	}
	if req.Weight < 30 || req.Weight > 200 {
		return followup.Record{}, errors.New("weight must be between 30 and 200 kg")
	}
	if req.Temperature < 35 || req.Temperature > 42 {
		return followup.Record{}, errors.New("temperature must be between 35.0 and 42.0 °C")
	}
	for symptom, severity := range req.SymptomLevels {
		if severity < 0 || severity > 10 {
			return followup.Record{}, fmt.Errorf("severity for %q must be between 0 and 10", symptom)
		}
	}
	ordinals := map[string]string{
		"energy_level":  req.EnergyLevel,
		"appetite":      req.Appetite,
		"mobility":      req.Mobility,
		"sleep_quality": req.SleepQuality,
		"mood":          req.Mood,
	}
	for metric, value := range ordinals {
		if !contains(followup.Scales[metric], value) {
			return followup.Record{}, fmt.Errorf("%q is not a valid %s", value, metric)
		}
	}
	return followup.Record{
		Date:          date,
		Weight:        req.Weight,
		BloodPressure: req.BloodPressure,
		Temperature:   req.Temperature,
		SymptomLevels: req.SymptomLevels,
		EnergyLevel:   req.EnergyLevel,
		Appetite:      req.Appetite,
		Mobility:      req.Mobility,
		SleepQuality:  req.SleepQuality,
		Mood:          req.Mood,
		Notes:         req.Notes,
	}, nil
}

// RecordFollowUp appends a follow-up record to the session history. A blood
// pressure that does not parse is stored anyway (audit) and flagged in the
// response; it will be excluded from the blood-pressure series.
func (h *Handler) RecordFollowUp(w http.ResponseWriter, r *http.Request) {
	var req followUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request")
		return
	}
	record, err := req.validate()
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	_, _, bpErr := followup.ParseBloodPressure(record.BloodPressure)

	s := session.FromContext(r.Context())
	s.Lock()
	s.FollowUps.Append(record)
	total := s.FollowUps.Len()
	s.Unlock()

	resp := map[string]any{
		"status":               "follow-up recorded",
		"total":                total,
		"blood_pressure_valid": bpErr == nil,
	}
	if bpErr != nil {
		resp["warning"] = "blood pressure not in sys/dia form; excluded from charts"
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ListFollowUps(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	records := s.FollowUps.Records()
	s.Unlock()
	httpx.JSON(w, http.StatusOK, map[string]any{"records": records})
}

func (h *Handler) SymptomSeries(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"series": followup.SymptomSeries(h.records(r)),
	})
}

func (h *Handler) VitalsSeries(w http.ResponseWriter, r *http.Request) {
	weight, temperature, bp := followup.VitalsSeries(h.records(r))
	httpx.JSON(w, http.StatusOK, map[string]any{
		"weight":         weight,
		"temperature":    temperature,
		"blood_pressure": bp,
	})
}

func (h *Handler) OrdinalSeries(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	series, err := followup.OrdinalSeries(h.records(r), metric)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"metric": metric, "series": series})
}

type reminderRequest struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

func (h *Handler) AddReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Note == "" {
		httpx.Error(w, http.StatusBadRequest, "note is required")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, fmt.Sprintf("date must be formatted %s", dateLayout))
		return
	}

	s := session.FromContext(r.Context())
	s.Lock()
	s.Reminders = append(s.Reminders, followup.Reminder{Date: date, Note: req.Note})
	total := len(s.Reminders)
	s.Unlock()

	httpx.JSON(w, http.StatusOK, map[string]any{"status": "reminder set", "total": total})
}

func (h *Handler) ListReminders(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	s.Lock()
	reminders := make([]followup.Reminder, len(s.Reminders))
	copy(reminders, s.Reminders)
	s.Unlock()
	httpx.JSON(w, http.StatusOK, map[string]any{"reminders": reminders})
}

// SymptomChart renders the severity-over-time figure for every symptom seen
// in the history.
func (h *Handler) SymptomChart(w http.ResponseWriter, r *http.Request) {
	series := followup.SymptomSeries(h.records(r))
	chartSeries := make([]charts.Series, 0, len(series))
	for _, symptom := range followup.Symptoms {
		if points, ok := series[symptom]; ok {
			chartSeries = append(chartSeries, charts.Series{Name: symptom, Points: points})
		}
	}
	line := charts.Line("Symptom Progression Over Time", "Severity (0-10)", 0, 10, chartSeries...)
	if err := line.Render(w); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to render chart")
	}
}

// VitalsChart renders weight, temperature, and blood-pressure figures on one
// page. Invalid blood-pressure readings are absent, not zeroed.
func (h *Handler) VitalsChart(w http.ResponseWriter, r *http.Request) {
	weight, temperature, bp := followup.VitalsSeries(h.records(r))

	systolic := make([]followup.Point, len(bp))
	diastolic := make([]followup.Point, len(bp))
	for i, p := range bp {
		systolic[i] = followup.Point{Date: p.Date, Value: float64(p.Systolic)}
		diastolic[i] = followup.Point{Date: p.Date, Value: float64(p.Diastolic)}
	}

	page := charts.Page(
		charts.Line("Weight Progression Over Time", "Weight (kg)", 30, 200,
			charts.Series{Name: "Weight", Points: weight}),
		charts.Line("Temperature Progression", "Temperature (°C)", 35, 42,
			charts.Series{Name: "Temperature", Points: temperature}),
		charts.Line("Blood Pressure Progression", "mmHg", 0, 200,
			charts.Series{Name: "Systolic", Points: systolic},
			charts.Series{Name: "Diastolic", Points: diastolic}),
	)
	if err := page.Render(w); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to render chart")
	}
}

// MetricsChart renders the five qualitative health metrics as ordinal ranks.
func (h *Handler) MetricsChart(w http.ResponseWriter, r *http.Request) {
	records := h.records(r)
	metrics := []string{"energy_level", "appetite", "mobility", "sleep_quality", "mood"}
	chartSeries := make([]charts.Series, 0, len(metrics))
	for _, metric := range metrics {
		points, err := followup.OrdinalSeries(records, metric)
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		chartSeries = append(chartSeries, charts.Series{Name: metricTitle(metric), Points: points})
	}
	line := charts.Line("Health Metrics Progression", "Level", 0, 4, chartSeries...)
	if err := line.Render(w); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to render chart")
	}
}

func (h *Handler) records(r *http.Request) []followup.Record {
	s := session.FromContext(r.Context())
	s.Lock()
	defer s.Unlock()
	return s.FollowUps.Records()
}

func metricTitle(metric string) string {
	switch metric {
	case "energy_level":
		return "Energy Level"
	case "appetite":
		return "Appetite"
	case "mobility":
		return "Mobility"
	case "sleep_quality":
		return "Sleep Quality"
	case "mood":
		return "Mood"
	}
	return metric
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/patients/treatment-plan", h.GenerateTreatmentPlan)
	r.Post("/patients/support-recommendations", h.SupportRecommendations)
	r.Post("/patients/follow-ups", h.RecordFollowUp)
	r.Get("/patients/follow-ups", h.ListFollowUps)
	r.Get("/patients/series/symptoms", h.SymptomSeries)
	r.Get("/patients/series/vitals", h.VitalsSeries)
	r.Get("/patients/series/metrics", h.OrdinalSeries)
	r.Get("/patients/charts/symptoms", h.SymptomChart)
	r.Get("/patients/charts/vitals", h.VitalsChart)
	r.Get("/patients/charts/metrics", h.MetricsChart)
	r.Post("/patients/reminders", h.AddReminder)
	r.Get("/patients/reminders", h.ListReminders)
}
