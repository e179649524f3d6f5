package mealplan_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"cancercare-companion/internal/agent"
	"cancercare-companion/internal/mealplan"
	"cancercare-companion/internal/session"
)

type stubCompletion struct {
	text string
	err  error
}

func (s stubCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

type planClient struct {
	t       *testing.T
	router  chi.Router
	cookies []*http.Cookie
}

func newPlanClient(t *testing.T, client agent.CompletionClient) *planClient {
	gateway := agent.NewGateway(client, zerolog.Nop())
	h := mealplan.NewHandler(gateway)

	m := session.NewManager()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	mealplan.RegisterRoutes(r, h)
	return &planClient{t: t, router: r}
}

func (c *planClient) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return rec
}

func TestGenerateAndDownload(t *testing.T) {
	c := newPlanClient(t, stubCompletion{text: "Day 1: oatmeal"})

	rec := c.do(http.MethodPost, "/meal-plan", `{"budget":"Medium"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d %s", rec.Code, rec.Body)
	}
	var body struct {
		MealPlan agent.Reply `json:"meal_plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.MealPlan.Text != "Day 1: oatmeal" {
		t.Errorf("meal plan = %+v", body.MealPlan)
	}

	rec = c.do(http.MethodGet, "/meal-plan/download", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("download = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "cancer_friendly_meal_plan.txt") {
		t.Errorf("Content-Disposition = %q", got)
	}
	if rec.Body.String() != "Day 1: oatmeal" {
		t.Errorf("download body = %q", rec.Body)
	}
}

func TestGenerateRequiresBudget(t *testing.T) {
	c := newPlanClient(t, stubCompletion{text: "x"})
	rec := c.do(http.MethodPost, "/meal-plan", `{"diet_type":["Vegan"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateFailureIsNotCached(t *testing.T) {
	c := newPlanClient(t, stubCompletion{err: agent.ErrNotConfigured})

	rec := c.do(http.MethodPost, "/meal-plan", `{"budget":"Low"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d", rec.Code)
	}
	var body struct {
		MealPlan agent.Reply `json:"meal_plan"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.MealPlan.Failed() {
		t.Fatalf("expected failed reply, got %+v", body.MealPlan)
	}

	rec = c.do(http.MethodGet, "/meal-plan/download", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("download after failed generate = %d, want 404", rec.Code)
	}
}

func TestDownloadWithoutPlan(t *testing.T) {
	c := newPlanClient(t, stubCompletion{text: "x"})
	rec := c.do(http.MethodGet, "/meal-plan/download", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	rec = c.do(http.MethodGet, "/meal-plan/download/pdf", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("pdf status = %d, want 404", rec.Code)
	}
}

func TestGuidelines(t *testing.T) {
	c := newPlanClient(t, stubCompletion{text: "x"})
	rec := c.do(http.MethodGet, "/meal-plan/guidelines", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"nutrition_guidelines", "preparation_tips"} {
		if _, ok := body[key]; !ok {
			t.Errorf("guidelines missing %q", key)
		}
	}
}
