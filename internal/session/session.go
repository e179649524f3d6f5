// Package session owns all per-user state. Every entity lives exactly as
// long as its session: created lazily on first request, discarded on
// teardown. Nothing is shared across sessions or persisted.
package session

import (
	"sync"
	"time"

	"cancercare-companion/internal/followup"
	"cancercare-companion/internal/prompt"
	"cancercare-companion/internal/quiz"
)

type Page string

const (
	PageHome              Page = "home"
	PagePatientManagement Page = "patient_management"
	PageMealPlanner       Page = "meal_planner"
	PageEmotionalSupport  Page = "emotional_support"
	PageQuiz              Page = "quiz"
	PageImageAnalysis     Page = "image_analysis"
)

// PageTitles drives the navigation menu, in display order.
var PageTitles = []struct {
	ID    Page   `json:"id"`
	Title string `json:"title"`
}{
	{PageHome, "Home"},
	{PagePatientManagement, "Patient Records"},
	{PageMealPlanner, "Nutrition Guide"},
	{PageEmotionalSupport, "Support Chat"},
	{PageQuiz, "Learn & Quiz"},
	{PageImageAnalysis, "Image Analysis"},
}

func ValidPage(p Page) bool {
	for _, entry := range PageTitles {
		if entry.ID == p {
			return true
		}
	}
	return false
}

type ChatMessage struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the per-user state store. A user sends one request at a time,
// but the HTTP server is concurrent, so each session carries its own lock;
// handlers hold it for the duration of a mutation or read.
type Session struct {
	sync.Mutex

	ID        string
	CreatedAt time.Time

	CurrentPage Page
	Quiz        *quiz.Engine
	FollowUps   *followup.History
	Reminders   []followup.Reminder
	Profile     *prompt.PatientDetails
	Chat        []ChatMessage
	MealPlan    string
}

func newSession(id string) *Session {
	return &Session{
		ID:          id,
		CreatedAt:   time.Now(),
		CurrentPage: PageHome,
		Quiz:        quiz.NewEngine(nil),
		FollowUps:   &followup.History{},
	}
}
