package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"cancercare-companion/internal/agent"
	"cancercare-companion/internal/config"
	"cancercare-companion/internal/education"
	"cancercare-companion/internal/imaging"
	"cancercare-companion/internal/mealplan"
	"cancercare-companion/internal/patient"
	appmw "cancercare-companion/internal/platform/middleware"
	"cancercare-companion/internal/quiz"
	"cancercare-companion/internal/session"
	"cancercare-companion/internal/support"
)

func main() {
	// 1. Configuration
	_ = godotenv.Load()
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// A missing key disables AI-backed features but not the rest of the app.
	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("configuration incomplete")
	}

	// 2. Clients
	completionClient := agent.NewGroqClient(
		cfg.Completion.APIKey,
		cfg.Completion.BaseURL,
		cfg.Completion.Model,
		cfg.Completion.Temperature,
		cfg.Completion.MaxTokens,
	)
	gateway := agent.NewGateway(completionClient, logger)
	classifier := agent.NewHTTPClassifier(cfg.Classifier.URL)

	// 3. Session store and handlers
	sessions := session.NewManager()

	sessionHandler := session.NewHandler(sessions)
	patientHandler := patient.NewHandler(patient.NewService(gateway))
	mealplanHandler := mealplan.NewHandler(gateway)
	supportHandler := support.NewHandler(gateway)
	educationHandler := education.NewHandler(gateway, quiz.Catalog())
	imagingHandler := imaging.NewHandler(classifier)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(appmw.RequestLogger(logger))
	r.Use(chimw.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == http.MethodOptions {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(sessions.Middleware)
		session.RegisterRoutes(r, sessionHandler)
		patient.RegisterRoutes(r, patientHandler)
		mealplan.RegisterRoutes(r, mealplanHandler)
		support.RegisterRoutes(r, supportHandler)
		education.RegisterRoutes(r, educationHandler)
		imaging.RegisterRoutes(r, imagingHandler)
	})

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
