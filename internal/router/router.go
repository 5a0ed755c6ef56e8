package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/sahayak-lambda/internal/assessment"
	"github.com/saulo-duarte/sahayak-lambda/internal/auth"
	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"github.com/saulo-duarte/sahayak-lambda/internal/content"
	"github.com/saulo-duarte/sahayak-lambda/internal/knowledge"
	"github.com/saulo-duarte/sahayak-lambda/internal/llm"
	"github.com/saulo-duarte/sahayak-lambda/internal/middlewares"
	"github.com/saulo-duarte/sahayak-lambda/internal/passage"
	"github.com/saulo-duarte/sahayak-lambda/internal/question"
	"github.com/saulo-duarte/sahayak-lambda/internal/user"
	"github.com/saulo-duarte/sahayak-lambda/internal/visualaid"
	"github.com/saulo-duarte/sahayak-lambda/internal/weeklyplan"
	"github.com/saulo-duarte/sahayak-lambda/internal/worksheet"
)

type RouterConfig struct {
	ContentHandler    *content.Handler
	QuestionHandler   *question.Handler
	KnowledgeHandler  *knowledge.Handler
	WorksheetHandler  *worksheet.Handler
	WeeklyPlanHandler *weeklyplan.Handler
	VisualAidHandler  *visualaid.Handler
	PassageHandler    *passage.Handler
	AssessmentHandler *assessment.Handler
	UserHandler       *user.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/api/health", healthCheck)

	// Generation endpoints are open to the dashboard without a session.
	r.Post("/api/generate-content", cfg.ContentHandler.GenerateContent)
	r.Post("/api/generate-examples", cfg.ContentHandler.GenerateExamples)
	r.Post("/api/generate-questions", cfg.QuestionHandler.Generate)
	r.Post("/api/ask-question", cfg.KnowledgeHandler.Ask)
	r.Post("/api/analyze-textbook", cfg.WorksheetHandler.Analyze)
	r.Post("/api/generate-worksheets", cfg.WorksheetHandler.Generate)
	r.Post("/api/generate-weekly-plan", cfg.WeeklyPlanHandler.Generate)
	r.Post("/api/generate-visual-aid", cfg.VisualAidHandler.Generate)
	r.Post("/api/generate-passage", cfg.PassageHandler.Generate)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/api/users", user.Routes(cfg.UserHandler))
		r.Mount("/api/assessments", assessment.Routes(cfg.AssessmentHandler))

		r.Post("/api/save-assessment", cfg.AssessmentHandler.Save)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "3.0.0",
		"model":     llm.Model(),
	})
}
