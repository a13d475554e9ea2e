package api

import (
	"log/slog"
	"net/http"

	"codedrill/internal/api/handler"
	"codedrill/internal/api/middleware"
	"codedrill/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

func NewRouter(
	authService *service.AuthService,
	questionService *service.QuestionService,
	submissionService *service.SubmissionService,
	auth *middleware.Auth,
) http.Handler {
	r := chi.NewRouter()

	logger := httplog.NewLogger("codedrill", httplog.Options{
		LogLevel:         slog.LevelInfo,
		Concise:          true,
		MessageFieldName: "message",
	})

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterRoutes(r)

	questionHandler := handler.NewQuestionHandler(questionService)
	questionHandler.RegisterRoutes(r, auth)

	submissionHandler := handler.NewSubmissionHandler(submissionService)
	submissionHandler.RegisterRoutes(r, auth)

	return r
}
