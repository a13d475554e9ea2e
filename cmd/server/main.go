package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codedrill/internal/api"
	"codedrill/internal/api/middleware"
	"codedrill/internal/app/grader"
	"codedrill/internal/app/service"
	"codedrill/internal/domain/repository"
	"codedrill/internal/platform/config"
)

func main() {
	config.Load()

	// All state lives in process memory; a restart starts over with just
	// the seeded default question.
	userRepo := repository.NewMemoryUserRepository()
	questionRepo := repository.NewMemoryQuestionRepository()
	submissionRepo := repository.NewMemorySubmissionRepository()

	authService := service.NewAuthService(userRepo)
	questionService := service.NewQuestionService(questionRepo)
	submissionService := service.NewSubmissionService(submissionRepo, questionRepo, grader.NewCoinFlip())

	auth := middleware.NewAuth(userRepo)
	router := api.NewRouter(authService, questionService, submissionService, auth)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully.")
}
