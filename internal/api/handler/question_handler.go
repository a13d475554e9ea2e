package handler

import (
	"encoding/json"
	"net/http"

	"codedrill/internal/api/middleware"
	"codedrill/internal/app/service"
	"codedrill/internal/common"

	"github.com/go-chi/chi/v5"
)

type QuestionHandler struct {
	questionService *service.QuestionService
}

func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

func (h *QuestionHandler) RegisterRoutes(r chi.Router, auth *middleware.Auth) {
	r.Get("/questions", h.listQuestions)

	r.Route("/admin/questions", func(admin chi.Router) {
		admin.Use(auth.Authenticator)
		admin.Use(auth.AdminOnly)
		admin.Post("/", h.createQuestion)
	})
}

func (h *QuestionHandler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req service.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.questionService.CreateQuestion(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

// listQuestions is public and returns the catalog verbatim, test cases and
// expected outputs included.
func (h *QuestionHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.ListQuestions(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, questions)
}
