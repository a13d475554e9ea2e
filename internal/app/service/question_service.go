package service

import (
	"context"

	"codedrill/internal/common"
	"codedrill/internal/domain/model"
	"codedrill/internal/domain/repository"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

type CreateQuestionRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	TestCases   []model.TestCase `json:"testCases"`
}

// CreatedQuestion echoes the fields of a newly added question. The assigned
// ID is deliberately not part of the creation response.
type CreatedQuestion struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	TestCases   []model.TestCase `json:"testCases"`
}

type CreateQuestionResponse struct {
	Message  string          `json:"message"`
	Question CreatedQuestion `json:"question"`
}

func (s *QuestionService) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*CreateQuestionResponse, error) {
	// testCases must be a JSON array; absent or null fails while an empty
	// array passes. Title and description only need to be non-empty.
	if req.Title == "" || req.Description == "" || req.TestCases == nil {
		return nil, common.Errorf("invalid question format: %w", common.ErrValidation)
	}

	question := &model.Question{
		Title:       req.Title,
		Description: req.Description,
		TestCases:   req.TestCases,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, common.Errorf("failed to create question: %w", err)
	}

	return &CreateQuestionResponse{
		Message: "Question added successfully",
		Question: CreatedQuestion{
			Title:       question.Title,
			Description: question.Description,
			TestCases:   question.TestCases,
		},
	}, nil
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]model.Question, error) {
	return s.questionRepo.List(ctx)
}
