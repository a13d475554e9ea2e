package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"codedrill/internal/app/grader"
	"codedrill/internal/common"
	"codedrill/internal/domain/model"
	"codedrill/internal/domain/repository"
)

type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	questionRepo   repository.QuestionRepository
	evaluator      grader.Evaluator
}

func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	questionRepo repository.QuestionRepository,
	evaluator grader.Evaluator,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		questionRepo:   questionRepo,
		evaluator:      evaluator,
	}
}

type CreateSubmissionRequest struct {
	QuestionID any    `json:"questionId"`
	Code       string `json:"code"`
}

type CreateSubmissionResponse struct {
	Message    string            `json:"message"`
	Submission *model.Submission `json:"submission"`
}

// CreateSubmission resolves the question by a numeric parse of questionId,
// asks the evaluator for a verdict, and appends the record. The stored
// questionId is the raw caller-supplied value, not the parsed one.
func (s *SubmissionService) CreateSubmission(ctx context.Context, userID int, req CreateSubmissionRequest) (*CreateSubmissionResponse, error) {
	questionID, err := numericQuestionID(req.QuestionID)
	if err != nil {
		return nil, common.Errorf("invalid questionId: %w", common.ErrBadRequest)
	}

	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("invalid questionId: %w", common.ErrBadRequest)
		}
		return nil, common.Errorf("failed to find question: %w", err)
	}

	status := s.evaluator.Evaluate(req.Code, question.TestCases)

	submission := &model.Submission{
		UserID:     userID,
		QuestionID: req.QuestionID,
		Code:       req.Code,
		Status:     status,
	}
	if err := s.submissionRepo.Append(ctx, submission); err != nil {
		return nil, common.Errorf("failed to store submission: %w", err)
	}

	return &CreateSubmissionResponse{
		Message:    fmt.Sprintf("Submission %s!", status),
		Submission: submission,
	}, nil
}

func (s *SubmissionService) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	return s.submissionRepo.List(ctx)
}

// numericQuestionID accepts the two shapes JSON decoding produces for the
// questionId field: a number (float64) or a numeric string.
func numericQuestionID(v any) (int, error) {
	switch id := v.(type) {
	case float64:
		return int(id), nil
	case string:
		return strconv.Atoi(id)
	default:
		return 0, common.ErrBadRequest
	}
}
