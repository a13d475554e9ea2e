package repository

import (
	"context"
	"sync"

	"codedrill/internal/common"
	"codedrill/internal/domain/model"
)

type QuestionRepository interface {
	// Create appends the question and assigns its ID.
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id int) (*model.Question, error)
	// List returns the whole catalog in insertion order.
	List(ctx context.Context) ([]model.Question, error)
}

type memoryQuestionRepository struct {
	mu        sync.RWMutex
	questions []model.Question
}

// NewMemoryQuestionRepository returns a catalog pre-seeded with the default
// practice question, so a fresh process always has something to solve.
func NewMemoryQuestionRepository() QuestionRepository {
	return &memoryQuestionRepository{
		questions: []model.Question{
			{
				ID:          1,
				Title:       "Two states",
				Description: "Given an array, return the maximum of the array?",
				TestCases: []model.TestCase{
					{Input: "[1,2,3,4,5]", Output: "5"},
				},
			},
		},
	}
}

func (r *memoryQuestionRepository) Create(_ context.Context, question *model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	question.ID = len(r.questions) + 1
	r.questions = append(r.questions, *question)
	return nil
}

func (r *memoryQuestionRepository) FindByID(_ context.Context, id int) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.questions {
		if r.questions[i].ID == id {
			q := r.questions[i]
			return &q, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryQuestionRepository) List(_ context.Context) ([]model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Question, len(r.questions))
	copy(out, r.questions)
	return out, nil
}
