package repository

import (
	"context"
	"sync"

	"codedrill/internal/domain/model"
)

type SubmissionRepository interface {
	Append(ctx context.Context, submission *model.Submission) error
	// List returns every submission from every user in insertion order.
	List(ctx context.Context) ([]model.Submission, error)
}

type memorySubmissionRepository struct {
	mu          sync.RWMutex
	submissions []model.Submission
}

func NewMemorySubmissionRepository() SubmissionRepository {
	return &memorySubmissionRepository{}
}

func (r *memorySubmissionRepository) Append(_ context.Context, submission *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, *submission)
	return nil
}

func (r *memorySubmissionRepository) List(_ context.Context) ([]model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Submission, len(r.submissions))
	copy(out, r.submissions)
	return out, nil
}
