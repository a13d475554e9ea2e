package grader

import (
	"math/rand"

	"codedrill/internal/domain/model"
)

// Evaluator decides the verdict for a submitted solution. The contract is
// fixed so a real judge can replace the stub without touching the
// submission flow.
type Evaluator interface {
	Evaluate(code string, testCases []model.TestCase) string
}

// CoinFlip accepts or rejects uniformly at random. The code is never
// executed and the test cases are ignored.
type CoinFlip struct{}

func NewCoinFlip() *CoinFlip {
	return &CoinFlip{}
}

func (CoinFlip) Evaluate(_ string, _ []model.TestCase) string {
	if rand.Intn(2) == 0 {
		return model.StatusAccepted
	}
	return model.StatusRejected
}
