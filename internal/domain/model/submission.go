package model

const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Submission records one attempt at one question. QuestionID keeps whatever
// JSON value the caller sent (string or number); the lookup parses it
// numerically but the stored record is never normalized.
type Submission struct {
	UserID     int    `json:"userId"`
	QuestionID any    `json:"questionId"`
	Code       string `json:"code"`
	Status     string `json:"status"`
}
