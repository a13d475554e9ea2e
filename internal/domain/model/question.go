package model

// Question is a practice problem. Immutable once created. Test cases are
// served to every caller on the public listing, answers included.
type Question struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TestCases   []TestCase `json:"testCases"`
}

type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}
