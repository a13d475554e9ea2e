package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codedrill/internal/api"
	"codedrill/internal/api/middleware"
	"codedrill/internal/app/grader"
	"codedrill/internal/app/service"
	"codedrill/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	userRepo := repository.NewMemoryUserRepository()
	questionRepo := repository.NewMemoryQuestionRepository()
	submissionRepo := repository.NewMemorySubmissionRepository()

	authService := service.NewAuthService(userRepo)
	questionService := service.NewQuestionService(questionRepo)
	submissionService := service.NewSubmissionService(submissionRepo, questionRepo, grader.NewCoinFlip())

	auth := middleware.NewAuth(userRepo)
	return api.NewRouter(authService, questionService, submissionService, auth)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		// Raw token value, no scheme prefix.
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, h http.Handler, email, password, role string) {
	t.Helper()
	body := map[string]any{"email": email, "password": password}
	if role != "" {
		body["role"] = role
	}
	w := doJSON(t, h, http.MethodPost, "/signup", "", body)
	require.Equal(t, http.StatusOK, w.Code, "signup failed: %s", w.Body.String())
}

func login(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/login", "", map[string]any{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func listSubmissions(t *testing.T, h http.Handler) []map[string]any {
	t.Helper()
	w := doJSON(t, h, http.MethodGet, "/submissions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var subs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	return subs
}

func TestHealth(t *testing.T) {
	h := setupRouter(t)
	w := doJSON(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSignupDuplicateEmail(t *testing.T) {
	h := setupRouter(t)

	w := doJSON(t, h, http.MethodPost, "/signup", "", map[string]any{"email": "a@x.com", "password": "p"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodPost, "/signup", "", map[string]any{"email": "a@x.com", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "duplicate email is reported as 400")

	w = doJSON(t, h, http.MethodPost, "/signup", "", map[string]any{"email": "b@x.com", "password": "p"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRoundTrip(t *testing.T) {
	h := setupRouter(t)
	signup(t, h, "a@x.com", "p", "")

	first := login(t, h, "a@x.com", "p")
	second := login(t, h, "a@x.com", "p")
	assert.NotEqual(t, first, second)

	// The first token was overwritten by the second login.
	w := doJSON(t, h, http.MethodPost, "/submission", first, map[string]any{"questionId": 1, "code": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodPost, "/submission", second, map[string]any{"questionId": 1, "code": "x"})
	assert.Equal(t, http.StatusOK, w.Code, "current token still works: %s", w.Body.String())
}

func TestLoginFailures(t *testing.T) {
	h := setupRouter(t)
	signup(t, h, "a@x.com", "p", "")

	w := doJSON(t, h, http.MethodPost, "/login", "", map[string]any{"email": "nobody@x.com", "password": "p"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodPost, "/login", "", map[string]any{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The account is untouched; the right password still logs in.
	login(t, h, "a@x.com", "p")
}

func TestAdminGate(t *testing.T) {
	h := setupRouter(t)
	signup(t, h, "user@x.com", "p", "")
	signup(t, h, "admin@x.com", "p", "admin")

	question := map[string]any{
		"title":       "Reverse a string",
		"description": "Given a string, return it reversed.",
		"testCases":   []map[string]any{{"input": "abc", "output": "cba"}},
	}

	w := doJSON(t, h, http.MethodPost, "/admin/questions", "", question)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "no token")

	userToken := login(t, h, "user@x.com", "p")
	w = doJSON(t, h, http.MethodPost, "/admin/questions", userToken, question)
	assert.Equal(t, http.StatusForbidden, w.Code, "user role")

	adminToken := login(t, h, "admin@x.com", "p")
	w = doJSON(t, h, http.MethodPost, "/admin/questions", adminToken, question)
	require.Equal(t, http.StatusCreated, w.Code, "admin role: %s", w.Body.String())

	var created struct {
		Message  string `json:"message"`
		Question struct {
			Title string `json:"title"`
		} `json:"question"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Question added successfully", created.Message)
	assert.Equal(t, "Reverse a string", created.Question.Title)

	w = doJSON(t, h, http.MethodGet, "/questions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var questions []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	assert.Len(t, questions, 2, "seeded question plus the new one")
}

func TestCreateQuestionInvalidShape(t *testing.T) {
	h := setupRouter(t)
	signup(t, h, "admin@x.com", "p", "admin")
	adminToken := login(t, h, "admin@x.com", "p")

	for name, body := range map[string]map[string]any{
		"missing title":       {"description": "d", "testCases": []any{}},
		"missing description": {"title": "t", "testCases": []any{}},
		"missing testCases":   {"title": "t", "description": "d"},
	} {
		w := doJSON(t, h, http.MethodPost, "/admin/questions", adminToken, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestListQuestionsIncludesSeed(t *testing.T) {
	h := setupRouter(t)

	w := doJSON(t, h, http.MethodGet, "/questions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var questions []struct {
		ID        int    `json:"id"`
		Title     string `json:"title"`
		TestCases []struct {
			Input  string `json:"input"`
			Output string `json:"output"`
		} `json:"testCases"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.Len(t, questions, 1)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, "Two states", questions[0].Title)
	require.Len(t, questions[0].TestCases, 1)
	assert.Equal(t, "5", questions[0].TestCases[0].Output, "expected outputs are exposed on the public listing")
}

func TestSubmissionFlow(t *testing.T) {
	h := setupRouter(t)
	signup(t, h, "a@x.com", "p", "")
	token := login(t, h, "a@x.com", "p")

	before := listSubmissions(t, h)

	w := doJSON(t, h, http.MethodPost, "/submission", token, map[string]any{"questionId": 1, "code": "return max(arr)"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message    string `json:"message"`
		Submission struct {
			UserID     int    `json:"userId"`
			QuestionID any    `json:"questionId"`
			Code       string `json:"code"`
			Status     string `json:"status"`
		} `json:"submission"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, []string{"accepted", "rejected"}, resp.Submission.Status)
	assert.Equal(t, "Submission "+resp.Submission.Status+"!", resp.Message)

	after := listSubmissions(t, h)
	require.Len(t, after, len(before)+1)
	last := after[len(after)-1]
	assert.Equal(t, float64(1), last["userId"])
	assert.Equal(t, float64(1), last["questionId"])
	assert.Equal(t, "return max(arr)", last["code"])
}

func TestSubmissionKeepsRawQuestionIDType(t *testing.T) {
	h := setupRouter(t)
	signup(t, h, "a@x.com", "p", "")
	token := login(t, h, "a@x.com", "p")

	w := doJSON(t, h, http.MethodPost, "/submission", token, map[string]any{"questionId": "1", "code": "x"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	subs := listSubmissions(t, h)
	require.Len(t, subs, 1)
	assert.Equal(t, "1", subs[0]["questionId"], "numeric string is stored as a string")
}

func TestSubmissionUnknownQuestionID(t *testing.T) {
	h := setupRouter(t)
	signup(t, h, "a@x.com", "p", "")
	token := login(t, h, "a@x.com", "p")

	w := doJSON(t, h, http.MethodPost, "/submission", token, map[string]any{"questionId": 9999, "code": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, listSubmissions(t, h), "failed submissions are not recorded")
}

func TestSubmissionUnauthenticated(t *testing.T) {
	h := setupRouter(t)

	w := doJSON(t, h, http.MethodPost, "/submission", "", map[string]any{"questionId": 1, "code": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "missing header")

	w = doJSON(t, h, http.MethodPost, "/submission", "garbage-token", map[string]any{"questionId": 1, "code": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "unknown token")

	assert.Empty(t, listSubmissions(t, h))
}
