package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goals-project-backend/config"
	"goals-project-backend/internal/delivery/http/middleware"
	v1 "goals-project-backend/internal/delivery/http/v1"
	"goals-project-backend/internal/domain"
	"goals-project-backend/internal/usecase"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/auth"
	"goals-project-backend/pkg/metrics"
	"goals-project-backend/pkg/week"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userID  = "11111111-1111-4111-8111-111111111111"
	adminID = "22222222-2222-4222-8222-222222222222"
	goalID  = "33333333-3333-4333-8333-333333333333"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine    *gin.Engine
	profiles  *MockProfileUsecase
	weekly    *MockWeeklyGoalUsecase
	evidence  *MockEvidenceUsecase
	reviews   *MockReviewUsecase
	matches   *MockMatchUsecase
	dashboard *MockDashboardUsecase
	admin     *MockAdminUsecase
	dbErr     error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{
		profiles:  new(MockProfileUsecase),
		weekly:    new(MockWeeklyGoalUsecase),
		evidence:  new(MockEvidenceUsecase),
		reviews:   new(MockReviewUsecase),
		matches:   new(MockMatchUsecase),
		dashboard: new(MockDashboardUsecase),
		admin:     new(MockAdminUsecase),
	}
	s.profiles.On("EnsureProfile", mock.Anything, userID, mock.Anything).
		Return(&domain.Profile{ID: userID, Role: domain.RoleUser}, nil).Maybe()
	s.profiles.On("EnsureProfile", mock.Anything, adminID, mock.Anything).
		Return(&domain.Profile{ID: adminID, Role: domain.RoleAdmin}, nil).Maybe()

	fixed := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	health := usecase.NewHealthUsecase(map[string]usecase.Pinger{
		"database": usecase.PingFunc(func(context.Context) error { return s.dbErr }),
	})

	s.engine = v1.NewRouter(v1.RouterDeps{
		ProfileUC:    s.profiles,
		WeeklyGoalUC: s.weekly,
		EvidenceUC:   s.evidence,
		ReviewUC:     s.reviews,
		MatchUC:      s.matches,
		DashboardUC:  s.dashboard,
		AdminUC:      s.admin,
		HealthUC:     health,
		Verifier: fakeVerifier{
			"user-token":  auth.Claims{UserID: userID, Email: "ana@example.com"},
			"admin-token": auth.Claims{UserID: adminID, Email: "root@example.com"},
		},
		Calculator:  week.NewCalculator(time.UTC, func() time.Time { return fixed }),
		RateLimiter: middleware.NewRateLimiter(nil, nil),
		Metrics:     metrics.NewManager(),
		Config: &config.Config{
			FrontendURL:              "https://app.example.com",
			RateLimitWindowSeconds:   60,
			RateLimitGlobalThreshold: 1000,
			RateLimitUploadThreshold: 100,
			EvidenceMaxUploadMB:      1,
		},
	})
	return s
}

func (s *testServer) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) doJSON(method, path, token, body string) *httptest.ResponseRecorder {
	return s.do(method, path, token, strings.NewReader(body), "application/json")
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"request_id"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestWeekRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/v1/weeks/current", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var view domain.WeekView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "2024-12-30", view.WeekStart)
	assert.Equal(t, "2025-01-05", view.WeekEnd)
	assert.Equal(t, 1, view.WeekNumber)

	rec = s.do(http.MethodGet, "/v1/weeks/next", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "2025-01-06", view.WeekStart)

	rec = s.do(http.MethodGet, "/v1/weeks", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "2024-12-30", view.WeekStart)

	rec = s.do(http.MethodGet, "/v1/weeks?date=2025-02-30", "", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decode(t, rec).Success)
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)

	t.Run("Should reject missing tokens", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/v1/dashboard", "", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Should reject unknown tokens", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/v1/dashboard", "forged", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		s.dashboard.AssertNotCalled(t, "GetDashboard", mock.Anything, mock.Anything)
	})

	t.Run("Should pass the caller to the usecase", func(t *testing.T) {
		s.dashboard.On("GetDashboard", mock.Anything, userID).Return(&domain.Dashboard{Total: 3, Completed: 1}, nil).Once()

		rec := s.do(http.MethodGet, "/v1/dashboard", "user-token", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode(t, rec).Success)
	})
}

func TestWeeklyGoalRoutes(t *testing.T) {
	s := newTestServer(t)

	t.Run("Should plan a goal for next week", func(t *testing.T) {
		in := domain.WeeklyGoalInput{Title: "Leer 20 páginas", NormalizedCategory: "reading"}
		s.weekly.On("CreateWeeklyGoal", mock.Anything, userID, in, domain.WeekNext).
			Return(&domain.MicroGoal{ID: goalID, Title: in.Title, WeekStart: "2025-01-06"}, nil).Once()

		rec := s.doJSON(http.MethodPost, "/v1/goals/weekly?week=next", "user-token",
			`{"title":"Leer 20 páginas","normalized_category":"reading"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var goal domain.MicroGoal
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &goal))
		assert.Equal(t, "2025-01-06", goal.WeekStart)
	})

	t.Run("Should reject an unknown week selector", func(t *testing.T) {
		rec := s.doJSON(http.MethodPost, "/v1/goals/weekly?week=later", "user-token", `{"title":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should reject malformed ids", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/v1/goals/weekly/abc", "user-token", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should render usecase errors", func(t *testing.T) {
		s.weekly.On("ToggleCompletion", mock.Anything, userID, goalID).
			Return(nil, apperror.NotFound("Meta semanal no encontrada")).Once()

		rec := s.do(http.MethodPatch, "/v1/goals/weekly/"+goalID+"/toggle", "user-token", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Meta semanal no encontrada", decode(t, rec).Message)
	})

	t.Run("Should hide internal errors", func(t *testing.T) {
		s.weekly.On("ListWeeklyGoals", mock.Anything, userID, "").
			Return(nil, errors.New("pq: relation does not exist")).Once()

		rec := s.do(http.MethodGet, "/v1/goals/weekly", "user-token", nil, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "relation")
	})
}

func multipartBody(t *testing.T, filename string, content []byte, caption string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("caption", caption))
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestEvidenceUpload(t *testing.T) {
	s := newTestServer(t)

	t.Run("Should forward the file and caption", func(t *testing.T) {
		s.evidence.On("Upload", mock.Anything, userID, goalID, mock.MatchedBy(func(in domain.EvidenceUpload) bool {
			return in.Filename == "foto.png" && string(in.Data) == "fake-image" && in.Caption == "Día 3"
		})).Return(&domain.Evidence{ID: "e1", MicroGoalID: goalID}, nil).Once()

		body, ct := multipartBody(t, "foto.png", []byte("fake-image"), "Día 3")
		rec := s.do(http.MethodPost, "/v1/goals/weekly/"+goalID+"/evidence", "user-token", body, ct)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("Should refuse files over the limit", func(t *testing.T) {
		body, ct := multipartBody(t, "big.png", make([]byte, 1<<20+10), "")
		rec := s.do(http.MethodPost, "/v1/goals/weekly/"+goalID+"/evidence", "user-token", body, ct)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("Should require a file", func(t *testing.T) {
		rec := s.doJSON(http.MethodPost, "/v1/goals/weekly/"+goalID+"/evidence", "user-token", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReviewReportIsPlainText(t *testing.T) {
	s := newTestServer(t)
	s.reviews.On("BuildReport", mock.Anything, userID, "2025-01-01").Return("📊 Semana 1\n", nil).Once()

	rec := s.do(http.MethodGet, "/v1/reviews/report?date=2025-01-01", "user-token", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "📊 Semana 1\n", rec.Body.String())
}

func TestMatchRoutes(t *testing.T) {
	s := newTestServer(t)

	s.matches.On("RequestConnection", mock.Anything, userID, adminID).
		Return(&domain.Match{ID: "m1", Score: 80, Status: domain.MatchStatusPending}, nil).Once()
	rec := s.do(http.MethodPost, "/v1/matches/"+adminID, "user-token", nil, "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.doJSON(http.MethodPut, "/v1/matches/requests/"+goalID, "user-token", `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.matches.AssertNotCalled(t, "Respond", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)

	t.Run("Should forbid regular users", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/v1/admin/stats", "user-token", nil, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		s.admin.AssertNotCalled(t, "GetStats", mock.Anything)
	})

	t.Run("Should serve stats to admins", func(t *testing.T) {
		s.admin.On("GetStats", mock.Anything).Return(&domain.AdminStats{TotalUsers: 4, CompletionRate: 50}, nil).Once()

		rec := s.do(http.MethodGet, "/v1/admin/stats", "admin-token", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var stats domain.AdminStats
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &stats))
		assert.EqualValues(t, 4, stats.TotalUsers)
	})

	t.Run("Should download the export", func(t *testing.T) {
		s.admin.On("ExportUsers", mock.Anything, adminID).Return([]byte("PK\x03\x04"), nil).Once()

		rec := s.do(http.MethodGet, "/v1/admin/users/export", "admin-token", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, "PK\x03\x04", rec.Body.String())
	})
}

func TestHealthAndObservability(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-123", decode(t, rec).RequestID)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	s.dbErr = errors.New("connection refused")
	rec = s.do(http.MethodGet, "/v1/health", "", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = s.do(http.MethodGet, "/metrics", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "goals_http_requests_total")
}
