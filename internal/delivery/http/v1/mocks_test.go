package v1_test

import (
	"context"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/auth"

	"github.com/stretchr/testify/mock"
)

type fakeVerifier map[string]auth.Claims

func (f fakeVerifier) Verify(token string) (auth.Claims, error) {
	claims, ok := f[token]
	if !ok {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return claims, nil
}

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) EnsureProfile(ctx context.Context, id, email string) (*domain.Profile, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileUsecase) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileUsecase) UpdateProfile(ctx context.Context, id string, in domain.ProfileUpdateInput) (*domain.Profile, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileUsecase) CompleteOnboarding(ctx context.Context, id string, in domain.OnboardingInput) (*domain.Profile, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockWeeklyGoalUsecase struct {
	mock.Mock
}

func (m *MockWeeklyGoalUsecase) CreateWeeklyGoal(ctx context.Context, userID string, in domain.WeeklyGoalInput, which domain.WeekSelector) (*domain.MicroGoal, error) {
	args := m.Called(ctx, userID, in, which)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MicroGoal), args.Error(1)
}
func (m *MockWeeklyGoalUsecase) ListWeeklyGoals(ctx context.Context, userID, date string) (*domain.WeeklyGoalList, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyGoalList), args.Error(1)
}
func (m *MockWeeklyGoalUsecase) GetWeeklyGoal(ctx context.Context, userID, id string) (*domain.MicroGoal, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MicroGoal), args.Error(1)
}
func (m *MockWeeklyGoalUsecase) UpdateWeeklyGoal(ctx context.Context, userID, id string, in domain.WeeklyGoalInput) (*domain.MicroGoal, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MicroGoal), args.Error(1)
}
func (m *MockWeeklyGoalUsecase) ToggleCompletion(ctx context.Context, userID, id string) (*domain.MicroGoal, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MicroGoal), args.Error(1)
}
func (m *MockWeeklyGoalUsecase) DeleteWeeklyGoal(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockEvidenceUsecase struct {
	mock.Mock
}

func (m *MockEvidenceUsecase) Upload(ctx context.Context, userID, microGoalID string, in domain.EvidenceUpload) (*domain.Evidence, error) {
	args := m.Called(ctx, userID, microGoalID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}
func (m *MockEvidenceUsecase) List(ctx context.Context, userID, microGoalID string) ([]domain.Evidence, error) {
	args := m.Called(ctx, userID, microGoalID)
	return args.Get(0).([]domain.Evidence), args.Error(1)
}
func (m *MockEvidenceUsecase) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockReviewUsecase struct {
	mock.Mock
}

func (m *MockReviewUsecase) GetSummary(ctx context.Context, userID, date string) (*domain.ReviewSummary, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewSummary), args.Error(1)
}
func (m *MockReviewUsecase) BuildReport(ctx context.Context, userID, date string) (string, error) {
	args := m.Called(ctx, userID, date)
	return args.String(0), args.Error(1)
}
func (m *MockReviewUsecase) SaveReview(ctx context.Context, userID string, in domain.ReviewInput) (*domain.WeeklyReview, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReview), args.Error(1)
}
func (m *MockReviewUsecase) History(ctx context.Context, userID string, limit int) ([]domain.WeeklyReview, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.WeeklyReview), args.Error(1)
}

type MockMatchUsecase struct {
	mock.Mock
}

func (m *MockMatchUsecase) ListMatches(ctx context.Context, userID string) ([]domain.MatchCard, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.MatchCard), args.Error(1)
}
func (m *MockMatchUsecase) RequestConnection(ctx context.Context, userID, targetID string) (*domain.Match, error) {
	args := m.Called(ctx, userID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
func (m *MockMatchUsecase) ListRequests(ctx context.Context, userID string) (*domain.MatchRequests, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchRequests), args.Error(1)
}
func (m *MockMatchUsecase) Respond(ctx context.Context, userID, matchID, status string) (*domain.Match, error) {
	args := m.Called(ctx, userID, matchID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

type MockDashboardUsecase struct {
	mock.Mock
}

func (m *MockDashboardUsecase) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

type MockAdminUsecase struct {
	mock.Mock
}

func (m *MockAdminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}
func (m *MockAdminUsecase) RecentUsers(ctx context.Context, limit int) ([]domain.AdminUserRow, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.AdminUserRow), args.Error(1)
}
func (m *MockAdminUsecase) ExportUsers(ctx context.Context, adminID string) ([]byte, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockAdminUsecase) AssignRole(ctx context.Context, adminID, userID, role string) (*domain.Profile, error) {
	args := m.Called(ctx, adminID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
