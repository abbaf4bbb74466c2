package usecase_test

import (
	"context"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/leaderboard"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProfileRepo) UpdateRole(ctx context.Context, id, role string) error {
	return m.Called(ctx, id, role).Error(0)
}
func (m *MockProfileRepo) ListMatchable(ctx context.Context, excludeID string) ([]domain.Profile, error) {
	args := m.Called(ctx, excludeID)
	return args.Get(0).([]domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Profile, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Profile), args.Error(1)
}

type MockMacroGoalRepo struct {
	mock.Mock
}

func (m *MockMacroGoalRepo) Create(ctx context.Context, g *domain.MacroGoal) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockMacroGoalRepo) GetByID(ctx context.Context, id string) (*domain.MacroGoal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MacroGoal), args.Error(1)
}
func (m *MockMacroGoalRepo) ListByUser(ctx context.Context, userID string, filter domain.MacroGoalFilter) ([]domain.MacroGoal, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]domain.MacroGoal), args.Error(1)
}
func (m *MockMacroGoalRepo) Update(ctx context.Context, g *domain.MacroGoal) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockMacroGoalRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockMacroGoalRepo) CountByStatus(ctx context.Context, userID, status string) (int, error) {
	args := m.Called(ctx, userID, status)
	return args.Int(0), args.Error(1)
}

type MockMicroGoalRepo struct {
	mock.Mock
}

func (m *MockMicroGoalRepo) Create(ctx context.Context, g *domain.MicroGoal) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockMicroGoalRepo) GetByID(ctx context.Context, id string) (*domain.MicroGoal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MicroGoal), args.Error(1)
}
func (m *MockMicroGoalRepo) ListByWeek(ctx context.Context, userID, weekStart, weekEnd string) ([]domain.MicroGoal, error) {
	args := m.Called(ctx, userID, weekStart, weekEnd)
	return args.Get(0).([]domain.MicroGoal), args.Error(1)
}
func (m *MockMicroGoalRepo) Update(ctx context.Context, g *domain.MicroGoal) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockMicroGoalRepo) SetCompleted(ctx context.Context, id string, completed bool) (*domain.MicroGoal, error) {
	args := m.Called(ctx, id, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MicroGoal), args.Error(1)
}
func (m *MockMicroGoalRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockMicroGoalRepo) CountCompleted(ctx context.Context, userID, category, weekStart string) (int, error) {
	args := m.Called(ctx, userID, category, weekStart)
	return args.Int(0), args.Error(1)
}

type MockEvidenceRepo struct {
	mock.Mock
}

func (m *MockEvidenceRepo) Create(ctx context.Context, e *domain.Evidence) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEvidenceRepo) GetByID(ctx context.Context, id string) (*domain.Evidence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}
func (m *MockEvidenceRepo) ListByGoal(ctx context.Context, microGoalID string) ([]domain.Evidence, error) {
	args := m.Called(ctx, microGoalID)
	return args.Get(0).([]domain.Evidence), args.Error(1)
}
func (m *MockEvidenceRepo) ListByGoals(ctx context.Context, ids []string) (map[string][]domain.Evidence, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[string][]domain.Evidence), args.Error(1)
}
func (m *MockEvidenceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Upsert(ctx context.Context, r *domain.WeeklyReview) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReviewRepo) GetByWeek(ctx context.Context, userID, weekStart string) (*domain.WeeklyReview, error) {
	args := m.Called(ctx, userID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReview), args.Error(1)
}
func (m *MockReviewRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.WeeklyReview, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.WeeklyReview), args.Error(1)
}

type MockRankingRepo struct {
	mock.Mock
}

func (m *MockRankingRepo) SaveScore(ctx context.Context, userID, category, weekStart string, score int) error {
	return m.Called(ctx, userID, category, weekStart, score).Error(0)
}
func (m *MockRankingRepo) ListByWeek(ctx context.Context, weekStart string) ([]leaderboard.Entry, error) {
	args := m.Called(ctx, weekStart)
	return args.Get(0).([]leaderboard.Entry), args.Error(1)
}

type MockRankingUsecase struct {
	mock.Mock
}

func (m *MockRankingUsecase) GetRankings(ctx context.Context, userID, date string) (*domain.RankingsView, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RankingsView), args.Error(1)
}
func (m *MockRankingUsecase) RecomputeScore(ctx context.Context, userID, category, weekStart string) error {
	return m.Called(ctx, userID, category, weekStart).Error(0)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) Create(ctx context.Context, match *domain.Match) error {
	return m.Called(ctx, match).Error(0)
}
func (m *MockMatchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
func (m *MockMatchRepo) FindBetween(ctx context.Context, a, b string) (*domain.Match, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
func (m *MockMatchRepo) ListByUser(ctx context.Context, userID string) ([]domain.Match, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Match), args.Error(1)
}
func (m *MockMatchRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Match, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}
func (m *MockAdminRepo) ListUsers(ctx context.Context, limit int) ([]domain.AdminUserRow, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.AdminUserRow), args.Error(1)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}
func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
func (m *MockObjectStore) KeyFromURL(url string) (string, bool) {
	args := m.Called(url)
	return args.String(0), args.Bool(1)
}

type MockUploadLimiter struct {
	mock.Mock
}

func (m *MockUploadLimiter) Allow(ctx context.Context, userID, uploadID string) (bool, error) {
	args := m.Called(ctx, userID, uploadID)
	return args.Bool(0), args.Error(1)
}
