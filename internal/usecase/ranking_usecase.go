package usecase

import (
	"context"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/leaderboard"
	"goals-project-backend/pkg/metrics"
	"goals-project-backend/pkg/week"
)

type rankingUsecase struct {
	rankingRepo domain.RankingRepository
	goalRepo    domain.MicroGoalRepository
	calc        *week.Calculator
	metrics     *metrics.Manager
}

func NewRankingUsecase(rankingRepo domain.RankingRepository, goalRepo domain.MicroGoalRepository, calc *week.Calculator, m *metrics.Manager) domain.RankingUsecase {
	return &rankingUsecase{
		rankingRepo: rankingRepo,
		goalRepo:    goalRepo,
		calc:        calc,
		metrics:     m,
	}
}

func (u *rankingUsecase) GetRankings(ctx context.Context, userID, date string) (*domain.RankingsView, error) {
	info, err := u.calc.ForDate(date)
	if err != nil {
		return nil, dateError(err)
	}

	rows, err := u.rankingRepo.ListByWeek(ctx, info.StartDate())
	if err != nil {
		return nil, apperror.Internal(err)
	}

	categories := domain.OptionIDs(domain.NormalizedCategories)
	boards := leaderboard.GroupByCategory(rows, categories)

	view := &domain.RankingsView{
		Week:      domain.NewWeekView(info),
		Boards:    make([]domain.CategoryBoard, 0, len(categories)),
		Positions: leaderboard.UserPositions(boards, categories, userID),
	}
	for _, c := range domain.NormalizedCategories {
		view.Boards = append(view.Boards, domain.CategoryBoard{
			Category: c.ID,
			Label:    c.Label,
			Entries:  boards[c.ID],
		})
	}
	return view, nil
}

// RecomputeScore sets the score to the number of completed goals in the category that week.
func (u *rankingUsecase) RecomputeScore(ctx context.Context, userID, category, weekStart string) error {
	if category == "" {
		return nil
	}
	score, err := u.goalRepo.CountCompleted(ctx, userID, category, weekStart)
	if err != nil {
		return err
	}
	if err := u.rankingRepo.SaveScore(ctx, userID, category, weekStart, score); err != nil {
		return err
	}
	u.metrics.RecordRankingRecompute()
	return nil
}
