package usecase

import (
	"context"
	"errors"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/logger"
	"goals-project-backend/pkg/matching"
	"goals-project-backend/pkg/metrics"

	"github.com/go-playground/validator/v10"
)

const (
	msgProfileNotFound = "Perfil no encontrado"
	msgMatchNotFound   = "Solicitud no encontrada"
)

type matchUsecase struct {
	profileRepo domain.ProfileRepository
	matchRepo   domain.MatchRepository
	validate    *validator.Validate
	metrics     *metrics.Manager
}

func NewMatchUsecase(profileRepo domain.ProfileRepository, matchRepo domain.MatchRepository, validate *validator.Validate, m *metrics.Manager) domain.MatchUsecase {
	return &matchUsecase{
		profileRepo: profileRepo,
		matchRepo:   matchRepo,
		validate:    validate,
		metrics:     m,
	}
}

func (u *matchUsecase) ListMatches(ctx context.Context, userID string) ([]domain.MatchCard, error) {
	self, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, msgProfileNotFound)
	}
	selfTags, err := self.Tags()
	if err != nil {
		return nil, tagError(err)
	}

	profiles, err := u.profileRepo.ListMatchable(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	byID := make(map[string]*domain.Profile, len(profiles))
	candidates := make([]matching.Candidate, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		tags, err := p.Tags()
		if err != nil {
			logger.Log.Warn("Skipping profile with malformed tags", "profile_id", p.ID, "error", err)
			continue
		}
		byID[p.ID] = p
		candidates = append(candidates, matching.Candidate{ID: p.ID, Tags: tags})
	}

	results := matching.RankMatches(selfTags, candidates)
	u.metrics.RecordMatchRanking(len(candidates))

	cards := make([]domain.MatchCard, 0, len(results))
	for _, r := range results {
		cards = append(cards, domain.MatchCard{
			Profile:          byID[r.CandidateID].Public(),
			Score:            r.Score,
			CommonFocusAreas: []string(r.CommonFocusAreas),
			CommonInterests:  []string(r.CommonInterests),
		})
	}
	return cards, nil
}

func (u *matchUsecase) RequestConnection(ctx context.Context, userID, targetID string) (*domain.Match, error) {
	if userID == targetID {
		return nil, apperror.BadRequest("No puedes conectar contigo mismo")
	}

	self, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, msgProfileNotFound)
	}
	target, err := u.profileRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, repoError(err, msgProfileNotFound)
	}
	if !target.OnboardingCompleted {
		return nil, apperror.NotFound(msgProfileNotFound)
	}

	if _, err := u.matchRepo.FindBetween(ctx, userID, targetID); err == nil {
		return nil, apperror.Conflict("Ya existe una solicitud entre ambos usuarios")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	selfTags, err := self.Tags()
	if err != nil {
		return nil, tagError(err)
	}
	targetTags, err := target.Tags()
	if err != nil {
		return nil, tagError(err)
	}

	score := matching.ScoreProfiles(selfTags, targetTags)
	if score == 0 {
		return nil, apperror.BadRequest("No tienen objetivos en común")
	}

	common := append([]string{}, selfTags.FocusAreas.Intersect(targetTags.FocusAreas)...)
	common = append(common, selfTags.Interests.Intersect(targetTags.Interests)...)

	match := &domain.Match{
		RequesterID: userID,
		AddresseeID: targetID,
		Score:       score,
		CommonGoals: common,
		Status:      domain.MatchStatusPending,
	}
	if err := u.matchRepo.Create(ctx, match); err != nil {
		return nil, repoError(err, msgProfileNotFound)
	}
	u.metrics.RecordConnectionRequest()
	return match, nil
}

func (u *matchUsecase) ListRequests(ctx context.Context, userID string) (*domain.MatchRequests, error) {
	matches, err := u.matchRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result := &domain.MatchRequests{
		Incoming: make([]domain.MatchRequest, 0),
		Outgoing: make([]domain.MatchRequest, 0),
	}
	if len(matches) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, otherParty(m, userID))
	}
	profiles, err := u.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	byID := make(map[string]domain.PublicProfile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = profiles[i].Public()
	}

	for _, m := range matches {
		other, ok := byID[otherParty(m, userID)]
		if !ok {
			continue
		}
		req := domain.MatchRequest{Match: m, Other: other}
		if m.AddresseeID == userID {
			result.Incoming = append(result.Incoming, req)
		} else {
			result.Outgoing = append(result.Outgoing, req)
		}
	}
	return result, nil
}

func (u *matchUsecase) Respond(ctx context.Context, userID, matchID, status string) (*domain.Match, error) {
	if err := validateInput(u.validate, domain.MatchResponseInput{Status: status}); err != nil {
		return nil, err
	}

	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, repoError(err, msgMatchNotFound)
	}
	switch userID {
	case match.AddresseeID:
	case match.RequesterID:
		return nil, apperror.Forbidden("Solo quien recibe la solicitud puede responderla")
	default:
		return nil, apperror.NotFound(msgMatchNotFound)
	}
	if match.Status != domain.MatchStatusPending {
		return nil, apperror.Conflict("La solicitud ya fue respondida")
	}

	updated, err := u.matchRepo.UpdateStatus(ctx, matchID, status)
	if err != nil {
		return nil, repoError(err, msgMatchNotFound)
	}
	return updated, nil
}

func otherParty(m domain.Match, userID string) string {
	if m.RequesterID == userID {
		return m.AddresseeID
	}
	return m.RequesterID
}
