package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/imaging"
	"goals-project-backend/pkg/logger"
	"goals-project-backend/pkg/metrics"
	"goals-project-backend/pkg/security"
	"goals-project-backend/pkg/security/antivirus"

	"github.com/google/uuid"
)

const msgEvidenceNotFound = "Evidencia no encontrada"

// EvidenceOptions bounds what an upload may be and how it is stored.
type EvidenceOptions struct {
	MaxBytes     int
	MaxDimension int
	JPEGQuality  int
	TTL          time.Duration
	// Scanner is optional; nil skips malware scanning.
	Scanner      antivirus.Scanner
}

type evidenceUsecase struct {
	repo     domain.EvidenceRepository
	goalRepo domain.MicroGoalRepository
	store    domain.ObjectStore
	limiter  domain.UploadLimiter
	audit    *security.SecurityLogger
	metrics  *metrics.Manager
	opts     EvidenceOptions
	now      func() time.Time
}

// NewEvidenceUsecase wires evidence uploads. store may be nil when object
// storage is not configured; uploads then fail with 503.
func NewEvidenceUsecase(
	repo domain.EvidenceRepository,
	goalRepo domain.MicroGoalRepository,
	store domain.ObjectStore,
	limiter domain.UploadLimiter,
	audit *security.SecurityLogger,
	m *metrics.Manager,
	opts EvidenceOptions,
) domain.EvidenceUsecase {
	return &evidenceUsecase{
		repo:     repo,
		goalRepo: goalRepo,
		store:    store,
		limiter:  limiter,
		audit:    audit,
		metrics:  m,
		opts:     opts,
		now:      time.Now,
	}
}

func (u *evidenceUsecase) Upload(ctx context.Context, userID, microGoalID string, in domain.EvidenceUpload) (*domain.Evidence, error) {
	goal, err := ownedMicroGoal(ctx, u.goalRepo, userID, microGoalID)
	if err != nil {
		return nil, err
	}
	if u.store == nil {
		return nil, apperror.Unavailable("El almacenamiento de evidencias no está disponible")
	}

	if u.opts.MaxBytes > 0 && len(in.Data) > u.opts.MaxBytes {
		u.reject(ctx, userID, in.Filename, "too large")
		return nil, apperror.TooLarge(fmt.Sprintf("La imagen supera el máximo de %d MB", u.opts.MaxBytes/(1024*1024)))
	}
	if utf8.RuneCountInString(in.Caption) > 500 {
		return nil, apperror.BadRequest("Descripción de la evidencia: Máximo 500 caracteres")
	}

	check := security.ValidateImage(in.Filename, in.Data)
	if !check.Valid {
		u.reject(ctx, userID, in.Filename, check.Error)
		return nil, apperror.BadRequest(check.Error)
	}
	if err := u.scan(ctx, userID, in); err != nil {
		return nil, err
	}

	compressed, info, err := imaging.Compress(in.Data, u.opts.MaxDimension, u.opts.JPEGQuality)
	if err != nil {
		if errors.Is(err, imaging.ErrDecode) {
			u.reject(ctx, userID, in.Filename, "undecodable image")
			return nil, apperror.Invalid("No se pudo leer la imagen", err)
		}
		u.metrics.RecordEvidenceUpload(metrics.OutcomeFailed, 0)
		return nil, apperror.Internal(err)
	}

	// Only images that will actually be stored use up a quota slot.
	uploadID := uuid.NewString()
	if u.limiter != nil {
		allowed, err := u.limiter.Allow(ctx, userID, uploadID)
		if err != nil {
			logger.Log.Warn("Upload limiter unavailable", "user_id", userID, "error", err)
		}
		if !allowed {
			u.metrics.RecordEvidenceUpload(metrics.OutcomeLimited, 0)
			return nil, apperror.New(http.StatusTooManyRequests, "Has alcanzado el límite diario de evidencias", nil)
		}
	}

	key := fmt.Sprintf("%s/%s/%s.jpg", userID, goal.ID, uploadID)
	url, err := u.store.Put(ctx, key, "image/jpeg", compressed)
	if err != nil {
		u.metrics.RecordEvidenceUpload(metrics.OutcomeFailed, 0)
		return nil, apperror.Internal(err)
	}

	evidence := &domain.Evidence{
		MicroGoalID: goal.ID,
		UserID:      userID,
		ImageURL:    url,
		Caption:     optionalString(in.Caption),
		Status:      domain.EvidenceStatusPending,
		ExpiresAt:   u.now().Add(u.opts.TTL).UTC(),
	}
	if err := u.repo.Create(ctx, evidence); err != nil {
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			logger.Log.Error("Failed to remove orphaned evidence object", "key", key, "error", delErr)
		}
		u.metrics.RecordEvidenceUpload(metrics.OutcomeFailed, 0)
		return nil, repoError(err, msgWeeklyGoalNotFound)
	}

	u.metrics.RecordEvidenceUpload(metrics.OutcomeStored, len(compressed))
	logger.Log.Info("Evidence stored",
		"user_id", userID, "micro_goal_id", goal.ID, "source_format", info.SourceFormat,
		"width", info.Width, "height", info.Height, "bytes", len(compressed))
	return evidence, nil
}

func (u *evidenceUsecase) List(ctx context.Context, userID, microGoalID string) ([]domain.Evidence, error) {
	goal, err := ownedMicroGoal(ctx, u.goalRepo, userID, microGoalID)
	if err != nil {
		return nil, err
	}
	evidence, err := u.repo.ListByGoal(ctx, goal.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return evidence, nil
}

func (u *evidenceUsecase) Delete(ctx context.Context, userID, id string) error {
	evidence, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return repoError(err, msgEvidenceNotFound)
	}
	if evidence.UserID != userID {
		return apperror.NotFound(msgEvidenceNotFound)
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return repoError(err, msgEvidenceNotFound)
	}

	if u.store == nil {
		return nil
	}
	if key, ok := u.store.KeyFromURL(evidence.ImageURL); ok {
		if err := u.store.Delete(ctx, key); err != nil {
			logger.Log.Warn("Failed to delete evidence object", "key", key, "error", err)
		}
	}
	return nil
}

func (u *evidenceUsecase) scan(ctx context.Context, userID string, in domain.EvidenceUpload) error {
	if u.opts.Scanner == nil {
		return nil
	}
	res, err := u.opts.Scanner.Scan(ctx, in.Data)
	if err != nil {
		logger.Log.Error("Evidence scan failed", "scanner", u.opts.Scanner.Name(), "error", err)
		u.metrics.RecordEvidenceUpload(metrics.OutcomeFailed, 0)
		return apperror.Unavailable("No se pudo verificar la imagen, inténtalo más tarde")
	}
	if res.Infected {
		u.reject(ctx, userID, in.Filename, "malware: "+res.Threat)
		return apperror.BadRequest("La imagen contiene contenido malicioso")
	}
	return nil
}

func (u *evidenceUsecase) reject(ctx context.Context, userID, filename, reason string) {
	u.metrics.RecordEvidenceUpload(metrics.OutcomeRejected, 0)
	u.audit.LogUploadRejected(ctx, userID, filename, reason)
}
