package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"
	"time"

	"goals-project-backend/internal/domain"
	"goals-project-backend/internal/usecase"
	"goals-project-backend/pkg/metrics"
	"goals-project-backend/pkg/security/antivirus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var evidenceOpts = usecase.EvidenceOptions{
	MaxBytes:     1 << 20,
	MaxDimension: 64,
	JPEGQuality:  80,
	TTL:          7 * 24 * time.Hour,
}

type stubScanner struct {
	res antivirus.Result
	err error
}

func (s stubScanner) Scan(context.Context, []byte) (antivirus.Result, error) { return s.res, s.err }
func (stubScanner) Name() string                                             { return "stub" }

type evidenceDeps struct {
	repo    *MockEvidenceRepo
	goals   *MockMicroGoalRepo
	store   *MockObjectStore
	limiter *MockUploadLimiter
	uc      domain.EvidenceUsecase
}

func newEvidenceDeps() evidenceDeps {
	d := evidenceDeps{
		repo:    new(MockEvidenceRepo),
		goals:   new(MockMicroGoalRepo),
		store:   new(MockObjectStore),
		limiter: new(MockUploadLimiter),
	}
	d.uc = usecase.NewEvidenceUsecase(d.repo, d.goals, d.store, d.limiter, nil, metrics.NewManager(), evidenceOpts)
	return d
}

func TestUploadEvidence(t *testing.T) {
	ctx := context.Background()
	goal := &domain.MicroGoal{ID: "g1", UserID: "u1"}

	t.Run("Should compress, store and record the image", func(t *testing.T) {
		d := newEvidenceDeps()
		d.goals.On("GetByID", ctx, "g1").Return(goal, nil)
		d.limiter.On("Allow", ctx, "u1", mock.AnythingOfType("string")).Return(true, nil)
		d.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "u1/g1/") && strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", mock.MatchedBy(func(data []byte) bool {
			return len(data) > 3 && data[0] == 0xFF && data[1] == 0xD8
		})).Return("https://cdn.example.com/evidence/u1/g1/x.jpg", nil)
		d.repo.On("Create", ctx, mock.MatchedBy(func(e *domain.Evidence) bool {
			return e.Status == domain.EvidenceStatusPending && e.Caption != nil && *e.Caption == "Día 1" &&
				e.ExpiresAt.After(time.Now().Add(6*24*time.Hour))
		})).Return(nil)

		e, err := d.uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: pngBytes(t, 200, 100), Caption: "Día 1"})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/evidence/u1/g1/x.jpg", e.ImageURL)
		d.store.AssertExpectations(t)
		d.repo.AssertExpectations(t)
	})

	t.Run("Should reject files that are not images", func(t *testing.T) {
		d := newEvidenceDeps()
		d.goals.On("GetByID", ctx, "g1").Return(goal, nil)

		_, err := d.uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: []byte("#!/bin/sh\nrm -rf /")})
		requireAppError(t, err, http.StatusBadRequest)
		d.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject oversized uploads", func(t *testing.T) {
		d := newEvidenceDeps()
		d.goals.On("GetByID", ctx, "g1").Return(goal, nil)

		_, err := d.uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: make([]byte, evidenceOpts.MaxBytes+1)})
		requireAppError(t, err, http.StatusRequestEntityTooLarge)
	})

	t.Run("Should stop when the daily quota is spent", func(t *testing.T) {
		d := newEvidenceDeps()
		d.goals.On("GetByID", ctx, "g1").Return(goal, nil)
		d.limiter.On("Allow", ctx, "u1", mock.AnythingOfType("string")).Return(false, nil)

		_, err := d.uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: pngBytes(t, 10, 10)})
		requireAppError(t, err, http.StatusTooManyRequests)
	})

	t.Run("Should not spend quota on images that cannot be decoded", func(t *testing.T) {
		d := newEvidenceDeps()
		d.goals.On("GetByID", ctx, "g1").Return(goal, nil)
		truncated := pngBytes(t, 10, 10)[:40]

		_, err := d.uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: truncated})
		requireAppError(t, err, http.StatusBadRequest)
		d.limiter.AssertNotCalled(t, "Allow", mock.Anything, mock.Anything, mock.Anything)
		d.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should remove the object when the row cannot be saved", func(t *testing.T) {
		d := newEvidenceDeps()
		d.goals.On("GetByID", ctx, "g1").Return(goal, nil)
		d.limiter.On("Allow", ctx, "u1", mock.AnythingOfType("string")).Return(true, nil)
		d.store.On("Put", ctx, mock.Anything, "image/jpeg", mock.Anything).Return("https://cdn/x.jpg", nil)
		d.store.On("Delete", ctx, mock.Anything).Return(nil)
		d.repo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))

		_, err := d.uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: pngBytes(t, 10, 10)})
		requireAppError(t, err, http.StatusInternalServerError)
		d.store.AssertCalled(t, "Delete", ctx, mock.Anything)
	})

	t.Run("Should not upload to another user's goal", func(t *testing.T) {
		d := newEvidenceDeps()
		d.goals.On("GetByID", ctx, "g1").Return(goal, nil)

		_, err := d.uc.Upload(ctx, "intruder", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: pngBytes(t, 10, 10)})
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("Should reject images flagged by the scanner", func(t *testing.T) {
		goals := new(MockMicroGoalRepo)
		goals.On("GetByID", ctx, "g1").Return(goal, nil)
		store := new(MockObjectStore)
		opts := evidenceOpts
		opts.Scanner = stubScanner{res: antivirus.Result{Infected: true, Threat: "Eicar-Test-Signature"}}
		uc := usecase.NewEvidenceUsecase(new(MockEvidenceRepo), goals, store, nil, nil, nil, opts)

		_, err := uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: pngBytes(t, 10, 10)})
		requireAppError(t, err, http.StatusBadRequest)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fail closed when the scanner is down", func(t *testing.T) {
		goals := new(MockMicroGoalRepo)
		goals.On("GetByID", ctx, "g1").Return(goal, nil)
		opts := evidenceOpts
		opts.Scanner = stubScanner{err: antivirus.ErrUnavailable}
		uc := usecase.NewEvidenceUsecase(new(MockEvidenceRepo), goals, new(MockObjectStore), nil, nil, nil, opts)

		_, err := uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: pngBytes(t, 10, 10)})
		requireAppError(t, err, http.StatusServiceUnavailable)
	})

	t.Run("Should report 503 without storage", func(t *testing.T) {
		goals := new(MockMicroGoalRepo)
		goals.On("GetByID", ctx, "g1").Return(goal, nil)
		uc := usecase.NewEvidenceUsecase(new(MockEvidenceRepo), goals, nil, nil, nil, nil, evidenceOpts)

		_, err := uc.Upload(ctx, "u1", "g1", domain.EvidenceUpload{Filename: "foto.png", Data: pngBytes(t, 10, 10)})
		requireAppError(t, err, http.StatusServiceUnavailable)
	})
}

func TestDeleteEvidence(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete row and object", func(t *testing.T) {
		d := newEvidenceDeps()
		d.repo.On("GetByID", ctx, "e1").Return(&domain.Evidence{ID: "e1", UserID: "u1", ImageURL: "https://cdn/evidence/u1/g1/a.jpg"}, nil)
		d.repo.On("Delete", ctx, "e1").Return(nil)
		d.store.On("KeyFromURL", "https://cdn/evidence/u1/g1/a.jpg").Return("u1/g1/a.jpg", true)
		d.store.On("Delete", ctx, "u1/g1/a.jpg").Return(nil)

		require.NoError(t, d.uc.Delete(ctx, "u1", "e1"))
		d.store.AssertExpectations(t)
	})

	t.Run("Should hide other users' evidence", func(t *testing.T) {
		d := newEvidenceDeps()
		d.repo.On("GetByID", ctx, "e1").Return(&domain.Evidence{ID: "e1", UserID: "owner"}, nil)

		err := d.uc.Delete(ctx, "intruder", "e1")
		requireAppError(t, err, http.StatusNotFound)
		d.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
