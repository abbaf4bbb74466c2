package domain

import (
	"context"
	"time"
)

const (
	EvidenceStatusPending  = "pending"
	EvidenceStatusApproved = "approved"
	EvidenceStatusExpired  = "expired"
)

// Evidence is a photo proving progress on a weekly goal.
type Evidence struct {
	ID          string    `json:"id"`
	MicroGoalID string    `json:"micro_goal_id"`
	UserID      string    `json:"user_id"`
	ImageURL    string    `json:"image_url"`
	Caption     *string   `json:"caption"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// EvidenceUpload is a raw image as received from the client.
type EvidenceUpload struct {
	Filename string
	Data     []byte
	Caption  string
}

type EvidenceRepository interface {
	Create(ctx context.Context, e *Evidence) error
	GetByID(ctx context.Context, id string) (*Evidence, error)
	ListByGoal(ctx context.Context, microGoalID string) ([]Evidence, error)
	// ListByGoals returns the evidence of every listed goal keyed by goal id.
	ListByGoals(ctx context.Context, microGoalIDs []string) (map[string][]Evidence, error)
	Delete(ctx context.Context, id string) error
}

// ObjectStore is the bucket evidence images are written to.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) (string, bool)
}

// UploadLimiter caps how many uploads a user may make in a window.
type UploadLimiter interface {
	Allow(ctx context.Context, userID, uploadID string) (bool, error)
}

type EvidenceUsecase interface {
	Upload(ctx context.Context, userID, microGoalID string, in EvidenceUpload) (*Evidence, error)
	List(ctx context.Context, userID, microGoalID string) ([]Evidence, error)
	Delete(ctx context.Context, userID, id string) error
}
