package domain

import (
	"context"
	"time"
)

const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
)

// Match is a connection request from RequesterID to AddresseeID.
// CommonGoals holds the shared focus areas followed by the shared interests.
type Match struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	AddresseeID string    `json:"addressee_id"`
	Score       int       `json:"score"`
	CommonGoals []string  `json:"common_goals"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// MatchCard is a ranked candidate with the data shown on its card.
type MatchCard struct {
	Profile          PublicProfile `json:"profile"`
	Score            int           `json:"score"`
	CommonFocusAreas []string      `json:"common_focus_areas"`
	CommonInterests  []string      `json:"common_interests"`
}

// MatchRequest is a Match with the other party's profile attached.
type MatchRequest struct {
	Match
	Other PublicProfile `json:"other"`
}

type MatchRequests struct {
	Incoming []MatchRequest `json:"incoming"`
	Outgoing []MatchRequest `json:"outgoing"`
}

type MatchResponseInput struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type MatchRepository interface {
	Create(ctx context.Context, m *Match) error
	GetByID(ctx context.Context, id string) (*Match, error)
	// FindBetween returns the request between a and b in either direction.
	FindBetween(ctx context.Context, a, b string) (*Match, error)
	ListByUser(ctx context.Context, userID string) ([]Match, error)
	UpdateStatus(ctx context.Context, id, status string) (*Match, error)
}

type MatchUsecase interface {
	ListMatches(ctx context.Context, userID string) ([]MatchCard, error)
	RequestConnection(ctx context.Context, userID, targetID string) (*Match, error)
	ListRequests(ctx context.Context, userID string) (*MatchRequests, error)
	Respond(ctx context.Context, userID, matchID, status string) (*Match, error)
}
