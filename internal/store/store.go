package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ActivityKind string

const (
	ActivityCreated         ActivityKind = "created"
	ActivityImported        ActivityKind = "imported"
	ActivityDeleted         ActivityKind = "deleted"
	ActivityExpertSubmitted ActivityKind = "expert_submitted"
)

// Activity is one user action against a survey, shown on the home page.
type Activity struct {
	ID        uuid.UUID    `json:"id"`
	Kind      ActivityKind `json:"kind"`
	ModelID   string       `json:"model_id"`
	ModelName string       `json:"model_name"`
	CreatedAt time.Time    `json:"created_at"`
}

type Store interface {
	Record(ctx context.Context, a *Activity) error
	Recent(ctx context.Context, limit int) ([]*Activity, error)
	Close() error
}
