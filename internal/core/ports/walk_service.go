package ports

import (
	"context"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// CreateWalkInput carries all data needed to create a walk. The creator is
// always the authenticated actor, never taken from the payload.
type CreateWalkInput struct {
	Title string
	Path  []domain.GeoPoint
}

// UpdateWalkInput carries a partial walk update. nil fields are left
// untouched; a non-nil Path replaces the whole path.
type UpdateWalkInput struct {
	Title *string
	Path  []domain.GeoPoint
}

// WalkService defines use-case operations for walks.
type WalkService interface {
	// Create persists the walk and publishes a creation notification once
	// the write has succeeded.
	Create(ctx context.Context, actorID string, in CreateWalkInput) (*domain.Walk, error)
	List(ctx context.Context, page Page) ([]*domain.Walk, int64, error)
	Get(ctx context.Context, id string) (*domain.Walk, error)
	Update(ctx context.Context, actorID, id string, in UpdateWalkInput) (*domain.Walk, error)
	Replace(ctx context.Context, actorID, id string, in CreateWalkInput) (*domain.Walk, error)
	Delete(ctx context.Context, actorID, id string) error
}
