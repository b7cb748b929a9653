package ports

import (
	"context"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// Page carries pagination parameters. Page is 1-based; Size is capped at
// 100 by the transport layer.
type Page struct {
	Page int
	Size int
}

// Skip returns the number of records to skip for this page.
func (p Page) Skip() int64 {
	return int64(p.Page-1) * int64(p.Size)
}

// WalkUpdate carries the mutable walk fields for a partial update. The
// creator is immutable once set.
type WalkUpdate struct {
	Title *string
	Path  []domain.GeoPoint
}

// WalkRepository defines persistence operations for walks.
type WalkRepository interface {
	Create(ctx context.Context, w *domain.Walk) (*domain.Walk, error)
	FindByID(ctx context.Context, id string) (*domain.Walk, error)
	// List returns a page of walks sorted by title plus the total count.
	List(ctx context.Context, page Page) ([]*domain.Walk, int64, error)
	Update(ctx context.Context, id string, upd WalkUpdate) (*domain.Walk, error)
	Replace(ctx context.Context, w *domain.Walk) (*domain.Walk, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
