package ports

import (
	"context"
	"time"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// DogUpdate carries the mutable dog fields for a partial update.
// nil pointers leave the stored value untouched; Masters and Dislikes
// replace the whole list when non-nil.
type DogUpdate struct {
	Name      *string
	Birthdate *time.Time
	Breed     *string
	Masters   []string
	Dislikes  []string
	Picture   *string
}

// DogRepository defines persistence operations for dogs.
type DogRepository interface {
	Create(ctx context.Context, d *domain.Dog) (*domain.Dog, error)
	FindByID(ctx context.Context, id string) (*domain.Dog, error)
	// List returns a page of dogs sorted by name plus the total count.
	List(ctx context.Context, page Page) ([]*domain.Dog, int64, error)
	Update(ctx context.Context, id string, upd DogUpdate) (*domain.Dog, error)
	Replace(ctx context.Context, d *domain.Dog) (*domain.Dog, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
