package ports

import (
	"context"
	"time"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// CreateDogInput carries all data needed to create a dog. It is also the
// shape of a full replace (PUT).
type CreateDogInput struct {
	Name      string
	Birthdate time.Time
	Breed     string
	Masters   []string
	Dislikes  []string
	Picture   string
}

// UpdateDogInput carries a partial dog update. nil fields are left
// untouched; a non-nil Masters or Dislikes replaces the whole list and
// re-triggers the referential check.
type UpdateDogInput struct {
	Name      *string
	Birthdate *time.Time
	Breed     *string
	Masters   []string
	Dislikes  []string
	Picture   *string
}

// DogService defines use-case operations for dogs.
type DogService interface {
	Create(ctx context.Context, in CreateDogInput) (*domain.Dog, error)
	List(ctx context.Context, page Page) ([]*domain.Dog, int64, error)
	Get(ctx context.Context, id string) (*domain.Dog, error)
	Update(ctx context.Context, actorID, id string, in UpdateDogInput) (*domain.Dog, error)
	Replace(ctx context.Context, actorID, id string, in CreateDogInput) (*domain.Dog, error)
	Delete(ctx context.Context, actorID, id string) error
}
