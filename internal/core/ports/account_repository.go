package ports

import (
	"context"
	"time"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// AccountUpdate carries the mutable account fields for a partial update.
// nil pointers leave the stored value untouched.
type AccountUpdate struct {
	Firstname    *string
	Lastname     *string
	Email        *string
	PasswordHash *string
	Birthdate    *time.Time
	Picture      *string
	Localisation *domain.GeoPoint
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// List returns a page of accounts sorted by firstname, each annotated
	// with its dog count, plus the total number of accounts.
	List(ctx context.Context, page Page) ([]*domain.Account, int64, error)
	Update(ctx context.Context, id string, upd AccountUpdate) (*domain.Account, error)
	Replace(ctx context.Context, a *domain.Account) (*domain.Account, error)
	// SetCurrentWalk sets the account's current walk; nil clears it.
	SetCurrentWalk(ctx context.Context, id string, walkID *string) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	// Exists reports whether an account with the given ID is stored.
	Exists(ctx context.Context, id string) (bool, error)
}
