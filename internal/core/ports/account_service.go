package ports

import (
	"context"
	"time"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// RegisterAccountInput carries all data needed to create an account. It is
// also the shape of a full replace (PUT).
type RegisterAccountInput struct {
	Firstname    string
	Lastname     string
	Email        string
	Password     string
	Birthdate    time.Time
	Picture      string
	IsAdmin      bool
	Localisation *domain.GeoPoint
}

// UpdateAccountInput carries a partial account update. nil fields are left
// untouched.
type UpdateAccountInput struct {
	Firstname    *string
	Lastname     *string
	Email        *string
	Password     *string
	Birthdate    *time.Time
	Picture      *string
	Localisation *domain.GeoPoint
}

// AccountService defines use-case operations for accounts.
type AccountService interface {
	Register(ctx context.Context, in RegisterAccountInput) (*domain.Account, error)
	// Login verifies the credentials and returns a signed bearer token.
	// Every failure mode collapses into domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	List(ctx context.Context, page Page) ([]*domain.Account, int64, error)
	Get(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, actorID, id string, in UpdateAccountInput) (*domain.Account, error)
	Replace(ctx context.Context, actorID, id string, in RegisterAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, actorID, id string) error
	// JoinWalk puts the account on the given walk and publishes a join
	// notification once the write has succeeded.
	JoinWalk(ctx context.Context, actorID, id, walkID string) (*domain.Account, error)
	LeaveWalk(ctx context.Context, actorID, id string) (*domain.Account, error)
}
