package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

// AccountService implements registration, login, account CRUD and the
// join/leave walk transitions.
type AccountService struct {
	repo     ports.AccountRepository
	walkRepo ports.WalkRepository
	creds    *Credentials
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewAccountService(
	repo ports.AccountRepository,
	walkRepo ports.WalkRepository,
	creds *Credentials,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		repo:     repo,
		walkRepo: walkRepo,
		creds:    creds,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *AccountService) Register(ctx context.Context, in ports.RegisterAccountInput) (*domain.Account, error) {
	if in.Localisation != nil && !in.Localisation.Valid() {
		return nil, domain.NewValidationError("Path coordinates must be an array of two numbers")
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: hash,
		Birthdate:    in.Birthdate,
		Picture:      in.Picture,
		IsAdmin:      in.IsAdmin,
		Localisation: in.Localisation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Msg("account registered")
	return created, nil
}

// Login deliberately collapses every failure (unknown email, empty password,
// wrong password) into ErrInvalidCredentials so the response never reveals
// which check failed.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.creds.Verify(password, account.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.creds.Issue(account.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("login succeeded")
	return token, account, nil
}

func (s *AccountService) List(ctx context.Context, page ports.Page) ([]*domain.Account, int64, error) {
	return s.repo.List(ctx, page)
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) Update(ctx context.Context, actorID, id string, in ports.UpdateAccountInput) (*domain.Account, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if actorID != id {
		return nil, domain.ErrForbidden
	}
	if in.Localisation != nil && !in.Localisation.Valid() {
		return nil, domain.NewValidationError("Path coordinates must be an array of two numbers")
	}

	upd := ports.AccountUpdate{
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Email:        in.Email,
		Birthdate:    in.Birthdate,
		Picture:      in.Picture,
		Localisation: in.Localisation,
	}
	if in.Password != nil {
		hash, err := s.creds.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *AccountService) Replace(ctx context.Context, actorID, id string, in ports.RegisterAccountInput) (*domain.Account, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID != id {
		return nil, domain.ErrForbidden
	}
	if in.Localisation != nil && !in.Localisation.Valid() {
		return nil, domain.NewValidationError("Path coordinates must be an array of two numbers")
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           id,
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: hash,
		Birthdate:    in.Birthdate,
		Picture:      in.Picture,
		IsAdmin:      in.IsAdmin,
		Localisation: in.Localisation,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}
	return s.repo.Replace(ctx, account)
}

func (s *AccountService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if actorID != id {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *AccountService) JoinWalk(ctx context.Context, actorID, id, walkID string) (*domain.Account, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if actorID != id {
		return nil, domain.ErrForbidden
	}

	// The walk reference is re-validated on every join, not just once.
	if err := CheckReferences(ctx, []string{walkID}, s.walkRepo, ReferenceRule{Kind: "walk"}); err != nil {
		return nil, err
	}

	walk, err := s.walkRepo.FindByID(ctx, walkID)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.SetCurrentWalk(ctx, id, &walkID)
	if err != nil {
		return nil, err
	}

	// Publish only after the write has durably succeeded; a publish failure
	// never rolls back the join.
	if err := s.notifier.Publish(ctx, ports.Notification{
		Event:     ports.EventWalkJoined,
		Message:   fmt.Sprintf("Someone joined the walk: %s", walk.Title),
		WalkID:    walk.ID,
		WalkTitle: walk.Title,
	}); err != nil {
		s.logger.Warn().Err(err).Str("walk_id", walk.ID).Msg("failed to publish join notification")
	}

	s.logger.Info().Str("account_id", id).Str("walk_id", walkID).Msg("account joined walk")
	return account, nil
}

func (s *AccountService) LeaveWalk(ctx context.Context, actorID, id string) (*domain.Account, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if actorID != id {
		return nil, domain.ErrForbidden
	}

	account, err := s.repo.SetCurrentWalk(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", id).Msg("account left walk")
	return account, nil
}
