package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

var creatorRule = ReferenceRule{
	Kind:     "user",
	Required: true,
	Missing:  "A walk must have a creator",
}

// WalkService implements walk CRUD and publishes a notification after each
// successful creation.
type WalkService struct {
	repo        ports.WalkRepository
	accountRepo ports.AccountRepository
	notifier    ports.Notifier
	logger      zerolog.Logger
}

func NewWalkService(
	repo ports.WalkRepository,
	accountRepo ports.AccountRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *WalkService {
	return &WalkService{repo: repo, accountRepo: accountRepo, notifier: notifier, logger: logger}
}

func validPath(path []domain.GeoPoint) error {
	if !domain.ValidPath(path) {
		return domain.NewValidationError("Path coordinates must be an array of two numbers")
	}
	return nil
}

func (s *WalkService) Create(ctx context.Context, actorID string, in ports.CreateWalkInput) (*domain.Walk, error) {
	if err := validPath(in.Path); err != nil {
		return nil, err
	}
	// The creator comes from the token, but the reference is still checked
	// so a deleted account cannot keep creating walks.
	if err := CheckReferences(ctx, []string{actorID}, s.accountRepo, creatorRule); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	walk := &domain.Walk{
		Title:     in.Title,
		Path:      in.Path,
		Creator:   actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, walk)
	if err != nil {
		return nil, err
	}

	// Publish only after the write has durably succeeded; failures are
	// logged, never surfaced.
	if err := s.notifier.Publish(ctx, ports.Notification{
		Event:     ports.EventWalkCreated,
		Message:   fmt.Sprintf("New walk: %s", created.Title),
		WalkID:    created.ID,
		WalkTitle: created.Title,
	}); err != nil {
		s.logger.Warn().Err(err).Str("walk_id", created.ID).Msg("failed to publish creation notification")
	}

	s.logger.Info().Str("walk_id", created.ID).Str("creator", actorID).Msg("walk created")
	return created, nil
}

func (s *WalkService) List(ctx context.Context, page ports.Page) ([]*domain.Walk, int64, error) {
	return s.repo.List(ctx, page)
}

func (s *WalkService) Get(ctx context.Context, id string) (*domain.Walk, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *WalkService) Update(ctx context.Context, actorID, id string, in ports.UpdateWalkInput) (*domain.Walk, error) {
	walk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !walk.OwnedBy(actorID) {
		return nil, domain.ErrForbidden
	}
	if in.Path != nil {
		if err := validPath(in.Path); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, ports.WalkUpdate{
		Title: in.Title,
		Path:  in.Path,
	})
}

func (s *WalkService) Replace(ctx context.Context, actorID, id string, in ports.CreateWalkInput) (*domain.Walk, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.OwnedBy(actorID) {
		return nil, domain.ErrForbidden
	}
	if err := validPath(in.Path); err != nil {
		return nil, err
	}

	walk := &domain.Walk{
		ID:        id,
		Title:     in.Title,
		Path:      in.Path,
		Creator:   existing.Creator,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	return s.repo.Replace(ctx, walk)
}

func (s *WalkService) Delete(ctx context.Context, actorID, id string) error {
	walk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !walk.OwnedBy(actorID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
