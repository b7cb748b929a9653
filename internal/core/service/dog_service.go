package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

var masterRule = ReferenceRule{
	Kind:     "user",
	Required: true,
	Missing:  "You must have at least one master",
}

var dislikeRule = ReferenceRule{Kind: "dog"}

// DogService implements dog CRUD with referential checks on the master and
// dislike lists.
type DogService struct {
	repo        ports.DogRepository
	accountRepo ports.AccountRepository
	logger      zerolog.Logger
}

func NewDogService(repo ports.DogRepository, accountRepo ports.AccountRepository, logger zerolog.Logger) *DogService {
	return &DogService{repo: repo, accountRepo: accountRepo, logger: logger}
}

// checkLinks validates both reference-bearing fields. It runs on every
// create and on every update or replace that touches either list.
func (s *DogService) checkLinks(ctx context.Context, masters, dislikes []string) error {
	if err := CheckReferences(ctx, masters, s.accountRepo, masterRule); err != nil {
		return err
	}
	return CheckReferences(ctx, dislikes, s.repo, dislikeRule)
}

func (s *DogService) Create(ctx context.Context, in ports.CreateDogInput) (*domain.Dog, error) {
	if err := s.checkLinks(ctx, in.Masters, in.Dislikes); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dog := &domain.Dog{
		Name:      in.Name,
		Birthdate: in.Birthdate,
		Breed:     in.Breed,
		Masters:   in.Masters,
		Dislikes:  in.Dislikes,
		Picture:   in.Picture,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, dog)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("dog_id", created.ID).Strs("masters", created.Masters).Msg("dog created")
	return created, nil
}

func (s *DogService) List(ctx context.Context, page ports.Page) ([]*domain.Dog, int64, error) {
	return s.repo.List(ctx, page)
}

func (s *DogService) Get(ctx context.Context, id string) (*domain.Dog, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DogService) Update(ctx context.Context, actorID, id string, in ports.UpdateDogInput) (*domain.Dog, error) {
	dog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !dog.OwnedBy(actorID) {
		return nil, domain.ErrForbidden
	}

	if in.Masters != nil {
		if err := CheckReferences(ctx, in.Masters, s.accountRepo, masterRule); err != nil {
			return nil, err
		}
	}
	if in.Dislikes != nil {
		if err := CheckReferences(ctx, in.Dislikes, s.repo, dislikeRule); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, ports.DogUpdate{
		Name:      in.Name,
		Birthdate: in.Birthdate,
		Breed:     in.Breed,
		Masters:   in.Masters,
		Dislikes:  in.Dislikes,
		Picture:   in.Picture,
	})
}

func (s *DogService) Replace(ctx context.Context, actorID, id string, in ports.CreateDogInput) (*domain.Dog, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.OwnedBy(actorID) {
		return nil, domain.ErrForbidden
	}
	if err := s.checkLinks(ctx, in.Masters, in.Dislikes); err != nil {
		return nil, err
	}

	dog := &domain.Dog{
		ID:        id,
		Name:      in.Name,
		Birthdate: in.Birthdate,
		Breed:     in.Breed,
		Masters:   in.Masters,
		Dislikes:  in.Dislikes,
		Picture:   in.Picture,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	return s.repo.Replace(ctx, dog)
}

func (s *DogService) Delete(ctx context.Context, actorID, id string) error {
	dog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !dog.OwnedBy(actorID) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
