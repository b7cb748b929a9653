package handler

import (
	"time"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// Field limits mirror the original schema constraints. The master list is
// validated for referential integrity by the service, not here.
type createDogRequest struct {
	Name      string    `json:"name"      validate:"required,min=2,max=20"`
	Birthdate time.Time `json:"birthdate" validate:"required"`
	Breed     string    `json:"breed"     validate:"required,min=3,max=40"`
	Masters   []string  `json:"master"`
	Dislikes  []string  `json:"dislike"`
	Picture   string    `json:"picture"   validate:"required"`
}

type updateDogRequest struct {
	Name      *string    `json:"name"  validate:"omitempty,min=2,max=20"`
	Birthdate *time.Time `json:"birthdate"`
	Breed     *string    `json:"breed" validate:"omitempty,min=3,max=40"`
	Masters   []string   `json:"master"`
	Dislikes  []string   `json:"dislike"`
	Picture   *string    `json:"picture"`
}

type dogListResponse struct {
	Data  []*domain.Dog `json:"data"`
	Total int64         `json:"total"`
}
