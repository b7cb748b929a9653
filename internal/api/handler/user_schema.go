package handler

import (
	"time"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// errorResponse documents the error envelope rendered by the central error
// handler.
type errorResponse struct {
	Error string `json:"error"`
}

type geoPointRequest struct {
	Type       string    `json:"type"`
	Coordinate []float64 `json:"coordinate"`
}

func (g *geoPointRequest) toDomain() *domain.GeoPoint {
	if g == nil {
		return nil
	}
	return &domain.GeoPoint{Type: g.Type, Coordinate: g.Coordinate}
}

// Field limits mirror the original schema constraints.
type registerUserRequest struct {
	Firstname    string           `json:"firstname" validate:"required,min=2,max=30"`
	Lastname     string           `json:"lastname"  validate:"required,min=2,max=30"`
	Email        string           `json:"email"     validate:"required,email"`
	Password     string           `json:"password"  validate:"required,min=8"`
	Birthdate    time.Time        `json:"birthdate" validate:"required"`
	Picture      string           `json:"picture"   validate:"required"`
	IsAdmin      bool             `json:"isAdmin"`
	Localisation *geoPointRequest `json:"localisation"`
}

type updateUserRequest struct {
	Firstname    *string          `json:"firstname" validate:"omitempty,min=2,max=30"`
	Lastname     *string          `json:"lastname"  validate:"omitempty,min=2,max=30"`
	Email        *string          `json:"email"     validate:"omitempty,email"`
	Password     *string          `json:"password"  validate:"omitempty,min=8"`
	Birthdate    *time.Time       `json:"birthdate"`
	Picture      *string          `json:"picture"`
	Localisation *geoPointRequest `json:"localisation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type userListResponse struct {
	Data  []*domain.Account `json:"data"`
	Total int64             `json:"total"`
}
