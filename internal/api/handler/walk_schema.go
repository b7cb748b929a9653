package handler

import "github.com/dogwalk/dogwalk-api/internal/core/domain"

type createWalkRequest struct {
	Title string            `json:"title" validate:"required,min=3,max=40"`
	Path  []geoPointRequest `json:"path"`
}

func (r *createWalkRequest) pathToDomain() []domain.GeoPoint {
	if r.Path == nil {
		return nil
	}
	path := make([]domain.GeoPoint, len(r.Path))
	for i, p := range r.Path {
		path[i] = domain.GeoPoint{Type: p.Type, Coordinate: p.Coordinate}
	}
	return path
}

type updateWalkRequest struct {
	Title *string           `json:"title" validate:"omitempty,min=3,max=40"`
	Path  []geoPointRequest `json:"path"`
}

func (r *updateWalkRequest) pathToDomain() []domain.GeoPoint {
	if r.Path == nil {
		return nil
	}
	path := make([]domain.GeoPoint, len(r.Path))
	for i, p := range r.Path {
		path[i] = domain.GeoPoint{Type: p.Type, Coordinate: p.Coordinate}
	}
	return path
}

type walkListResponse struct {
	Data  []*domain.Walk `json:"data"`
	Total int64          `json:"total"`
}
