package domain

import "time"

// Walk is a group outing along an ordered path of geographic points,
// owned by the single account that created it.
type Walk struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Path      []GeoPoint `json:"path"`
	Creator   string     `json:"creator"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// OwnedBy reports whether accountID created the walk.
func (w *Walk) OwnedBy(accountID string) bool {
	return w.Creator == accountID
}

// ValidPath reports whether every point on path is a valid, non-empty
// coordinate. An empty path is allowed.
func ValidPath(path []GeoPoint) bool {
	for _, p := range path {
		if p.Empty() || !p.Valid() {
			return false
		}
	}
	return true
}
