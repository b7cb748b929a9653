package domain

// GeoPointType is the only accepted GeoJSON geometry type.
const GeoPointType = "Point"

// GeoPoint is a GeoJSON-style point: a type tag plus a coordinate array of
// longitude, latitude and an optional altitude.
type GeoPoint struct {
	Type       string    `json:"type" bson:"type"`
	Coordinate []float64 `json:"coordinate" bson:"coordinate"`
}

// Valid reports whether the point is a usable geographic coordinate.
// An empty coordinate array is valid and means "no location set".
// Otherwise the array must hold 2 or 3 numbers with a longitude in
// [-180,180] first and a latitude in [-90,90] second. Pure and total.
func (p GeoPoint) Valid() bool {
	if len(p.Coordinate) == 0 {
		return true
	}
	if p.Type != GeoPointType {
		return false
	}
	if len(p.Coordinate) < 2 || len(p.Coordinate) > 3 {
		return false
	}
	return isLongitude(p.Coordinate[0]) && isLatitude(p.Coordinate[1])
}

// Empty reports whether no location is set.
func (p GeoPoint) Empty() bool {
	return len(p.Coordinate) == 0
}

func isLatitude(v float64) bool { return v >= -90 && v <= 90 }

func isLongitude(v float64) bool { return v >= -180 && v <= 180 }
