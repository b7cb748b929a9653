package domain

import "time"

// Account models a registered person. The password hash never leaves the
// server: it is excluded from JSON marshalling entirely.
type Account struct {
	ID           string    `json:"id"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Birthdate    time.Time `json:"birthdate"`
	Picture      string    `json:"picture"`
	IsAdmin      bool      `json:"isAdmin"`
	Localisation *GeoPoint `json:"localisation,omitempty"`
	// CurrentWalk references the walk the account is currently on.
	// nil means no walk.
	CurrentWalk *string   `json:"currentWalk"`
	DogCount    int64     `json:"dogCount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
