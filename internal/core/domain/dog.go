package domain

import "time"

// Dog is owned by one or more accounts ("masters"). The master list must
// never be empty and every entry must reference an existing account; every
// dislike entry must reference an existing dog.
type Dog struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Birthdate time.Time `json:"birthdate"`
	Breed     string    `json:"breed"`
	Masters   []string  `json:"master"`
	Dislikes  []string  `json:"dislike"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether accountID is one of the dog's masters.
func (d *Dog) OwnedBy(accountID string) bool {
	for _, m := range d.Masters {
		if m == accountID {
			return true
		}
	}
	return false
}
