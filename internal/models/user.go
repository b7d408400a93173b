package models

// User is read-only from the favorites point of view. Password holds the
// stored hash and is never serialized.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsActive bool   `json:"isActive"`
}
