package model

import "time"

// User represents a registered account.
// PasswordHash is a bcrypt hash and is never serialized.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the user shape returned by signup and login.
type PublicUser struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Public strips everything a client should not see.
func (u *User) Public() PublicUser {
	return PublicUser{
		FullName: u.FullName,
		Email:    u.Email,
	}
}
