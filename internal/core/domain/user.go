package domain

import "time"

// User models a registered account. The password hash embeds its bcrypt salt,
// so no separate salt column exists.
type User struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
