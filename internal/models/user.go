package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Only users with the admin flag may manage
// categories and posts; registration always creates non-admin users.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
