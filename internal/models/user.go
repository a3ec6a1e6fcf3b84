package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Display name, defaults to the email local part
	Email        string    `json:"email" db:"email"`           // Unique normalized email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
