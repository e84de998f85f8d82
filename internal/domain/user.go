package domain

import "time"

// User is the single persisted entity of the service. Sessions and reset
// tokens are not separate tables: each lives as a nullable column on the
// user row, so a user holds at most one of each at any instant.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	SessionID      *string   `json:"-" db:"session_id"`
	ResetToken     *string   `json:"-" db:"reset_token"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
