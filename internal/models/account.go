package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Account holds the credentials side of a user; the gameplay profile lives in
// User, keyed by the same id.
type Account struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FieldErrors maps form field names to validation messages. Validation
// failures are surfaced per field, never as a single opaque error.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool { return len(e) == 0 }
