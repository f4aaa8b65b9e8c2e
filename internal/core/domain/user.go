package domain

import (
	"errors"
	"time"
)

// User models a registered identity. The password hash never leaves the
// server and plaintext passwords are never stored.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenInvalid = errors.New("invalid token")
var ErrLoginThrottled = errors.New("too many login attempts")
