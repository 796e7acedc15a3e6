package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or missing token")
)

// LoginRequest carries the credential pair: email plus document number.
// There are no passwords in this system.
type LoginRequest struct {
	Email          string `json:"email"`
	DocumentNumber string `json:"document_number"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
