package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims embedded in a session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed, time-bounded session token for the given username.
	IssueToken(username string) (string, error)

	// ValidateToken checks the validity of a token string. Signature integrity
	// is checked before expiry: a tampered token fails with ErrTokenInvalid,
	// an outdated one with ErrTokenExpired (via the domain error taxonomy).
	ValidateToken(tokenString string) (*Claims, error)
}
