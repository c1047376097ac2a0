// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"harvest/config"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
)

const defaultTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Server-held key for signing session tokens.
	ttl    time.Duration // Fixed token lifetime.
}

// NewJWTService is the constructor for jwtService.
// The signing secret is injected configuration; a missing secret is a startup failure.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    ttl,
	}, nil
}

// IssueToken creates a signed HS256 token embedding the username, an issuance
// timestamp and an expiry timestamp. The signature covers the full claim set,
// so any mutation invalidates the token.
func (s *jwtService) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a token string. Signature integrity is
// checked before expiry, so a tampered token is reported as invalid even when
// its embedded expiry has also passed.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("session token has expired")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("session token failed validation")
	}

	return claims, nil
}
