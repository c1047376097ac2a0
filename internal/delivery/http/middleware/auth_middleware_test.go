package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) IssueToken(username string) (string, error) {
	return "", nil
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	return s.claims, s.err
}

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(ContextKeyUsername).(string))
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)

	return rec, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := &stubTokenService{claims: &service.Claims{Username: "alice"}}

	rec, err := runAuthenticate(t, tokenSvc, "Bearer some-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, err := runAuthenticate(t, &stubTokenService{}, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec, err := runAuthenticate(t, &stubTokenService{}, "Basic abc123")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be Bearer token")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := &stubTokenService{err: domainerrors.ErrTokenInvalid}

	_, err := runAuthenticate(t, tokenSvc, "Bearer bad-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := &stubTokenService{err: domainerrors.ErrTokenExpired}

	_, err := runAuthenticate(t, tokenSvc, "Bearer stale-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}
