package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/service"
	mockSvc "raidhub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestAuthMiddleware_Authenticate_NoHeaderPassesThrough(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c := newTestContext(t, "")
	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	err := m.Authenticate(next)(c)

	require.NoError(t, err)
	assert.True(t, called)

	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_Authenticate_NonBearerSchemePassesThrough(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c := newTestContext(t, "Basic dXNlcjpwYXNz")
	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	err := m.Authenticate(next)(c)

	require.NoError(t, err)
	assert.True(t, called)

	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_Authenticate_ValidTokenSetsUserID(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		Validate("valid-token").
		Return(&service.Claims{UserID: 42, LineUserID: "U1234567890"}, nil)

	c := newTestContext(t, "Bearer valid-token")
	next := func(c echo.Context) error { return nil }

	err := m.Authenticate(next)(c)

	require.NoError(t, err)

	userID, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestAuthMiddleware_Authenticate_InvalidTokenRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		Validate("bad-token").
		Return(nil, domainerrors.ErrTokenInvalid)

	c := newTestContext(t, "Bearer bad-token")
	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	err := m.Authenticate(next)(c)

	assert.Error(t, err)
	assert.False(t, called)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthMiddleware_RequireUser_Authenticated(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c := newTestContext(t, "")
	c.Set(keyUserID, int64(42))

	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	err := m.RequireUser(next)(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireUser_Unauthenticated(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c := newTestContext(t, "")
	next := func(c echo.Context) error { return nil }

	err := m.RequireUser(next)(c)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
