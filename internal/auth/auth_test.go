package auth

import (
	"testing"

	"checktrack/internal/models"
	"checktrack/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	reg := services.NewRegistry(t.TempDir())
	require.NoError(t, reg.Init())
	return NewService(reg.Users, "test-secret")
}

func TestAuthenticate(t *testing.T) {
	s := newService(t)

	user, token, err := s.Authenticate("superadmin", "qwefscaghev12")
	require.NoError(t, err)

	assert.Equal(t, models.RoleSuperAdmin, user.Role)
	assert.NotEmpty(t, token)
	require.NotNil(t, user.LastLogin)
	assert.False(t, user.LastLogin.IsZero())
}

func TestAuthenticateWrongPassword(t *testing.T) {
	s := newService(t)

	_, _, err := s.Authenticate("superadmin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	s := newService(t)

	_, _, err := s.Authenticate("ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveTokenRoundTrip(t *testing.T) {
	s := newService(t)

	user, token, err := s.Authenticate("managersiz", "siz2025")
	require.NoError(t, err)

	id, err := s.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestResolveTokenRejectsGarbage(t *testing.T) {
	s := newService(t)

	_, err := s.ResolveToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveTokenRejectsWrongSecret(t *testing.T) {
	reg := services.NewRegistry(t.TempDir())
	require.NoError(t, reg.Init())

	issuer := NewService(reg.Users, "secret-a")
	verifier := NewService(reg.Users, "secret-b")

	_, token, err := issuer.Authenticate("adminokk", "okk2025")
	require.NoError(t, err)

	_, err = verifier.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
