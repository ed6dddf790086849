package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"availio-admin/internal/domain/entity"
	apperrors "availio-admin/pkg/errors"
)

func newAuthFixture(users ...*entity.User) (*AuthUseCase, *fakeAuthClient) {
	auth := &fakeAuthClient{token: "id-token", refresh: "refresh-token"}
	uc := NewAuthUseCase(&fakeUserRepo{users: users}, auth)
	return uc, auth
}

func TestLoginRequiresBothFields(t *testing.T) {
	uc, auth := newAuthFixture()

	for _, creds := range [][2]string{{"", ""}, {"a@b.com", ""}, {"", "secret"}, {"  ", "  "}} {
		_, err := uc.Login(context.Background(), creds[0], creds[1])

		assert.Error(t, err)
		assert.EqualError(t, err, "BAD_REQUEST: Please enter both email and password.")
	}
	assert.Zero(t, auth.signInCalls)
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	uc, auth := newAuthFixture()

	_, err := uc.Login(context.Background(), "not-an-email", "secret")

	assert.EqualError(t, err, "BAD_REQUEST: Invalid email format.")
	// The identity provider is never reached.
	assert.Zero(t, auth.signInCalls)
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, auth := newAuthFixture()

	_, err := uc.Login(context.Background(), "ghost@mail.com", "secret")

	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
	assert.Zero(t, auth.signInCalls)
}

func TestLoginNonAdminRole(t *testing.T) {
	uc, auth := newAuthFixture(&entity.User{ID: "u1", Email: "owner@mail.com", Role: entity.RoleOwner})

	_, err := uc.Login(context.Background(), "owner@mail.com", "secret")

	assert.True(t, apperrors.Is(err, "FORBIDDEN"))
	assert.Contains(t, err.Error(), "Insufficient Permission")
	assert.Zero(t, auth.signInCalls)
}

func TestLoginSurfacesRawProviderError(t *testing.T) {
	uc, auth := newAuthFixture(&entity.User{ID: "u1", Email: "admin@mail.com", Role: entity.RoleAdmin})
	auth.signInErr = fmt.Errorf("INVALID_PASSWORD")

	_, err := uc.Login(context.Background(), "admin@mail.com", "wrong")

	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
	assert.Contains(t, err.Error(), "INVALID_PASSWORD")
}

func TestLoginSuccess(t *testing.T) {
	uc, auth := newAuthFixture(&entity.User{ID: "u1", Email: "admin@mail.com", Role: entity.RoleAdmin})

	result, err := uc.Login(context.Background(), " admin@mail.com ", " secret ")

	assert.NoError(t, err)
	assert.Equal(t, "id-token", result.Token)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, 1, auth.signInCalls)
}

func TestSession(t *testing.T) {
	uc, auth := newAuthFixture(&entity.User{ID: "u1", Email: "admin@mail.com", Role: entity.RoleAdmin})
	auth.verifyUID = "u1"

	user, err := uc.Session(context.Background(), "some-token")

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestLogoutRevokesTokens(t *testing.T) {
	uc, auth := newAuthFixture()

	assert.NoError(t, uc.Logout(context.Background(), "u1"))
	assert.Equal(t, []string{"u1"}, auth.revoked)
}
