package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/feliperb/gympoint/internal/pkg/apperrors"
	"github.com/feliperb/gympoint/internal/pkg/auth"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *auth.JWTService) {
	repo := newFakeUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "gympoint.test",
	})
	return NewAuthService(repo, jwtService, zerolog.Nop()), repo, jwtService
}

func TestRegisterHashesPassword(t *testing.T) {
	service, repo, _ := newAuthFixture()

	user, err := service.Register(context.Background(), &dto.UserStoreRequest{
		Name:     "Admin",
		Email:    "admin@gympoint.com",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "123456", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "123456"))

	stored, err := repo.GetByEmail(context.Background(), "admin@gympoint.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestRegisterDuplicatedEmail(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &dto.UserStoreRequest{
		Name: "Admin", Email: "admin@gympoint.com", Password: "123456",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), &dto.UserStoreRequest{
		Name: "Other", Email: "admin@gympoint.com", Password: "abcdef",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicatedEmail)
}

func TestLoginIssuesValidToken(t *testing.T) {
	service, _, jwtService := newAuthFixture()

	registered, err := service.Register(context.Background(), &dto.UserStoreRequest{
		Name: "Admin", Email: "admin@gympoint.com", Password: "123456",
	})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), &dto.SessionStoreRequest{
		Email:    "admin@gympoint.com",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, session.User.ID)
	assert.Equal(t, "admin@gympoint.com", session.User.Email)

	claims, err := jwtService.ValidateAndExtractClaims(session.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
}

func TestLoginUnknownUser(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Login(context.Background(), &dto.SessionStoreRequest{
		Email:    "ghost@gympoint.com",
		Password: "123456",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &dto.UserStoreRequest{
		Name: "Admin", Email: "admin@gympoint.com", Password: "123456",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &dto.SessionStoreRequest{
		Email:    "admin@gympoint.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
}
