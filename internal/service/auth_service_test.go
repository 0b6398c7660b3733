package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"veridoc/internal/config"
	"veridoc/internal/domain"
	"veridoc/internal/service"
	"veridoc/mocks"
)

func setupAuth() (*mocks.MockUserRepo, service.AuthService) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, config.JWTConfig{
		Secret:             "test-secret-key-for-auth-tests",
		Issuer:             "veridoc",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	})
	return userRepo, svc
}

func authUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "qa.lead@veridoc.local",
		FullName:     "Priya Nair",
		Role:         domain.RoleQualityAssurance,
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo, svc := setupAuth()

	user := authUser("correct-horse-battery")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleQualityAssurance, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo, svc := setupAuth()

	user := authUser("correct-horse-battery")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "wrong-password-entirely",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidLogin)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo, svc := setupAuth()

	userRepo.On("GetByEmail", mock.Anything, "nobody@veridoc.local").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@veridoc.local",
		Password: "whatever-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidLogin)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo, svc := setupAuth()

	user := authUser("correct-horse-battery")
	user.IsActive = false
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-horse-battery",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestValidateToken_RejectsRefreshToken(t *testing.T) {
	userRepo, svc := setupAuth()

	user := authUser("correct-horse-battery")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	// A refresh token must not pass as an access token.
	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshToken_RotatesPair(t *testing.T) {
	userRepo, svc := setupAuth()

	user := authUser("correct-horse-battery")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	claims, err := svc.ValidateToken(rotated.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	userRepo, svc := setupAuth()

	user := authUser("correct-horse-battery")
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
