package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"conferencecentral/internal/domain"
)

type mockTokenIssuer struct {
	token string
	err   error
}

func (m *mockTokenIssuer) Issue(profileID, email string, expiry time.Duration) (string, error) {
	return m.token, m.err
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &mockProfileRepository{}
		svc := NewAuthService(repo, &mockTokenIssuer{token: "tok"}, time.Hour)

		profile, token, err := svc.SignUp(ctx, "Alice@Example.com", "correcthorse", "Alice")
		require.NoError(t, err)
		require.Equal(t, "tok", token)
		require.Equal(t, "alice@example.com", profile.Email)
		require.Equal(t, "prof-new", profile.ID)
		require.NotEmpty(t, profile.Salt)
		require.NotEmpty(t, profile.PasswordHash)
		require.NotEqual(t, "correcthorse", profile.PasswordHash)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewAuthService(&mockProfileRepository{}, &mockTokenIssuer{}, time.Hour)
		_, _, err := svc.SignUp(ctx, "not-an-email", "correcthorse", "Alice")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewAuthService(&mockProfileRepository{}, &mockTokenIssuer{}, time.Hour)
		_, _, err := svc.SignUp(ctx, "alice@example.com", "short", "Alice")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &mockProfileRepository{err: domain.ErrDuplicateEmail}
		svc := NewAuthService(repo, &mockTokenIssuer{}, time.Hour)
		_, _, err := svc.SignUp(ctx, "alice@example.com", "correcthorse", "Alice")
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	salt := "somesalt"
	hash, err := bcrypt.GenerateFromPassword(presharedDigest(salt, "correcthorse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockProfileRepository{byEmail: map[string]*domain.Profile{
		"alice@example.com": {
			ID:           "prof-1",
			Email:        "alice@example.com",
			PasswordHash: string(hash),
			Salt:         salt,
		},
	}}
	svc := NewAuthService(repo, &mockTokenIssuer{token: "tok"}, time.Hour)

	t.Run("success normalizes email", func(t *testing.T) {
		profile, token, err := svc.Login(ctx, " Alice@Example.COM ", "correcthorse")
		require.NoError(t, err)
		require.Equal(t, "tok", token)
		require.Equal(t, "prof-1", profile.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice@example.com", "wrongpassword")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "bob@example.com", "correcthorse")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
