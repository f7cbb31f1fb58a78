package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	newRepo := func() *mockProfileRepository {
		return &mockProfileRepository{profiles: map[string]*domain.Profile{
			"prof-1": {ID: "prof-1", Email: "alice@example.com", DisplayName: "Alice", ShirtSize: "M"},
		}}
	}

	t.Run("updates name and shirt size", func(t *testing.T) {
		repo := newRepo()
		svc := NewProfileService(repo)
		profile, err := svc.UpdateProfile(ctx, "prof-1", "Alice Cooper", "XL")
		require.NoError(t, err)
		require.Equal(t, "Alice Cooper", profile.DisplayName)
		require.Equal(t, "XL", profile.ShirtSize)
		require.Len(t, repo.updated, 1)
	})

	t.Run("blank fields leave values untouched", func(t *testing.T) {
		svc := NewProfileService(newRepo())
		profile, err := svc.UpdateProfile(ctx, "prof-1", "  ", "")
		require.NoError(t, err)
		require.Equal(t, "Alice", profile.DisplayName)
		require.Equal(t, "M", profile.ShirtSize)
	})

	t.Run("invalid shirt size", func(t *testing.T) {
		svc := NewProfileService(newRepo())
		_, err := svc.UpdateProfile(ctx, "prof-1", "", "XXXS")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("profile not found", func(t *testing.T) {
		svc := NewProfileService(&mockProfileRepository{})
		_, err := svc.UpdateProfile(ctx, "missing", "Bob", "")
		require.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	repo := &mockProfileRepository{profiles: map[string]*domain.Profile{
		"prof-1": {ID: "prof-1", Email: "alice@example.com"},
	}}
	svc := NewProfileService(repo)

	profile, err := svc.GetProfile(ctx, "prof-1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", profile.Email)

	_, err = svc.GetProfile(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}
