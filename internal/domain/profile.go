package domain

import (
	"context"
	"time"
)

// Shirt size preference values. Stored as-is on the profile.
const (
	ShirtSizeNotSpecified = "NOT_SPECIFIED"
)

// ValidShirtSizes enumerates the accepted shirt_size values.
var ValidShirtSizes = []string{
	ShirtSizeNotSpecified,
	"XS_M", "XS_W",
	"S_M", "S_W",
	"M_M", "M_W",
	"L_M", "L_W",
	"XL_M", "XL_W",
	"XXL_M", "XXL_W",
	"XXXL_M", "XXXL_W",
}

// IsValidShirtSize reports whether s is an accepted shirt size value.
func IsValidShirtSize(s string) bool {
	for _, v := range ValidShirtSizes {
		if s == v {
			return true
		}
	}
	return false
}

// Profile represents an end user: identity, preferences, and the conferences
// and sessions they follow (attendance and wishlist live in their own tables).
// swagger:model Profile
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	ShirtSize    string    `json:"shirt_size"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProfile returns a new Profile. ID is set by the repository on create.
func NewProfile(email, displayName string, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		Email:       email,
		DisplayName: displayName,
		ShirtSize:   ShirtSizeNotSpecified,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// ProfileRepository defines the interface for profile storage.
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

// ProfileService defines profile read/update operations for the
// authenticated user.
type ProfileService interface {
	GetProfile(ctx context.Context, profileID string) (*Profile, error)
	// UpdateProfile applies the non-empty fields and returns the updated profile.
	UpdateProfile(ctx context.Context, profileID, displayName, shirtSize string) (*Profile, error)
}
