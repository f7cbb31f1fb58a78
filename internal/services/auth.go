package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"conferencecentral/internal/domain"
)

const (
	bcryptCost     = 10
	minPasswordLen = 8
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	profileRepo domain.ProfileRepository
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService backed by the profile repository and
// the given token issuer. Signup creates the profile eagerly, so every
// authenticated caller has a profile row by construction.
func NewAuthService(profileRepo domain.ProfileRepository, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		profileRepo: profileRepo,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, displayName string) (*domain.Profile, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, "", fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	saltBytes := make([]byte, 32)
	if _, err := rand.Read(saltBytes); err != nil {
		return nil, "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)

	hash, err := bcrypt.GenerateFromPassword(presharedDigest(salt, password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	profile := domain.NewProfile(email, strings.TrimSpace(displayName), now, now)
	profile.PasswordHash = string(hash)
	profile.Salt = salt

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, "", domain.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("create profile: %w", err)
	}

	token, err := s.tokenIssuer.Issue(profile.ID, profile.Email, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return profile, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Profile, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get profile by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), presharedDigest(profile.Salt, password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(profile.ID, profile.Email, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return profile, token, nil
}

// presharedDigest folds salt+password through SHA256 before bcrypt, keeping
// the bcrypt input under its 72-byte limit regardless of password length.
func presharedDigest(salt, password string) []byte {
	sum := sha256.Sum256([]byte(salt + password))
	return []byte(hex.EncodeToString(sum[:]))
}
