package domain

import (
	"context"
	"time"
)

// TokenIssuer issues tokens (e.g. JWT) for an authenticated profile.
type TokenIssuer interface {
	Issue(profileID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the stable profile ID.
type TokenVerifier interface {
	Verify(token string) (profileID string, err error)
}

// AuthService defines signup and login. The rest of the system only sees the
// stable profile ID produced by token verification.
type AuthService interface {
	SignUp(ctx context.Context, email, password, displayName string) (*Profile, string, error)
	Login(ctx context.Context, email, password string) (*Profile, string, error)
}
