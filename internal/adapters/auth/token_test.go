package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTIssueAndVerify(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("test-secret")

	token, err := issuer.Issue("prof-1", "alice@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	profileID, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "prof-1", profileID)
}

func TestJWTVerify_WrongSecret(t *testing.T) {
	issuer := NewJWTIssuer("secret-a")
	verifier := NewJWTVerifier("secret-b")

	token, err := issuer.Issue("prof-1", "alice@example.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTVerify_Expired(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("test-secret")

	token, err := issuer.Issue("prof-1", "alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTVerify_Garbage(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")
	_, err := verifier.Verify("not-a-token")
	require.Error(t, err)
}
