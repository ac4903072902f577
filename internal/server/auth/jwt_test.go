package auth

import (
	"testing"
	"time"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestMintVerify_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind TokenKind
	}{
		{"access", TokenKindAccess},
		{"refresh", TokenKindRefresh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokenString, err := Mint(tc.kind, "u-1", "editor", testSecret, time.Hour)
			require.NoError(t, err)

			claims, err := Verify(tokenString, testSecret)
			require.NoError(t, err)
			require.Equal(t, "u-1", claims.UserID)
			require.Equal(t, "editor", claims.Role)
			require.Equal(t, tc.kind, claims.Kind())
		})
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tokenString, err := Mint(TokenKindAccess, "u-1", "admin", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = Verify(tokenString, []byte("other-secret"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	tokenString, err := Mint(TokenKindAccess, "u-1", "admin", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = Verify(tokenString, testSecret)
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := Verify("not.a.token", testSecret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_CrossKindSecrets(t *testing.T) {
	// Access and refresh tokens are signed with distinct secrets, so a
	// refresh token must never verify with the access secret.
	refreshSecret := []byte("refresh-secret")
	tokenString, err := Mint(TokenKindRefresh, "u-1", "admin", refreshSecret, time.Hour)
	require.NoError(t, err)

	_, err = Verify(tokenString, testSecret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, CheckPassword("secret123", hash))
	require.False(t, CheckPassword("secret124", hash))
}
