// Package auth implements the cryptographic half of the session subsystem:
// minting and verifying the signed access/refresh tokens and hashing
// passwords. It never touches the database; the session cross-checks against
// stored state belong to the HTTP middleware and the auth service.
package auth

import (
	"errors"
	"time"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes the two token flavours. Each kind is signed with
// its own secret, so an access token can never pass refresh verification
// and vice versa.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "accessToken"
	TokenKindRefresh TokenKind = "refreshToken"
)

// Claims are the JWT claims carried by both token kinds. Kind travels in the
// registered "sub" claim. Role is a point-in-time snapshot taken at issuance
// and is deliberately not re-checked against the database on refresh.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Kind reports which token flavour the claims were minted for.
func (c *Claims) Kind() TokenKind {
	return TokenKind(c.Subject)
}

// Mint creates a signed HS256 token of the given kind that expires after ttl.
func Mint(kind TokenKind, userID, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(kind),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Role:   role,
	})

	return token.SignedString(secret)
}

// Verify parses and validates a token against the given secret and returns
// its claims. Expired tokens yield common.ErrTokenExpired; any other parse
// or signature failure yields common.ErrInvalidToken.
func Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
