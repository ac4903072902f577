// Package services contains server-side business logic. This file implements
// AuthService: invitation-gated registration, login, logout, session checks,
// and refresh-token rotation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/dbx"
	"github.com/codebyfaisal/e-store-pos/internal/server/auth"
	"github.com/codebyfaisal/e-store-pos/internal/server/config"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
// Both are JWTs; the refresh token is additionally stored on the user row so
// that issuing a new pair revokes every earlier one.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	accessTokenSecret            []byte
	refreshTokenSecret           []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		accessTokenSecret:            []byte(cfg.AccessTokenSecret),
		refreshTokenSecret:           []byte(cfg.RefreshTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates an account for an invited address. The role always comes
// from the invite, never from the request. The user row and the invite status
// change commit together.
func (s *AuthService) Register(ctx context.Context, email, password, fname, lname string) (*models.User, error) {
	if fname == "" || lname == "" {
		return nil, fmt.Errorf("%w: first name and last name is required", common.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	invite, err := s.repomanager.Invites(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: you are not invited", common.ErrForbidden)
		}
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			Email:        email,
			FirstName:    fname,
			LastName:     lname,
			PasswordHash: hash,
			Role:         invite.Role,
		})
		if err != nil {
			return err
		}
		return s.repomanager.Invites(tx).MarkAccepted(ctx, email)
	})
	if err != nil {
		return nil, err
	}

	_ = s.repomanager.Activities(s.db).Record(ctx, "user",
		fmt.Sprintf("%s %s joined as %s", fname, lname, invite.Role))

	return created, nil
}

// Login verifies credentials and, on success, stores a fresh refresh token on
// the user row. Storing it unconditionally revokes any session opened from
// another device.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, nil, fmt.Errorf("%w: invalid password", common.ErrUnauthorized)
	}

	pair, err := s.mintTokenPair(user.UserID, user.Role)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.SetRefreshToken(ctx, user.UserID, pair.RefreshToken); err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Logout blanks whichever user row holds the presented refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return fmt.Errorf("%w: refresh token not found", common.ErrValidation)
	}
	return s.repomanager.Users(s.db).ClearRefreshToken(ctx, refreshToken)
}

// Refresh validates the presented refresh token and rotates it. The new pair
// carries forward the user id and role from the old token's claims. Rotation
// only succeeds while the presented token is still the stored one, so two
// racing refreshes for the same user resolve to one winner and one
// ErrSessionRevoked instead of silently overwriting each other.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.User, *TokenPair, error) {
	claims, err := auth.Verify(refreshToken, s.refreshTokenSecret)
	if err != nil {
		return nil, nil, err
	}
	if claims.Kind() != auth.TokenKindRefresh {
		return nil, nil, common.ErrInvalidToken
	}

	pair, err := s.mintTokenPair(claims.UserID, claims.Role)
	if err != nil {
		return nil, nil, err
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if err := repo.RotateRefreshToken(ctx, claims.UserID, refreshToken, pair.RefreshToken); err != nil {
			return err
		}
		user, err = repo.GetByID(ctx, claims.UserID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Authenticate resolves an access token plus the accompanying refresh cookie
// into a live user. The checks run in a fixed order:
//
//  1. the access token must verify and be of the access kind,
//  2. the user it names must still exist,
//  3. the refresh cookie must equal the token stored on the user row.
//
// Step 3 is what makes logout-everywhere work: a stolen or stale access
// token stops authenticating the moment the session slot changes.
func (s *AuthService) Authenticate(ctx context.Context, accessToken, refreshToken string) (*models.User, error) {
	claims, err := auth.Verify(accessToken, s.accessTokenSecret)
	if err != nil {
		return nil, err
	}
	if claims.Kind() != auth.TokenKindAccess {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if refreshToken == "" || user.RefreshToken != refreshToken {
		return nil, common.ErrSessionRevoked
	}
	return user, nil
}

func (s *AuthService) mintTokenPair(userID, role string) (*TokenPair, error) {
	access, err := auth.Mint(auth.TokenKindAccess, userID, role, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}
	refresh, err := auth.Mint(auth.TokenKindRefresh, userID, role, s.refreshTokenSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
