package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/server/auth"
	"github.com/codebyfaisal/e-store-pos/internal/server/config"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
	"github.com/codebyfaisal/e-store-pos/internal/server/repositories/repomanager"
	"github.com/codebyfaisal/e-store-pos/internal/server/roles"
)

// Bootstrap is the payload the frontend loads right after login: who the
// user is, what they may see, and the latest activity entries.
type Bootstrap struct {
	Notifications []models.Notification `json:"notifications"`
	Permissions   []string              `json:"permissions"`
	User          BootstrapUser         `json:"user"`
}

type BootstrapUser struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// ActivityPage is one page of the activity log plus the total row count.
type ActivityPage struct {
	Notifications      []models.Notification `json:"notifications"`
	TotalNotifications int                   `json:"totalNotifications"`
}

// UserService covers account management beyond the auth flows: profiles,
// the admin user list, invites, and the activity log.
type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	superAdminEmail string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:              db,
		repomanager:     m,
		superAdminEmail: cfg.SuperAdminEmail,
	}
}

// ListUsers returns everyone except the caller.
func (s *UserService) ListUsers(ctx context.Context, callerID string) ([]models.User, error) {
	return s.repomanager.Users(s.db).ListExcept(ctx, callerID)
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// UpdateUserRole changes a user's role by email. The change shows up in
// their tokens on the next login; already-issued tokens keep the old role
// until then.
func (s *UserService) UpdateUserRole(ctx context.Context, email, role string) (*models.User, error) {
	if !roles.Valid(role) {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}
	return s.repomanager.Users(s.db).UpdateRoleByEmail(ctx, email, role)
}

// DeleteUser removes another, non-admin account.
func (s *UserService) DeleteUser(ctx context.Context, callerID, userID string) (*models.User, error) {
	if callerID == userID {
		return nil, fmt.Errorf("%w: you cannot delete yourself", common.ErrValidation)
	}
	return s.repomanager.Users(s.db).Delete(ctx, userID)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, email, fname, lname string) (*models.User, error) {
	return s.repomanager.Users(s.db).UpdateProfile(ctx, userID, email, fname, lname)
}

// ChangePassword re-checks the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword, confirmNewPassword string) (*models.User, error) {
	if newPassword == currentPassword {
		return nil, fmt.Errorf("%w: new password cannot be the same", common.ErrValidation)
	}
	if newPassword != confirmNewPassword {
		return nil, fmt.Errorf("%w: confirm password does not match", common.ErrValidation)
	}
	if len(newPassword) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", common.ErrValidation)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid password", common.ErrUnauthorized)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, common.ErrInternal
	}
	return repo.UpdatePasswordHash(ctx, userID, hash)
}

// DeleteProfile removes the caller's own account. The super admin account
// can never be deleted, there must always be at least one admin left.
func (s *UserService) DeleteProfile(ctx context.Context, callerID, callerRole string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	if callerRole == roles.Admin {
		user, err := repo.GetByID(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if user.Email == s.superAdminEmail {
			return nil, fmt.Errorf("%w: you are the only super admin, cannot delete yourself", common.ErrValidation)
		}
	}
	return repo.DeleteOwn(ctx, callerID)
}

// ListInvites hides the super admin's own invite from the list.
func (s *UserService) ListInvites(ctx context.Context) ([]models.Invite, error) {
	return s.repomanager.Invites(s.db).List(ctx, s.superAdminEmail)
}

func (s *UserService) AddInvite(ctx context.Context, email, role string) (*models.Invite, error) {
	if !roles.Valid(role) {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}
	return s.repomanager.Invites(s.db).Create(ctx, email, role)
}

func (s *UserService) UpdateInvite(ctx context.Context, email, role string) (*models.Invite, error) {
	if !roles.Valid(role) {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}
	return s.repomanager.Invites(s.db).UpdateRole(ctx, email, role)
}

func (s *UserService) DeleteInvite(ctx context.Context, email string) (*models.Invite, error) {
	if email == s.superAdminEmail {
		return nil, fmt.Errorf("%w: cannot remove the super admin", common.ErrValidation)
	}
	return s.repomanager.Invites(s.db).Delete(ctx, email)
}

func (s *UserService) GetBootstrap(ctx context.Context, user *models.User) (*Bootstrap, error) {
	notifications, err := s.repomanager.Activities(s.db).Recent(ctx, 5)
	if err != nil {
		return nil, err
	}
	return &Bootstrap{
		Notifications: notifications,
		Permissions:   roles.Permissions(user.Role),
		User: BootstrapUser{
			Role: user.Role,
			Name: user.FirstName + " " + user.LastName,
		},
	}, nil
}

// Activities pages through the activity log. page is 1-based.
func (s *UserService) Activities(ctx context.Context, limit, page int) (*ActivityPage, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	repo := s.repomanager.Activities(s.db)
	notifications, err := repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ActivityPage{Notifications: notifications, TotalNotifications: total}, nil
}
