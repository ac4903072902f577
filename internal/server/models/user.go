// Package models defines the row-shaped structs shared by repositories,
// services, and the HTTP layer. JSON tags follow the column names the API
// has always exposed.
package models

import "time"

// User is a back-office account. RefreshToken holds the single live session
// slot: at most one refresh token is valid per user, and overwriting it
// revokes every previously issued token pair.
type User struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"fname"`
	LastName     string    `json:"lname"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Invite is a pending invitation; registration is only open to invited
// addresses and the invite fixes the role the account will get.
type Invite struct {
	InviteUserID string    `json:"invite_user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	InvitedAt    time.Time `json:"invited_at"`
}

// Notification is one row of the activity log.
type Notification struct {
	NotificationID string    `json:"notification_id"`
	Kind           string    `json:"kind"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}
