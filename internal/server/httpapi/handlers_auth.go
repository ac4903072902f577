package httpapi

import (
	"net/http"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/server/roles"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := s.auth.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "user registered successfully",
		Result:  user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// handleLogin answers with the user's role and permissions; the tokens
// themselves travel only in cookies and never in the body.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, pair, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.setAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "user logged in successfully",
		Result: loginUser{
			Email:       user.Email,
			Role:        user.Role,
			Permissions: roles.Permissions(user.Role),
		},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	err := s.auth.Logout(r.Context(), cookieValue(r, common.RefreshTokenCookieName))
	if err != nil {
		// the session slot no longer holds this token, treat as a bad request
		// like any other logout without a live session
		respondError(w, http.StatusBadRequest, "failed to delete refresh token")
		return
	}

	s.clearAuthCookies(w)
	respondMessage(w, http.StatusOK, "user logged out successfully")
}

type refreshResult struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// handleRefreshToken rotates the session. The refresh cookie is the sole
// credential here; a missing cookie is indistinguishable from an expired one
// as far as the client is concerned.
func (s *Server) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := cookieValue(r, common.RefreshTokenCookieName)
	if refreshToken == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized: no token found")
		return
	}

	user, pair, err := s.auth.Refresh(r.Context(), refreshToken)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.setAuthCookies(w, pair)
	respondResult(w, http.StatusOK, refreshResult{
		UserID:      user.UserID,
		Email:       user.Email,
		Role:        user.Role,
		Permissions: roles.Permissions(user.Role),
	})
}
