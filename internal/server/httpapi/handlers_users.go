package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	caller := userFrom(r.Context())
	users, err := s.users.ListUsers(r.Context(), caller.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	user, err := s.users.GetUser(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, user)
}

type updateUserRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var req updateUserRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := s.users.UpdateUserRole(r.Context(), req.Email, req.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	caller := userFrom(r.Context())
	user, err := s.users.DeleteUser(r.Context(), caller.UserID, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, user)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	caller := userFrom(r.Context())
	user, err := s.users.Profile(r.Context(), caller.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, []any{user})
}

type updateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	caller := userFrom(r.Context())
	user, err := s.users.UpdateProfile(r.Context(), caller.UserID, req.Email, req.FirstName, req.LastName)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	caller := userFrom(r.Context())
	user, err := s.users.ChangePassword(r.Context(), caller.UserID, req.CurrentPassword, req.NewPassword, req.ConfirmNewPassword)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Result:  user,
		Message: "successfully changed password",
	})
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	caller := userFrom(r.Context())
	user, err := s.users.DeleteProfile(r.Context(), caller.UserID, caller.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	s.clearAuthCookies(w)
	respondResult(w, http.StatusOK, user)
}

func (s *Server) handleBootstrap(w http.ResponseWriter, r *http.Request) {
	caller := userFrom(r.Context())
	b, err := s.users.GetBootstrap(r.Context(), caller)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, []any{b})
}

func (s *Server) handleListInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := s.users.ListInvites(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, invites)
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleAddInvite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	invite, err := s.users.AddInvite(r.Context(), req.Email, req.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, invite)
}

func (s *Server) handleUpdateInvite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	invite, err := s.users.UpdateInvite(r.Context(), req.Email, req.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, invite)
}

func (s *Server) handleDeleteInvite(w http.ResponseWriter, r *http.Request) {
	invite, err := s.users.DeleteInvite(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, invite)
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	pageResult, err := s.users.Activities(r.Context(), limit, page)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondResult(w, http.StatusOK, []any{pageResult})
}
