package httpapi

import (
	"net/http"
	"strings"
	"time"

	"elearn-backend-go/internal/services"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdateRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !services.ValidRole(req.Role) {
		WriteError(w, http.StatusBadRequest, "Invalid role")
		return
	}
	email := services.NormalizeEmail(req.Email)
	taken, err := services.EmailTaken(s.DB, email)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if taken {
		WriteError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	hash, err := s.Tokens.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	userID := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.DB.Exec(`
INSERT INTO users (id, email, password_hash, name, role, avatar, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,NULL,$6,$6)
`, userID, email, hash, req.Name, req.Role, now)
	if err != nil {
		if services.IsUniqueViolation(err) {
			WriteError(w, http.StatusConflict, "Email already registered")
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := s.Tokens.CreateToken(userID, email, req.Role)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	user, err := services.FetchUser(s.DB, userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, AuthResponse{User: userDTO(user), Token: token})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	// Same response for unknown email and wrong password.
	user, err := services.FetchUserByEmail(s.DB, req.Email)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !s.Tokens.VerifyPassword(req.Password, user.PasswordHash) {
		WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := s.Tokens.CreateToken(user.ID, user.Email, user.Role)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, AuthResponse{User: userDTO(user), Token: token})
}

func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, userDTO(CurrentUser(r)))
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var req ProfileUpdateRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	sets := newUpdateSet()
	// Name is applied only when present and non-empty; an empty string means
	// "leave unchanged" (matches the update contract for this field).
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		sets.add("name", *req.Name)
	}
	if req.Avatar != nil {
		sets.add("avatar", *req.Avatar)
	}
	if !sets.empty() {
		sets.add("updated_at", time.Now().UTC())
		if _, err := s.DB.Exec(sets.query("users"), sets.args(user.ID)...); err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}
	updated, err := services.FetchUser(s.DB, user.ID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, userDTO(updated))
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	var req ChangePasswordRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !s.Tokens.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
		WriteError(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	hash, err := s.Tokens.HashPassword(req.NewPassword)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	_, err = s.DB.Exec(`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`, hash, time.Now().UTC(), user.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}
