package http

import (
	"net/http"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in validation.UserInput
	if !decodeBody(w, r, &in) {
		return
	}
	// Self-signup never grants an elevated role.
	in.Role = "user"

	user, token, err := h.authSvc.Signup(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": user, "access_token": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": user, "access_token": token})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	if err := h.authSvc.ForgotPassword(r.Context(), in.Email); err != nil {
		writeError(w, r, err)
		return
	}
	// Identical response whether or not the address exists.
	writeJSON(w, http.StatusOK, map[string]any{"message": "if the email exists, a reset link was sent"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &in) {
		return
	}

	if err := h.authSvc.ResetPassword(r.Context(), in.Token, in.Password); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "password updated"})
}
