package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"courtside-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.auth.RequestOTP(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "verification code sent"})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, user, err := h.auth.VerifyOTP(r.Context(), req.Email, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, user, err := h.auth.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

// RegisterAuthRoutes wires the auth endpoints onto the router
func RegisterAuthRoutes(router *mux.Router, auth service.AuthService) {
	h := NewAuthHandler(auth)

	router.HandleFunc("/api/auth/request-otp", h.RequestOTP).Methods("POST")
	router.HandleFunc("/api/auth/verify-otp", h.VerifyOTP).Methods("POST")
	router.HandleFunc("/api/auth/admin-login", h.AdminLogin).Methods("POST")
}
