package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"passvault/internal/config"
	"passvault/internal/middleware"
	"passvault/internal/service"
)

// UserHandler serves registration and login.
type UserHandler struct {
	Service *service.UserService
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{Service: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account. The response carries no token: the client
// logs in afterwards.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	err := h.Service.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUserExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case err != nil:
		h.Logger.Errorw("Register failed", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

// Login exchanges credentials for a bearer token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	userID, err := h.Service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		h.Logger.Errorw("Login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	token, err := middleware.BuildToken(userID, h.Config.AuthSecret)
	if err != nil {
		h.Logger.Errorw("Login: token build failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{Token: token})
}
