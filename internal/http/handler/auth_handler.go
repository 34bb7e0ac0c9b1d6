package handler

import (
	"net/http"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Handle dispatches on the action query parameter: POST ?action=login
// and GET ?action=verify. Anything else is answered with 405.
func (h *AuthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch action := r.URL.Query().Get("action"); {
	case action == "login" && r.Method == http.MethodPost:
		h.Login(w, r)
	case action == "verify" && r.Method == http.MethodGet:
		h.Verify(w, r)
	default:
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Login godoc
// @Summary Log in
// @Description Exchange username and password for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param action query string true "Must be login" Enums(login)
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.LoginResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 405 {object} domain.APIError
// @Router /auth [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "User")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Verify godoc
// @Summary Verify token
// @Description Check a bearer token and return its user
// @Tags Auth
// @Produce json
// @Param action query string true "Must be verify" Enums(verify)
// @Success 200 {object} domain.VerifyResponse
// @Failure 401 {object} domain.APIError
// @Failure 405 {object} domain.APIError
// @Security BearerAuth
// @Router /auth [get]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.BearerToken(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing or malformed authorization header")
		return
	}

	result, err := h.authService.Verify(r.Context(), token)
	if err != nil {
		respondServiceError(w, h.logger, err, "User")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
