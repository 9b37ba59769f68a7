package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

// AuthHandler exposes sign-up, sign-in and the current account.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register requests.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	email, ok := credentials(req.Email, req.Password)
	if !ok {
		return Error(c, http.StatusBadRequest, "email and password are required")
	}

	session, err := h.authService.Register(c.Request().Context(), email, req.Password)
	if err != nil {
		return ServiceError(c, err, "unable to register user")
	}
	return Success(c, http.StatusCreated, "registration successful", sessionResponse(session))
}

// Login handles POST /auth/login requests.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	email, ok := credentials(req.Email, req.Password)
	if !ok {
		return Error(c, http.StatusBadRequest, "email and password are required")
	}

	session, err := h.authService.Login(c.Request().Context(), email, req.Password)
	if err != nil {
		return ServiceError(c, err, "unable to authenticate")
	}
	return Success(c, http.StatusOK, "login successful", sessionResponse(session))
}

// Me handles GET /me for a signed-in user.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "authentication required")
	}
	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return ServiceError(c, err, "unable to load profile")
	}
	return Success(c, http.StatusOK, "profile retrieved", userProfile(user))
}

func credentials(email, password string) (string, bool) {
	email = strings.TrimSpace(email)
	return email, email != "" && password != ""
}

func sessionResponse(session *service.Session) dto.LoginResponse {
	return dto.LoginResponse{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		ExpiresAt:   session.ExpiresAt,
		User:        userProfile(session.User),
	}
}

func userProfile(user *entity.User) dto.UserProfile {
	return dto.UserProfile{ID: user.ID, Email: user.Email, Role: user.Role, CreatedAt: user.CreatedAt}
}
