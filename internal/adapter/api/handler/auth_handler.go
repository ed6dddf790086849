package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"availio-admin/internal/usecase"
	"availio-admin/pkg/errors"
	"availio-admin/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	User         sessionResponse `json:"user"`
}

// Login intentionally skips struct validation tags: the use case owns the
// exact validation order and wording the dashboard displays.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, loginResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User: sessionResponse{
			ID:    result.User.ID,
			Email: result.User.ContactEmail(),
			Role:  string(result.User.Role),
		},
	})
}

// Session mirrors the client's auth-state listener: it resolves the bearer
// token into the current identity and its role.
func (h *AuthHandler) Session(c echo.Context) error {
	token, err := bearerToken(c)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Session(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sessionResponse{
		ID:    user.ID,
		Email: user.ContactEmail(),
		Role:  string(user.Role),
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	if err := h.authUseCase.Logout(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Successfully logged out",
	})
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.Unauthorized("Authorization header required", nil)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.Unauthorized("Invalid authorization format", nil)
	}

	return parts[1], nil
}
