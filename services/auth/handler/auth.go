package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/internal/utils"
	"github.com/CHOIisaac/chalna-api/services/auth"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RegisterRoutes registers the auth routes. These stay outside the JWT
// middleware.
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	group := g.Group("/auth")
	group.POST("/login", h.Login)
}

// Login issues a bearer token for valid credentials
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
