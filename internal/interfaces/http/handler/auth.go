package handler

import (
	appidentity "github.com/acme/dashboard/internal/application/identity"
	"github.com/acme/dashboard/internal/domain/identity"
	"github.com/acme/dashboard/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves the sign-in endpoint
type AuthHandler struct {
	BaseHandler
	service *appidentity.AuthService
}

func NewAuthHandler(service *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}

// Login verifies the submitted credentials and returns a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Email and password are required")
		return
	}

	session, err := h.service.Authenticate(c.Request.Context(), identity.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.LoginResponse{
		Token: session.Token,
		Name:  session.User.Name,
		Email: session.User.Email,
	})
}
