package handlers

import (
	"errors"

	"assetmgr/internal/models"
	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleStaff
	}

	token, user, err := h.authService.Register(req.Name, req.Email, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailExists):
			c.JSON(409, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": "Failed to register", "details": err.Error()})
		}
		return
	}

	c.JSON(200, AuthResponse{
		Token: token,
		Role:  user.Role,
		Name:  user.Name,
		Email: user.Email,
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to login", "details": err.Error()})
		return
	}

	c.JSON(200, AuthResponse{
		Token: token,
		Role:  user.Role,
		Name:  user.Name,
		Email: user.Email,
	})
}

// Logout revokes the current session
func (h *AuthHandler) Logout(c *gin.Context) {
	token, exists := c.Get("token")
	if !exists {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	h.authService.Logout(token.(string))
	c.JSON(200, gin.H{"message": "Logged out successfully"})
}

// GetMe returns current user information
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(401, gin.H{"error": "Not authenticated"})
		return
	}

	u := user.(*models.User)
	c.JSON(200, u)
}
