package controller

import (
	"net/http"
	"whlin31/CarHub/internal/api/models"
	"whlin31/CarHub/internal/api/response"
	"whlin31/CarHub/internal/api/service"
	"whlin31/CarHub/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	userService service.UserService
	issuer      *auth.TokenIssuer
}

// NewAuthController creates a new AuthController.
func NewAuthController(userService service.UserService, issuer *auth.TokenIssuer) *AuthController {
	return &AuthController{
		userService: userService,
		issuer:      issuer,
	}
}

// Register handles the user registration endpoint. A successful registration
// also logs the user in by setting the session cookie.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, service.ErrMissingFields.Error())
		return
	}

	user, err := ac.userService.Register(c.Request.Context(), &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if err := ac.issuer.SetSessionCookie(c, user.ID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.CreatedResponse(c, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles the user login endpoint.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, service.ErrInvalidCredentials.Error())
		return
	}

	user, err := ac.userService.Login(c.Request.Context(), &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if err := ac.issuer.SetSessionCookie(c, user.ID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout clears the session cookie. It succeeds whether or not a session
// existed.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.issuer.ClearSessionCookie(c)
	response.SuccessResponse(c, gin.H{"message": "Logout successful"})
}
