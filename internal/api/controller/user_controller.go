package controller

import (
	"net/http"
	"whlin31/CarHub/internal/api/middleware"
	"whlin31/CarHub/internal/api/models"
	"whlin31/CarHub/internal/api/response"
	"whlin31/CarHub/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserController handles the profile endpoints.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Profile returns the authenticated user's record, password excluded.
func (uc *UserController) Profile(c *gin.Context) {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := uc.userService.Profile(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, user)
}

// UpdateProfile applies the supplied subset of name/email/password.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := uc.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{
		"message": "User profile updated successfully",
		"user":    user,
	})
}
