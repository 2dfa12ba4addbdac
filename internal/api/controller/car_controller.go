package controller

import (
	"net/http"
	"whlin31/CarHub/internal/api/middleware"
	"whlin31/CarHub/internal/api/models"
	"whlin31/CarHub/internal/api/response"
	"whlin31/CarHub/internal/api/service"

	"github.com/gin-gonic/gin"
)

// CarController handles the car listing endpoints. All routes sit behind the
// session guard; the resolved identity scopes every service call.
type CarController struct {
	carService service.CarService
}

// NewCarController creates a new CarController.
func NewCarController(carService service.CarService) *CarController {
	return &CarController{carService: carService}
}

// Create handles POST /cars.
func (cc *CarController) Create(c *gin.Context) {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Title, Description and tags must be provided")
		return
	}

	car, err := cc.carService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.CreatedResponse(c, car)
}

// List handles GET /cars, returning every listing the caller owns.
func (cc *CarController) List(c *gin.Context) {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	cars, err := cc.carService.List(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.SuccessResponseList(c, cars)
}

// GetByID handles GET /cars/:id.
func (cc *CarController) GetByID(c *gin.Context) {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	car, err := cc.carService.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, car)
}

// Update handles PUT /cars/:id with any subset of the listing fields.
func (cc *CarController) Update(c *gin.Context) {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	car, err := cc.carService.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, car)
}

// Delete handles DELETE /cars/:id.
func (cc *CarController) Delete(c *gin.Context) {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := cc.carService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{"message": "Car deleted successfully"})
}

// Search handles GET /cars/search/:keyword.
func (cc *CarController) Search(c *gin.Context) {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	cars, err := cc.carService.Search(c.Request.Context(), userID, c.Param("keyword"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	response.SuccessResponseList(c, cars)
}
