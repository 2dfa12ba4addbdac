package server

import (
	"whlin31/CarHub/internal/api/controller"
	"whlin31/CarHub/internal/api/middleware"
	"whlin31/CarHub/internal/auth"
	"whlin31/CarHub/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// Server owns the Gin engine and wires the route table. Credential endpoints
// are rate limited; everything under /users and /cars sits behind the session
// guard.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the engine and registers all routes.
func NewServer(
	issuer *auth.TokenIssuer,
	limiter *ratelimit.FixedWindowLimiter,
	authController *controller.AuthController,
	userController *controller.UserController,
	carController *controller.CarController,
) *Server {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	authRoutes := engine.Group("/auth")
	{
		authRoutes.POST("/register", limiter.PerClientIP("register"), authController.Register)
		authRoutes.POST("/login", limiter.PerClientIP("login"), authController.Login)
		authRoutes.POST("/logout", authController.Logout)
	}

	userRoutes := engine.Group("/users", middleware.RequireAuth(issuer))
	{
		userRoutes.GET("/profile", userController.Profile)
		userRoutes.PUT("/profile", userController.UpdateProfile)
	}

	carRoutes := engine.Group("/cars", middleware.RequireAuth(issuer))
	{
		carRoutes.POST("", carController.Create)
		carRoutes.GET("", carController.List)
		carRoutes.GET("/:id", carController.GetByID)
		carRoutes.PUT("/:id", carController.Update)
		carRoutes.DELETE("/:id", carController.Delete)
		carRoutes.GET("/search/:keyword", carController.Search)
	}

	return &Server{engine: engine}
}

// Engine exposes the underlying Gin engine for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
