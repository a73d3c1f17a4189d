package controllers

import (
	"github.com/BSIT-Sanchez/LGC/handlers"
	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: No authentication required
	router.POST("/auth/register", ac.Handler.Register)
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/change-password", ac.Handler.ChangePassword)

	// Protected routes: Requires a valid token
	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.POST("/logoff", ac.Handler.Logoff)
		authGroup.POST("/refresh-token", ac.Handler.RefreshToken)
		authGroup.GET("/user/profile", ac.Handler.GetUserProfile)
		authGroup.PUT("/user/update-profile", ac.Handler.UpdateUserProfile)
	}

	// The user account collection the settings page manages
	userGroup := router.Group("/users").Use(middlewares.TokenAuthMiddleware())
	{
		userGroup.GET("", ac.Handler.GetAllUsers)
		userGroup.POST("", ac.Handler.Register)
		userGroup.PUT("/:user_id", ac.Handler.UpdateUser)
		userGroup.DELETE("/:user_id", ac.Handler.DeleteUser)
	}
}
