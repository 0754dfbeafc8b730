package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/osoc-staffing/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Everything below requires an authenticated caller
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	// Operator endpoints additionally require the admin role
	adminRouter := router.Group("")
	adminRouter.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())

	NewStaffingController().RegisterRoutes(authRouter, adminRouter)
	NewProjectController().RegisterRoutes(authRouter, adminRouter)
	NewRoleController().RegisterRoutes(authRouter, adminRouter)
	NewStudentController().RegisterRoutes(authRouter)
	NewEditionController().RegisterRoutes(authRouter, adminRouter)
	NewContractController().RegisterRoutes(authRouter)
}
