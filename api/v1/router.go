package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/teamtasker/middleware"
	"github.com/teamtasker/models"
)

// RegisterRoutes sets up all API v1 routes
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", HealthCheck)

	auth := router.Group("/auth")
	{
		auth.POST("/register", Register)
		auth.POST("/register-admin", RegisterAdmin)
		auth.POST("/register-manager", RegisterManager)
		auth.POST("/login", Login)
		auth.POST("/logout", Logout)
		auth.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireUserType(models.UserTypeAdmin))
	{
		admin.GET("/users", ListUsers)
		admin.DELETE("/users", DeleteUsers)
	}

	teams := router.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	NewTeamController().RegisterRoutes(teams)

	projects := router.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	NewProjectController().RegisterRoutes(projects)

	tasks := router.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	NewTaskController().RegisterRoutes(tasks)
}
