package http

import (
	"projecthub/internal/adapter/http/handlers"
	"projecthub/internal/adapter/http/middleware"
	"projecthub/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Project *handlers.ProjectHandler
	Task    *handlers.TaskHandler
}

func RegisterRoutes(r *gin.Engine, verifier ports.TokenVerifier, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(verifier))
	{
		protected.GET("/users/profile", h.Auth.Profile)

		protected.POST("/projects", h.Project.CreateProject)
		protected.GET("/projects", h.Project.ListProjects)
		protected.GET("/projects/:id", h.Project.GetProject)
		protected.PUT("/projects/:id", h.Project.UpdateProject)
		protected.DELETE("/projects/:id", h.Project.DeleteProject)
		protected.POST("/projects/:id/team", h.Project.AddTeamMember)
		protected.DELETE("/projects/:id/team/:memberId", h.Project.RemoveTeamMember)

		protected.POST("/projects/:id/tasks", h.Task.CreateTask)
		protected.GET("/projects/:id/tasks", h.Task.ListProjectTasks)
		protected.GET("/projects/:id/tasks/stats", h.Task.GetTaskStats)

		protected.GET("/tasks/:id", h.Task.GetTask)
		protected.PUT("/tasks/:id", h.Task.UpdateTask)
		protected.DELETE("/tasks/:id", h.Task.DeleteTask)
		protected.POST("/tasks/:id/comments", h.Task.AddComment)
	}
}
