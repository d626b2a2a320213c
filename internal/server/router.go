package server

import (
	"net/http"

	"checktrack/internal/auth"
	"checktrack/internal/handlers"
	"checktrack/internal/middleware"
	"checktrack/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(registry *services.Registry, authSvc *auth.Service) *gin.Engine {
	r := gin.Default()

	api := handlers.NewAPI(registry, authSvc)

	r.Use(middleware.CurrentUser(authSvc, registry.Users))

	g := r.Group("/api")

	// AUTH
	g.POST("/login", api.Login)
	g.GET("/me", api.Me)

	// USERS
	g.GET("/users", api.ListUsers)
	g.GET("/users/:id", api.GetUser)
	g.POST("/users", api.CreateUser)
	g.PUT("/users/:id", api.UpdateUser)
	g.DELETE("/users/:id", api.DeleteUser)

	// TASKS
	g.GET("/tasks", api.ListTasks)
	g.GET("/tasks/:id", api.GetTask)
	g.POST("/tasks", api.CreateTask)
	g.PUT("/tasks/:id", api.UpdateTask)
	g.DELETE("/tasks/:id", api.DeleteTask)

	// DAILY REPORTS
	g.GET("/daily-reports", api.ListReports)
	g.GET("/daily-reports/:id", api.GetReport)
	g.GET("/daily-reports/user/:userId", api.ListUserReports)
	g.GET("/daily-reports/user/:userId/date/:date", api.GetUserReportByDate)
	g.POST("/daily-reports", api.CreateReport)
	g.PUT("/daily-reports/:id", api.UpdateReport)

	// RESET
	g.POST("/reset", api.Reset)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
