// Package handlers exposes the resource services as the JSON REST surface
// under /api. Handlers stay thin: bind, call the service, map the error to a
// status. The error payload shape is {"error": "..."} throughout.
package handlers

import (
	"errors"
	"net/http"

	"checktrack/internal/auth"
	"checktrack/internal/services"
	"checktrack/internal/store"

	"github.com/gin-gonic/gin"
)

type API struct {
	registry *services.Registry
	users    *services.UserService
	tasks    *services.TaskService
	reports  *services.ReportService
	auth     *auth.Service
}

func NewAPI(registry *services.Registry, authSvc *auth.Service) *API {
	return &API{
		registry: registry,
		users:    registry.Users,
		tasks:    registry.Tasks,
		reports:  registry.Reports,
		auth:     authSvc,
	}
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// notFoundOr maps a service error to 404 for lookup misses and 500 for
// persistence failures.
func notFoundOr(c *gin.Context, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	respondError(c, http.StatusInternalServerError, failMsg)
}
