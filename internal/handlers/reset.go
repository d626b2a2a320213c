package handlers

import (
	"log"
	"net/http"

	"checktrack/internal/middleware"
	"checktrack/internal/models"

	"github.com/gin-gonic/gin"
)

// Reset reseeds all three collections to their defaults, discarding current
// data.
func (a *API) Reset(c *gin.Context) {
	by := "anonymous"
	if val, ok := c.Get(middleware.CurrentUserKey); ok {
		by = val.(models.User).Username
	}
	log.Printf("reset requested by %s", by)

	if err := a.registry.Reset(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to reset data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "collections reseeded"})
}
