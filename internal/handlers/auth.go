package handlers

import (
	"net/http"

	"checktrack/internal/middleware"
	"checktrack/internal/models"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the credentials and returns the user together with a token
// the client holds on to. Every failure mode is a 401; the caller learns
// nothing about which part was wrong.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user, token, err := a.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.Redacted(),
		"token": token,
	})
}

// Me returns the user the bearer token resolves to. This is how the client
// restores session state on page load.
func (a *API) Me(c *gin.Context) {
	val, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		respondError(c, http.StatusUnauthorized, "not logged in")
		return
	}
	c.JSON(http.StatusOK, val.(models.User))
}
