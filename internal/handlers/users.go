package handlers

import (
	"encoding/json"
	"net/http"

	"checktrack/internal/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListUsers(c *gin.Context) {
	users := a.users.List()
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Redacted())
	}
	c.JSON(http.StatusOK, out)
}

func (a *API) GetUser(c *gin.Context) {
	user, err := a.users.Get(c.Param("id"))
	if err != nil {
		notFoundOr(c, err, "user not found", "failed to load user")
		return
	}
	c.JSON(http.StatusOK, user.Redacted())
}

func (a *API) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondError(c, http.StatusBadRequest, "invalid user payload")
		return
	}

	created, err := a.users.Create(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save user")
		return
	}
	c.JSON(http.StatusCreated, created.Redacted())
}

func (a *API) UpdateUser(c *gin.Context) {
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid user payload")
		return
	}

	updated, err := a.users.Update(c.Param("id"), patch)
	if err != nil {
		notFoundOr(c, err, "user not found", "failed to update user")
		return
	}
	c.JSON(http.StatusOK, updated.Redacted())
}

func (a *API) DeleteUser(c *gin.Context) {
	if err := a.users.Delete(c.Param("id")); err != nil {
		notFoundOr(c, err, "user not found", "failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
