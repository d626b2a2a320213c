package handlers

import (
	"encoding/json"
	"net/http"

	"checktrack/internal/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, a.tasks.List())
}

func (a *API) GetTask(c *gin.Context) {
	task, err := a.tasks.Get(c.Param("id"))
	if err != nil {
		notFoundOr(c, err, "task not found", "failed to load task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (a *API) CreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		respondError(c, http.StatusBadRequest, "invalid task payload")
		return
	}

	created, err := a.tasks.Create(task)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save task")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (a *API) UpdateTask(c *gin.Context) {
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid task payload")
		return
	}

	updated, err := a.tasks.Update(c.Param("id"), patch)
	if err != nil {
		notFoundOr(c, err, "task not found", "failed to update task")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (a *API) DeleteTask(c *gin.Context) {
	if err := a.tasks.Delete(c.Param("id")); err != nil {
		notFoundOr(c, err, "task not found", "failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
