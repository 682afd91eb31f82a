package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary Get all statuses
// @Description Retrieve all record statuses ordered by name
// @Tags statuses
// @Produce json
// @Success 200 {array} Status "List of statuses"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/statuses [get]
func getStatuses(c *gin.Context) {
	statuses, err := repo.ListStatuses(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("Error fetching statuses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching statuses"})
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// @Summary Create status
// @Description Create a new record status
// @Tags statuses
// @Accept json
// @Produce json
// @Param status body NameRequest true "Status data (name required)"
// @Success 201 {object} Status "Created status"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Status already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/statuses [post]
func createStatus(c *gin.Context) {
	var request NameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := repo.CreateStatus(c.Request.Context(), strings.TrimSpace(request.Name))
	if err != nil {
		logger.WithError(err).Error("Error creating status")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, status)
}

// @Summary Update status
// @Description Rename a record status
// @Tags statuses
// @Accept json
// @Produce json
// @Param id path string true "Status ID"
// @Param status body NameRequest true "Updated status data"
// @Success 200 {object} Status "Updated status"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Status not found"
// @Failure 409 {object} map[string]interface{} "Status already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/statuses/{id} [put]
func updateStatus(c *gin.Context) {
	id := c.Param("id")
	var request NameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status ID"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := repo.UpdateStatus(c.Request.Context(), id, strings.TrimSpace(request.Name))
	if err != nil {
		logger.WithError(err).WithField("id", id).Error("Error updating status")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Delete status
// @Description Delete a record status by ID
// @Tags statuses
// @Produce json
// @Param id path string true "Status ID"
// @Success 200 {object} map[string]interface{} "Status deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Status not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/statuses/{id} [delete]
func deleteStatus(c *gin.Context) {
	id := c.Param("id")
	if err := validateID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status ID"})
		return
	}

	if err := repo.DeleteStatus(c.Request.Context(), id); err != nil {
		logger.WithError(err).WithField("id", id).Error("Error deleting status")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status deleted successfully"})
}
