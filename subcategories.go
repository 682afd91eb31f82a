package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary Get subcategories
// @Description Retrieve subcategories, optionally only those of one category
// @Tags subcategories
// @Produce json
// @Param category_id query string false "Category ID"
// @Success 200 {array} Subcategory "List of subcategories"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/subcategories [get]
func getSubcategories(c *gin.Context) {
	categoryID := strings.TrimSpace(c.Query("category_id"))
	if categoryID != "" {
		if err := validateID(categoryID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
	}

	subcategories, err := repo.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		logger.WithError(err).Error("Error fetching subcategories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching subcategories"})
		return
	}

	c.JSON(http.StatusOK, subcategories)
}

// @Summary Create subcategory
// @Description Create a new subcategory for a category
// @Tags subcategories
// @Accept json
// @Produce json
// @Param subcategory body SubcategoryRequest true "Subcategory data (name and category_id required)"
// @Success 201 {object} Subcategory "Created subcategory"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Subcategory already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/subcategories [post]
func createSubcategory(c *gin.Context) {
	var request SubcategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateID(request.CategoryID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	subcategory, err := repo.CreateSubcategory(c.Request.Context(), request.CategoryID, strings.TrimSpace(request.Name))
	if err != nil {
		logger.WithError(err).Error("Error creating subcategory")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, subcategory)
}

// @Summary Update subcategory
// @Description Rename a subcategory or move it to another category
// @Tags subcategories
// @Accept json
// @Produce json
// @Param id path string true "Subcategory ID"
// @Param subcategory body SubcategoryRequest true "Updated subcategory data"
// @Success 200 {object} Subcategory "Updated subcategory"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Subcategory not found"
// @Failure 409 {object} map[string]interface{} "Subcategory already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/subcategories/{id} [put]
func updateSubcategory(c *gin.Context) {
	id := c.Param("id")
	var request SubcategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateID(request.CategoryID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	subcategory, err := repo.UpdateSubcategory(c.Request.Context(), id, request.CategoryID, strings.TrimSpace(request.Name))
	if err != nil {
		logger.WithError(err).WithField("id", id).Error("Error updating subcategory")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, subcategory)
}

// @Summary Delete subcategory
// @Description Delete a specific subcategory by ID
// @Tags subcategories
// @Produce json
// @Param id path string true "Subcategory ID"
// @Success 200 {object} map[string]interface{} "Subcategory deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Subcategory not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/subcategories/{id} [delete]
func deleteSubcategory(c *gin.Context) {
	id := c.Param("id")
	if err := validateID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}

	if err := repo.DeleteSubcategory(c.Request.Context(), id); err != nil {
		logger.WithError(err).WithField("id", id).Error("Error deleting subcategory")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}
