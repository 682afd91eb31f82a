package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Category handler functions

// @Summary Get categories
// @Description Retrieve categories, optionally only those of one transaction type
// @Tags categories
// @Produce json
// @Param transaction_type_id query string false "Transaction type ID"
// @Success 200 {array} Category "List of categories"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [get]
func getCategories(c *gin.Context) {
	typeID := strings.TrimSpace(c.Query("transaction_type_id"))
	if typeID != "" {
		if err := validateID(typeID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type ID"})
			return
		}
	}

	categories, err := repo.ListCategories(c.Request.Context(), typeID)
	if err != nil {
		logger.WithError(err).Error("Error fetching categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Create category
// @Description Create a new category for a transaction type
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category data (name and transaction_type_id required)"
// @Success 201 {object} Category "Created category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [post]
func createCategory(c *gin.Context) {
	var request CategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Validate required fields
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateID(request.TransactionTypeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type ID"})
		return
	}

	category, err := repo.CreateCategory(c.Request.Context(), request.TransactionTypeID, strings.TrimSpace(request.Name))
	if err != nil {
		logger.WithError(err).Error("Error creating category")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary Update category
// @Description Rename a category or move it to another transaction type
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body CategoryRequest true "Updated category data"
// @Success 200 {object} Category "Updated category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [put]
func updateCategory(c *gin.Context) {
	id := c.Param("id")
	var request CategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateID(request.TransactionTypeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type ID"})
		return
	}

	category, err := repo.UpdateCategory(c.Request.Context(), id, request.TransactionTypeID, strings.TrimSpace(request.Name))
	if err != nil {
		logger.WithError(err).WithField("id", id).Error("Error updating category")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary Delete category
// @Description Delete a specific category and its subcategories
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{} "Category deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{id} [delete]
func deleteCategory(c *gin.Context) {
	id := c.Param("id")
	if err := validateID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := repo.DeleteCategory(c.Request.Context(), id); err != nil {
		logger.WithError(err).WithField("id", id).Error("Error deleting category")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
