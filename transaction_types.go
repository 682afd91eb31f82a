package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Transaction type handler functions

// @Summary Get all transaction types
// @Description Retrieve all transaction types ordered by name
// @Tags transaction-types
// @Produce json
// @Success 200 {array} TransactionType "List of transaction types"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transaction-types [get]
func getTransactionTypes(c *gin.Context) {
	types, err := repo.ListTransactionTypes(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("Error fetching transaction types")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transaction types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

// @Summary Create transaction type
// @Description Create a new transaction type
// @Tags transaction-types
// @Accept json
// @Produce json
// @Param transaction_type body NameRequest true "Transaction type data (name required)"
// @Success 201 {object} TransactionType "Created transaction type"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 409 {object} map[string]interface{} "Transaction type already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transaction-types [post]
func createTransactionType(c *gin.Context) {
	var request NameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Validate required fields
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transactionType, err := repo.CreateTransactionType(c.Request.Context(), strings.TrimSpace(request.Name))
	if err != nil {
		logger.WithError(err).Error("Error creating transaction type")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, transactionType)
}

// @Summary Update transaction type
// @Description Rename a transaction type
// @Tags transaction-types
// @Accept json
// @Produce json
// @Param id path string true "Transaction type ID"
// @Param transaction_type body NameRequest true "Updated transaction type data"
// @Success 200 {object} TransactionType "Updated transaction type"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction type not found"
// @Failure 409 {object} map[string]interface{} "Transaction type already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transaction-types/{id} [put]
func updateTransactionType(c *gin.Context) {
	id := c.Param("id")
	var request NameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type ID"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transactionType, err := repo.UpdateTransactionType(c.Request.Context(), id, strings.TrimSpace(request.Name))
	if err != nil {
		logger.WithError(err).WithField("id", id).Error("Error updating transaction type")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, transactionType)
}

// @Summary Delete transaction type
// @Description Delete a transaction type together with its categories and subcategories
// @Tags transaction-types
// @Produce json
// @Param id path string true "Transaction type ID"
// @Success 200 {object} map[string]interface{} "Transaction type deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transaction-types/{id} [delete]
func deleteTransactionType(c *gin.Context) {
	id := c.Param("id")
	if err := validateID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type ID"})
		return
	}

	if err := repo.DeleteTransactionType(c.Request.Context(), id); err != nil {
		logger.WithError(err).WithField("id", id).Error("Error deleting transaction type")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction type deleted successfully"})
}
