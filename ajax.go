package main

import (
	"net/http"
	"strings"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/cascade"

	"github.com/gin-gonic/gin"
)

// AJAX handler functions used by the record form

// @Summary Load categories of a transaction type
// @Description Returns the categories valid for the given transaction type as [{id, name}]. A missing transaction_type_id yields an empty list.
// @Tags ajax
// @Produce json
// @Param transaction_type_id query string false "Transaction type ID"
// @Success 200 {array} cascade.Option "Category options"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /ajax/load-categories/ [get]
func loadCategories(c *gin.Context) {
	typeID := strings.TrimSpace(c.Query("transaction_type_id"))
	if typeID == "" {
		c.JSON(http.StatusOK, []cascade.Option{})
		return
	}
	if err := validateID(typeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type ID"})
		return
	}

	categories, err := repo.ListCategories(c.Request.Context(), typeID)
	if err != nil {
		logger.WithError(err).WithField("transaction_type_id", typeID).Error("Error loading categories")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	options := make([]cascade.Option, 0, len(categories))
	for _, category := range categories {
		options = append(options, cascade.Option{Value: cascade.ID(category.ID), Label: category.Name})
	}

	c.JSON(http.StatusOK, options)
}

// @Summary Load subcategories of a category
// @Description Returns the subcategories valid for the given category as [{id, name}]. A missing category_id yields an empty list.
// @Tags ajax
// @Produce json
// @Param category_id query string false "Category ID"
// @Success 200 {array} cascade.Option "Subcategory options"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /ajax/load-subcategories/ [get]
func loadSubcategories(c *gin.Context) {
	categoryID := strings.TrimSpace(c.Query("category_id"))
	if categoryID == "" {
		c.JSON(http.StatusOK, []cascade.Option{})
		return
	}
	if err := validateID(categoryID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	subcategories, err := repo.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		logger.WithError(err).WithField("category_id", categoryID).Error("Error loading subcategories")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	options := make([]cascade.Option, 0, len(subcategories))
	for _, subcategory := range subcategories {
		options = append(options, cascade.Option{Value: cascade.ID(subcategory.ID), Label: subcategory.Name})
	}

	c.JSON(http.StatusOK, options)
}

// @Summary Load the whole catalog
// @Description Returns every category and subcategory for client-side filtering of the record form.
// @Tags ajax
// @Produce json
// @Success 200 {object} cascade.Catalog "Categories and subcategories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /admin/cash_flow/cashflowrecord/ajax/load-all-categories/ [get]
func loadAllCategories(c *gin.Context) {
	catalog, err := buildCatalog(c)
	if err != nil {
		logger.WithError(err).Error("Error loading catalog")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// @Summary Resolve the record form options
// @Description Applies the cascading filter to a submitted selection and returns the option lists of the three linked fields. Selections that do not belong to their parent are reset.
// @Tags ajax
// @Produce json
// @Param transaction_type_id query string false "Transaction type ID"
// @Param category_id query string false "Category ID"
// @Param subcategory_id query string false "Subcategory ID"
// @Success 200 {object} cascade.State "Field state"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /ajax/form-options/ [get]
func loadFormOptions(c *gin.Context) {
	catalog, err := buildCatalog(c)
	if err != nil {
		logger.WithError(err).Error("Error loading catalog")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	filter := cascade.NewFilter(nil,
		cascade.WithStore(cascade.NewStore(catalog)),
		cascade.WithLogger(logger),
		cascade.WithSelection(cascade.Selection{
			TransactionType: cascade.ParseID(c.Query("transaction_type_id")),
			Category:        cascade.ParseID(c.Query("category_id")),
			Subcategory:     cascade.ParseID(c.Query("subcategory_id")),
		}),
	)
	ctx := c.Request.Context()
	state := filter.State()
	filter.TransactionTypeChanged(ctx, state.TransactionType)

	c.JSON(http.StatusOK, filter.State())
}

func buildCatalog(c *gin.Context) (cascade.Catalog, error) {
	ctx := c.Request.Context()

	categories, err := repo.ListCategories(ctx, "")
	if err != nil {
		return cascade.Catalog{}, err
	}
	subcategories, err := repo.ListSubcategories(ctx, "")
	if err != nil {
		return cascade.Catalog{}, err
	}

	catalog := cascade.Catalog{
		Categories:    make([]cascade.Category, 0, len(categories)),
		Subcategories: make([]cascade.Subcategory, 0, len(subcategories)),
	}
	for _, category := range categories {
		catalog.Categories = append(catalog.Categories, cascade.Category{
			ID:                cascade.ID(category.ID),
			Name:              category.Name,
			TransactionTypeID: cascade.ID(category.TransactionTypeID),
		})
	}
	for _, subcategory := range subcategories {
		catalog.Subcategories = append(catalog.Subcategories, cascade.Subcategory{
			ID:         cascade.ID(subcategory.ID),
			Name:       subcategory.Name,
			CategoryID: cascade.ID(subcategory.CategoryID),
		})
	}
	return catalog, nil
}
