package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// Postgres error codes handled by handleDatabaseError
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Validation functions

// validateName validates that a name is not empty, just whitespace or too long
func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len([]rune(trimmed)) > 100 {
		return fmt.Errorf("name cannot be longer than 100 characters")
	}
	return nil
}

// validateID validates that an id is a well-formed UUID
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid UUID format: %s", id)
	}
	return nil
}

// handleDatabaseError converts repository errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			switch pgErr.ConstraintName {
			case "transaction_types_name_key":
				return http.StatusConflict, "Transaction type with this name already exists"
			case "unique_category_per_type":
				return http.StatusConflict, "Category with this name already exists for the transaction type"
			case "unique_subcategory_per_category":
				return http.StatusConflict, "Subcategory with this name already exists for the category"
			case "statuses_name_key":
				return http.StatusConflict, "Status with this name already exists"
			}
			return http.StatusConflict, "Resource already exists"
		case pgForeignKeyViolation:
			return http.StatusBadRequest, "Referenced resource does not exist"
		}
	}

	switch {
	case errors.Is(err, errNotFound), errors.Is(err, pgx.ErrNoRows):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, errInvalidReference):
		return http.StatusBadRequest, "Referenced resource does not exist"
	case errors.Is(err, errConflict):
		return http.StatusConflict, "Resource already exists"
	}

	// Default to internal server error
	return http.StatusInternalServerError, "Internal server error"
}

// UUID and conversion utility functions

// parseUUID converts a string UUID to pgtype.UUID
func parseUUID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid UUID format: %s", id)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

// uuidString converts a pgtype.UUID to its string form, "" when NULL
func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}

// convertTransactionType converts a generated.TransactionType to our TransactionType struct
func convertTransactionType(t generated.TransactionType) TransactionType {
	return TransactionType{
		ID:        uuidString(t.ID),
		Name:      t.Name,
		CreatedAt: t.CreatedAt.Time,
		UpdatedAt: t.UpdatedAt.Time,
	}
}

// convertCategory converts a generated.Category to our Category struct
func convertCategory(c generated.Category) Category {
	return Category{
		ID:                uuidString(c.ID),
		Name:              c.Name,
		TransactionTypeID: uuidString(c.TransactionTypeID),
		CreatedAt:         c.CreatedAt.Time,
		UpdatedAt:         c.UpdatedAt.Time,
	}
}

// convertStatus converts a generated.Status to our Status struct
func convertStatus(s generated.Status) Status {
	return Status{
		ID:        uuidString(s.ID),
		Name:      s.Name,
		CreatedAt: s.CreatedAt.Time,
		UpdatedAt: s.UpdatedAt.Time,
	}
}

// convertSubcategory converts a generated.Subcategory to our Subcategory struct
func convertSubcategory(s generated.Subcategory) Subcategory {
	return Subcategory{
		ID:         uuidString(s.ID),
		Name:       s.Name,
		CategoryID: uuidString(s.CategoryID),
		CreatedAt:  s.CreatedAt.Time,
		UpdatedAt:  s.UpdatedAt.Time,
	}
}
