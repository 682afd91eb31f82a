package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUID(t *testing.T) {
	t.Run("valid UUID string returns pgtype.UUID", func(t *testing.T) {
		testUUID := uuid.New()

		result, err := parseUUID(testUUID.String())

		require.NoError(t, err)
		assert.Equal(t, testUUID, uuid.UUID(result.Bytes))
		assert.True(t, result.Valid)
	})

	t.Run("uppercase UUID strings are handled correctly", func(t *testing.T) {
		testUUID := uuid.New()

		result, err := parseUUID(strings.ToUpper(testUUID.String()))

		require.NoError(t, err)
		assert.Equal(t, testUUID.String(), uuidString(result))
	})

	for _, invalid := range []string{"", "not-a-valid-uuid", "123e4567-e89b-12d3-a456-42661417400"} {
		t.Run(fmt.Sprintf("invalid UUID %q returns error", invalid), func(t *testing.T) {
			result, err := parseUUID(invalid)

			require.Error(t, err)
			assert.False(t, result.Valid)
			assert.Contains(t, err.Error(), "invalid UUID format")
		})
	}

	t.Run("NULL UUID renders empty", func(t *testing.T) {
		assert.Equal(t, "", uuidString(pgtype.UUID{}))
	})
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("Food"))
	assert.NoError(t, validateName("  Пополнение "))
	assert.NoError(t, validateName(strings.Repeat("я", 100)))

	assert.Error(t, validateName(""))
	assert.Error(t, validateName(" \t "))
	assert.Error(t, validateName(strings.Repeat("a", 101)))
}

func TestHandleDatabaseError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found sentinel", errNotFound, http.StatusNotFound, "Resource not found"},
		{"no rows", fmt.Errorf("get category: %w", pgx.ErrNoRows), http.StatusNotFound, "Resource not found"},
		{"conflict sentinel", errConflict, http.StatusConflict, "Resource already exists"},
		{"invalid reference sentinel", errInvalidReference, http.StatusBadRequest, "Referenced resource does not exist"},
		{
			"unique category name",
			&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "unique_category_per_type"},
			http.StatusConflict,
			"Category with this name already exists for the transaction type",
		},
		{
			"unique subcategory name",
			&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "unique_subcategory_per_category"},
			http.StatusConflict,
			"Subcategory with this name already exists for the category",
		},
		{
			"unique transaction type name",
			&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "transaction_types_name_key"},
			http.StatusConflict,
			"Transaction type with this name already exists",
		},
		{
			"unique status name",
			&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "statuses_name_key"},
			http.StatusConflict,
			"Status with this name already exists",
		},
		{
			"wrapped constraint keeps its message",
			fmt.Errorf("%w: %w", errConflict, &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "unique_subcategory_per_category"}),
			http.StatusConflict,
			"Subcategory with this name already exists for the category",
		},
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, http.StatusBadRequest, "Referenced resource does not exist"},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := handleDatabaseError(tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestConvertCategory(t *testing.T) {
	id, typeID := uuid.New(), uuid.New()
	created := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	category := convertCategory(generated.Category{
		ID:                pgtype.UUID{Bytes: id, Valid: true},
		TransactionTypeID: pgtype.UUID{Bytes: typeID, Valid: true},
		Name:              "Food",
		CreatedAt:         pgtype.Timestamp{Time: created, Valid: true},
		UpdatedAt:         pgtype.Timestamp{Time: created, Valid: true},
	})

	assert.Equal(t, id.String(), category.ID)
	assert.Equal(t, typeID.String(), category.TransactionTypeID)
	assert.Equal(t, "Food", category.Name)
	assert.Equal(t, created, category.CreatedAt)
}
