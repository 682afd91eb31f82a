package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects duplicates per parent", func(t *testing.T) {
		m := newMemoryRepository()
		expense, err := m.CreateTransactionType(ctx, "Expense")
		require.NoError(t, err)
		income, err := m.CreateTransactionType(ctx, "Income")
		require.NoError(t, err)

		_, err = m.CreateTransactionType(ctx, "Expense")
		assert.ErrorIs(t, err, errConflict)

		food, err := m.CreateCategory(ctx, expense.ID, "Food")
		require.NoError(t, err)
		_, err = m.CreateCategory(ctx, expense.ID, "Food")
		assert.ErrorIs(t, err, errConflict)
		_, err = m.CreateCategory(ctx, income.ID, "Food")
		assert.NoError(t, err)

		_, err = m.CreateSubcategory(ctx, food.ID, "Groceries")
		require.NoError(t, err)
		_, err = m.CreateSubcategory(ctx, food.ID, "Groceries")
		assert.ErrorIs(t, err, errConflict)
	})

	t.Run("create rejects unknown parents", func(t *testing.T) {
		m := newMemoryRepository()

		_, err := m.CreateCategory(ctx, "missing", "Food")
		assert.ErrorIs(t, err, errInvalidReference)
		_, err = m.CreateSubcategory(ctx, "missing", "Groceries")
		assert.ErrorIs(t, err, errInvalidReference)
	})

	t.Run("deleting a type cascades", func(t *testing.T) {
		m := newMemoryRepository()
		expense, err := m.CreateTransactionType(ctx, "Expense")
		require.NoError(t, err)
		income, err := m.CreateTransactionType(ctx, "Income")
		require.NoError(t, err)
		food, err := m.CreateCategory(ctx, expense.ID, "Food")
		require.NoError(t, err)
		salary, err := m.CreateCategory(ctx, income.ID, "Salary")
		require.NoError(t, err)
		_, err = m.CreateSubcategory(ctx, food.ID, "Groceries")
		require.NoError(t, err)
		bonus, err := m.CreateSubcategory(ctx, salary.ID, "Bonus")
		require.NoError(t, err)

		require.NoError(t, m.DeleteTransactionType(ctx, expense.ID))

		categories, err := m.ListCategories(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []Category{salary}, categories)

		subcategories, err := m.ListSubcategories(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []Subcategory{bonus}, subcategories)

		assert.ErrorIs(t, m.DeleteTransactionType(ctx, expense.ID), errNotFound)
	})

	t.Run("lists are ordered by name", func(t *testing.T) {
		m := newMemoryRepository()
		for _, name := range []string{"Transfer", "Expense", "Income"} {
			_, err := m.CreateTransactionType(ctx, name)
			require.NoError(t, err)
		}

		types, err := m.ListTransactionTypes(ctx)

		require.NoError(t, err)
		require.Len(t, types, 3)
		assert.Equal(t, "Expense", types[0].Name)
		assert.Equal(t, "Income", types[1].Name)
		assert.Equal(t, "Transfer", types[2].Name)
	})
}

func TestSeedDefaults(t *testing.T) {
	m := newMemoryRepository()

	require.NoError(t, seedDefaults(context.Background(), m))
	require.NoError(t, seedDefaults(context.Background(), m))

	types, err := m.ListTransactionTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Expense", types[0].Name)
	assert.Equal(t, "Income", types[1].Name)

	statuses, err := m.ListStatuses(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.Equal(t, "Business", statuses[0].Name)
}
