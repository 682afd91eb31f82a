package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/db/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgRepository is the Postgres-backed CatalogRepository built on the
// sqlc-generated queries.
type pgRepository struct {
	queries *generated.Queries
}

func newPgRepository(queries *generated.Queries) *pgRepository {
	return &pgRepository{queries: queries}
}

func (r *pgRepository) ListTransactionTypes(ctx context.Context) ([]TransactionType, error) {
	dbTypes, err := r.queries.GetTransactionTypes(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]TransactionType, 0, len(dbTypes))
	for _, t := range dbTypes {
		types = append(types, convertTransactionType(t))
	}
	return types, nil
}

func (r *pgRepository) CreateTransactionType(ctx context.Context, name string) (TransactionType, error) {
	t, err := r.queries.CreateTransactionType(ctx, name)
	if err != nil {
		return TransactionType{}, constraintOr(err)
	}
	return convertTransactionType(t), nil
}

func (r *pgRepository) UpdateTransactionType(ctx context.Context, id, name string) (TransactionType, error) {
	pgID, err := parseUUID(id)
	if err != nil {
		return TransactionType{}, errNotFound
	}

	t, err := r.queries.UpdateTransactionType(ctx, generated.UpdateTransactionTypeParams{
		ID:   pgID,
		Name: name,
	})
	if err != nil {
		return TransactionType{}, notFoundOr(constraintOr(err))
	}
	return convertTransactionType(t), nil
}

func (r *pgRepository) DeleteTransactionType(ctx context.Context, id string) error {
	pgID, err := parseUUID(id)
	if err != nil {
		return errNotFound
	}

	// First, get the transaction type to ensure it exists
	if _, err := r.queries.GetTransactionTypeByID(ctx, pgID); err != nil {
		return notFoundOr(err)
	}
	return r.queries.DeleteTransactionType(ctx, pgID)
}

func (r *pgRepository) ListCategories(ctx context.Context, transactionTypeID string) ([]Category, error) {
	var (
		dbCategories []generated.Category
		err          error
	)
	if transactionTypeID == "" {
		dbCategories, err = r.queries.GetCategories(ctx)
	} else {
		pgID, parseErr := parseUUID(transactionTypeID)
		if parseErr != nil {
			return []Category{}, nil
		}
		dbCategories, err = r.queries.GetCategoriesByTransactionType(ctx, pgID)
	}
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(dbCategories))
	for _, c := range dbCategories {
		categories = append(categories, convertCategory(c))
	}
	return categories, nil
}

func (r *pgRepository) CreateCategory(ctx context.Context, transactionTypeID, name string) (Category, error) {
	pgID, err := parseUUID(transactionTypeID)
	if err != nil {
		return Category{}, errInvalidReference
	}

	c, err := r.queries.CreateCategory(ctx, generated.CreateCategoryParams{
		TransactionTypeID: pgID,
		Name:              name,
	})
	if err != nil {
		return Category{}, constraintOr(err)
	}
	return convertCategory(c), nil
}

func (r *pgRepository) UpdateCategory(ctx context.Context, id, transactionTypeID, name string) (Category, error) {
	pgID, err := parseUUID(id)
	if err != nil {
		return Category{}, errNotFound
	}
	typeID, err := parseUUID(transactionTypeID)
	if err != nil {
		return Category{}, errInvalidReference
	}

	c, err := r.queries.UpdateCategory(ctx, generated.UpdateCategoryParams{
		ID:                pgID,
		TransactionTypeID: typeID,
		Name:              name,
	})
	if err != nil {
		return Category{}, notFoundOr(constraintOr(err))
	}
	return convertCategory(c), nil
}

func (r *pgRepository) DeleteCategory(ctx context.Context, id string) error {
	pgID, err := parseUUID(id)
	if err != nil {
		return errNotFound
	}

	if _, err := r.queries.GetCategoryByID(ctx, pgID); err != nil {
		return notFoundOr(err)
	}
	return r.queries.DeleteCategory(ctx, pgID)
}

func (r *pgRepository) ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error) {
	var (
		dbSubcategories []generated.Subcategory
		err             error
	)
	if categoryID == "" {
		dbSubcategories, err = r.queries.GetSubcategories(ctx)
	} else {
		pgID, parseErr := parseUUID(categoryID)
		if parseErr != nil {
			return []Subcategory{}, nil
		}
		dbSubcategories, err = r.queries.GetSubcategoriesByCategory(ctx, pgID)
	}
	if err != nil {
		return nil, err
	}

	subcategories := make([]Subcategory, 0, len(dbSubcategories))
	for _, s := range dbSubcategories {
		subcategories = append(subcategories, convertSubcategory(s))
	}
	return subcategories, nil
}

func (r *pgRepository) CreateSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error) {
	pgID, err := parseUUID(categoryID)
	if err != nil {
		return Subcategory{}, errInvalidReference
	}

	s, err := r.queries.CreateSubcategory(ctx, generated.CreateSubcategoryParams{
		CategoryID: pgID,
		Name:       name,
	})
	if err != nil {
		return Subcategory{}, constraintOr(err)
	}
	return convertSubcategory(s), nil
}

func (r *pgRepository) UpdateSubcategory(ctx context.Context, id, categoryID, name string) (Subcategory, error) {
	pgID, err := parseUUID(id)
	if err != nil {
		return Subcategory{}, errNotFound
	}
	parentID, err := parseUUID(categoryID)
	if err != nil {
		return Subcategory{}, errInvalidReference
	}

	s, err := r.queries.UpdateSubcategory(ctx, generated.UpdateSubcategoryParams{
		ID:         pgID,
		CategoryID: parentID,
		Name:       name,
	})
	if err != nil {
		return Subcategory{}, notFoundOr(constraintOr(err))
	}
	return convertSubcategory(s), nil
}

func (r *pgRepository) DeleteSubcategory(ctx context.Context, id string) error {
	pgID, err := parseUUID(id)
	if err != nil {
		return errNotFound
	}

	if _, err := r.queries.GetSubcategoryByID(ctx, pgID); err != nil {
		return notFoundOr(err)
	}
	return r.queries.DeleteSubcategory(ctx, pgID)
}

func (r *pgRepository) ListStatuses(ctx context.Context) ([]Status, error) {
	dbStatuses, err := r.queries.GetStatuses(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(dbStatuses))
	for _, s := range dbStatuses {
		statuses = append(statuses, convertStatus(s))
	}
	return statuses, nil
}

func (r *pgRepository) CreateStatus(ctx context.Context, name string) (Status, error) {
	s, err := r.queries.CreateStatus(ctx, name)
	if err != nil {
		return Status{}, constraintOr(err)
	}
	return convertStatus(s), nil
}

func (r *pgRepository) UpdateStatus(ctx context.Context, id, name string) (Status, error) {
	pgID, err := parseUUID(id)
	if err != nil {
		return Status{}, errNotFound
	}

	s, err := r.queries.UpdateStatus(ctx, generated.UpdateStatusParams{
		ID:   pgID,
		Name: name,
	})
	if err != nil {
		return Status{}, notFoundOr(constraintOr(err))
	}
	return convertStatus(s), nil
}

func (r *pgRepository) DeleteStatus(ctx context.Context, id string) error {
	pgID, err := parseUUID(id)
	if err != nil {
		return errNotFound
	}

	if _, err := r.queries.GetStatusByID(ctx, pgID); err != nil {
		return notFoundOr(err)
	}
	return r.queries.DeleteStatus(ctx, pgID)
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errNotFound
	}
	return err
}

// constraintOr tags unique and foreign key violations with the repository
// sentinels. The driver error stays in the chain for handleDatabaseError.
func constraintOr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", errConflict, err)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %w", errInvalidReference, err)
	}
	return err
}
