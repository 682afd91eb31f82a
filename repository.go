package main

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	errNotFound         = errors.New("resource not found")
	errConflict         = errors.New("resource already exists")
	errInvalidReference = errors.New("referenced resource does not exist")
)

// CatalogRepository stores the transaction type / category / subcategory tree
// and the flat status dictionary. An empty parent id lists every entry.
type CatalogRepository interface {
	ListTransactionTypes(ctx context.Context) ([]TransactionType, error)
	CreateTransactionType(ctx context.Context, name string) (TransactionType, error)
	UpdateTransactionType(ctx context.Context, id, name string) (TransactionType, error)
	DeleteTransactionType(ctx context.Context, id string) error

	ListCategories(ctx context.Context, transactionTypeID string) ([]Category, error)
	CreateCategory(ctx context.Context, transactionTypeID, name string) (Category, error)
	UpdateCategory(ctx context.Context, id, transactionTypeID, name string) (Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error)
	CreateSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error)
	UpdateSubcategory(ctx context.Context, id, categoryID, name string) (Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error

	ListStatuses(ctx context.Context) ([]Status, error)
	CreateStatus(ctx context.Context, name string) (Status, error)
	UpdateStatus(ctx context.Context, id, name string) (Status, error)
	DeleteStatus(ctx context.Context, id string) error
}

// memoryRepository keeps the catalog in process memory. It backs the
// "memory" storage mode and the handler tests.
type memoryRepository struct {
	mu            sync.RWMutex
	types         map[string]TransactionType
	categories    map[string]Category
	subcategories map[string]Subcategory
	statuses      map[string]Status
	now           func() time.Time
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		types:         make(map[string]TransactionType),
		categories:    make(map[string]Category),
		subcategories: make(map[string]Subcategory),
		statuses:      make(map[string]Status),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// seedDefaults mirrors the default transaction types and statuses created by
// migrations.
func seedDefaults(ctx context.Context, repo CatalogRepository) error {
	for _, name := range []string{"Income", "Expense"} {
		if _, err := repo.CreateTransactionType(ctx, name); err != nil && !errors.Is(err, errConflict) {
			return err
		}
	}
	for _, name := range []string{"Business", "Personal", "Tax"} {
		if _, err := repo.CreateStatus(ctx, name); err != nil && !errors.Is(err, errConflict) {
			return err
		}
	}
	return nil
}

func (m *memoryRepository) ListTransactionTypes(ctx context.Context) ([]TransactionType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	types := make([]TransactionType, 0, len(m.types))
	for _, t := range m.types {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return byName(types[i].Name, types[i].ID, types[j].Name, types[j].ID) })
	return types, nil
}

func (m *memoryRepository) CreateTransactionType(ctx context.Context, name string) (TransactionType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.types {
		if t.Name == name {
			return TransactionType{}, errConflict
		}
	}
	now := m.now()
	t := TransactionType{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}
	m.types[t.ID] = t
	return t, nil
}

func (m *memoryRepository) UpdateTransactionType(ctx context.Context, id, name string) (TransactionType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.types[id]
	if !ok {
		return TransactionType{}, errNotFound
	}
	for _, other := range m.types {
		if other.ID != id && other.Name == name {
			return TransactionType{}, errConflict
		}
	}
	t.Name = name
	t.UpdatedAt = m.now()
	m.types[id] = t
	return t, nil
}

func (m *memoryRepository) DeleteTransactionType(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.types[id]; !ok {
		return errNotFound
	}
	delete(m.types, id)
	for cid, c := range m.categories {
		if c.TransactionTypeID == id {
			m.deleteCategoryLocked(cid)
		}
	}
	return nil
}

func (m *memoryRepository) ListCategories(ctx context.Context, transactionTypeID string) ([]Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	categories := make([]Category, 0)
	for _, c := range m.categories {
		if transactionTypeID == "" || c.TransactionTypeID == transactionTypeID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return byName(categories[i].Name, categories[i].ID, categories[j].Name, categories[j].ID)
	})
	return categories, nil
}

func (m *memoryRepository) CreateCategory(ctx context.Context, transactionTypeID, name string) (Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.types[transactionTypeID]; !ok {
		return Category{}, errInvalidReference
	}
	for _, c := range m.categories {
		if c.TransactionTypeID == transactionTypeID && c.Name == name {
			return Category{}, errConflict
		}
	}
	now := m.now()
	c := Category{ID: uuid.NewString(), Name: name, TransactionTypeID: transactionTypeID, CreatedAt: now, UpdatedAt: now}
	m.categories[c.ID] = c
	return c, nil
}

// UpdateCategory renames a category and may move it, with its subcategories,
// to another transaction type.
func (m *memoryRepository) UpdateCategory(ctx context.Context, id, transactionTypeID, name string) (Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.categories[id]
	if !ok {
		return Category{}, errNotFound
	}
	if _, ok := m.types[transactionTypeID]; !ok {
		return Category{}, errInvalidReference
	}
	for _, other := range m.categories {
		if other.ID != id && other.TransactionTypeID == transactionTypeID && other.Name == name {
			return Category{}, errConflict
		}
	}
	c.Name = name
	c.TransactionTypeID = transactionTypeID
	c.UpdatedAt = m.now()
	m.categories[id] = c
	return c, nil
}

func (m *memoryRepository) DeleteCategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[id]; !ok {
		return errNotFound
	}
	m.deleteCategoryLocked(id)
	return nil
}

func (m *memoryRepository) deleteCategoryLocked(id string) {
	delete(m.categories, id)
	for sid, s := range m.subcategories {
		if s.CategoryID == id {
			delete(m.subcategories, sid)
		}
	}
}

func (m *memoryRepository) ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subcategories := make([]Subcategory, 0)
	for _, s := range m.subcategories {
		if categoryID == "" || s.CategoryID == categoryID {
			subcategories = append(subcategories, s)
		}
	}
	sort.Slice(subcategories, func(i, j int) bool {
		return byName(subcategories[i].Name, subcategories[i].ID, subcategories[j].Name, subcategories[j].ID)
	})
	return subcategories, nil
}

func (m *memoryRepository) CreateSubcategory(ctx context.Context, categoryID, name string) (Subcategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[categoryID]; !ok {
		return Subcategory{}, errInvalidReference
	}
	for _, s := range m.subcategories {
		if s.CategoryID == categoryID && s.Name == name {
			return Subcategory{}, errConflict
		}
	}
	now := m.now()
	s := Subcategory{ID: uuid.NewString(), Name: name, CategoryID: categoryID, CreatedAt: now, UpdatedAt: now}
	m.subcategories[s.ID] = s
	return s, nil
}

func (m *memoryRepository) UpdateSubcategory(ctx context.Context, id, categoryID, name string) (Subcategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.subcategories[id]
	if !ok {
		return Subcategory{}, errNotFound
	}
	if _, ok := m.categories[categoryID]; !ok {
		return Subcategory{}, errInvalidReference
	}
	for _, other := range m.subcategories {
		if other.ID != id && other.CategoryID == categoryID && other.Name == name {
			return Subcategory{}, errConflict
		}
	}
	s.Name = name
	s.CategoryID = categoryID
	s.UpdatedAt = m.now()
	m.subcategories[id] = s
	return s, nil
}

func (m *memoryRepository) DeleteSubcategory(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.subcategories[id]; !ok {
		return errNotFound
	}
	delete(m.subcategories, id)
	return nil
}

func (m *memoryRepository) ListStatuses(ctx context.Context) ([]Status, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	statuses := make([]Status, 0, len(m.statuses))
	for _, s := range m.statuses {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool {
		return byName(statuses[i].Name, statuses[i].ID, statuses[j].Name, statuses[j].ID)
	})
	return statuses, nil
}

func (m *memoryRepository) CreateStatus(ctx context.Context, name string) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.statuses {
		if s.Name == name {
			return Status{}, errConflict
		}
	}
	now := m.now()
	s := Status{ID: uuid.NewString(), Name: name, CreatedAt: now, UpdatedAt: now}
	m.statuses[s.ID] = s
	return s, nil
}

func (m *memoryRepository) UpdateStatus(ctx context.Context, id, name string) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.statuses[id]
	if !ok {
		return Status{}, errNotFound
	}
	for _, other := range m.statuses {
		if other.ID != id && other.Name == name {
			return Status{}, errConflict
		}
	}
	s.Name = name
	s.UpdatedAt = m.now()
	m.statuses[id] = s
	return s, nil
}

func (m *memoryRepository) DeleteStatus(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.statuses[id]; !ok {
		return errNotFound
	}
	delete(m.statuses, id)
	return nil
}

// byName orders by name, then id so that equal names sort deterministically
func byName(nameA, idA, nameB, idB string) bool {
	if c := strings.Compare(nameA, nameB); c != 0 {
		return c < 0
	}
	return idA < idB
}
