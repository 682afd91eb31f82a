// Package cascade keeps the category and subcategory fields of a cash-flow
// record form consistent with the selected transaction type.
//
// A Filter works from a preloaded catalog when one is available and falls back
// to per-parent remote queries otherwise. Remote responses are sequenced per
// field so a slow, older response never overwrites a newer one.
package cascade

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrCatalogUnavailable is returned by LoadCatalog when the bulk fetch failed
// and the filter switched to remote queries.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Source provides catalog data, either in bulk or per parent selection.
type Source interface {
	LoadCatalog(ctx context.Context) (Catalog, error)
	LoadCategories(ctx context.Context, transactionTypeID ID) ([]Option, error)
	LoadSubcategories(ctx context.Context, categoryID ID) ([]Option, error)
}

// Selection is the set of chosen ids. Any of them may be unset.
type Selection struct {
	TransactionType ID `json:"transaction_type"`
	Category        ID `json:"category"`
	Subcategory     ID `json:"subcategory"`
}

// State is a snapshot of the three linked fields.
type State struct {
	TransactionType ID    `json:"transaction_type"`
	Category        Field `json:"category"`
	Subcategory     Field `json:"subcategory"`
}

// Selection returns the chosen ids of the snapshot.
func (s State) Selection() Selection {
	return Selection{
		TransactionType: s.TransactionType,
		Category:        s.Category.Selected,
		Subcategory:     s.Subcategory.Selected,
	}
}

type fieldKey int

const (
	categoryField fieldKey = iota
	subcategoryField
)

func (k fieldKey) String() string {
	if k == categoryField {
		return "category"
	}
	return "subcategory"
}

type sequence struct {
	issued  uint64
	applied uint64
}

// Filter is the cascading selection filter for one form session.
type Filter struct {
	source Source
	log    logrus.FieldLogger

	mu          sync.Mutex
	store       *Store
	typeID      ID
	category    Field
	subcategory Field
	seq         [2]sequence
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logrus.FieldLogger) FilterOption {
	return func(f *Filter) {
		if l != nil {
			f.log = l
		}
	}
}

// WithStore starts the filter in local mode with an already loaded catalog.
func WithStore(s *Store) FilterOption {
	return func(f *Filter) {
		f.store = s
	}
}

// WithSelection restores previously submitted values. They are checked
// against the catalog on the next recomputation.
func WithSelection(sel Selection) FilterOption {
	return func(f *Filter) {
		f.typeID = sel.TransactionType
		f.category.Selected = sel.Category
		f.subcategory.Selected = sel.Subcategory
	}
}

// NewFilter creates a filter reading from source. Both dependent fields start
// with only the sentinel option.
func NewFilter(source Source, opts ...FilterOption) *Filter {
	f := &Filter{
		source:      source,
		log:         logrus.StandardLogger(),
		category:    clearedField(),
		subcategory: clearedField(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns a copy of the current field state.
func (f *Filter) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		TransactionType: f.typeID,
		Category:        f.category.clone(),
		Subcategory:     f.subcategory.clone(),
	}
}

// Remote reports whether the filter resolves options through remote queries.
func (f *Filter) Remote() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store == nil
}

// LoadCatalog fetches the whole catalog once and re-derives both dependent
// fields from the current selection. A catalog without categories keeps the
// filter in remote mode. When the fetch fails the filter also stays in remote
// mode, derives the fields through remote queries and returns an error
// wrapping ErrCatalogUnavailable.
func (f *Filter) LoadCatalog(ctx context.Context) (Catalog, error) {
	if f.source == nil {
		return Catalog{}, fmt.Errorf("%w: no source configured", ErrCatalogUnavailable)
	}

	catalog, err := f.source.LoadCatalog(ctx)
	if err != nil {
		f.log.WithError(err).Warn("catalog unavailable, using remote queries")
		f.TransactionTypeChanged(ctx, f.currentType())
		return Catalog{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	if len(catalog.Categories) == 0 {
		f.log.Info("catalog is empty, using remote queries")
		f.TransactionTypeChanged(ctx, f.currentType())
		return catalog, nil
	}

	f.mu.Lock()
	f.store = NewStore(catalog)
	f.mu.Unlock()

	f.log.WithFields(logrus.Fields{
		"categories":    len(catalog.Categories),
		"subcategories": len(catalog.Subcategories),
	}).Debug("catalog loaded")

	f.TransactionTypeChanged(ctx, f.currentType())
	return catalog, nil
}

// TransactionTypeChanged recomputes the category options for typeID and
// cascades to the subcategory field.
func (f *Filter) TransactionTypeChanged(ctx context.Context, typeID ID) {
	f.mu.Lock()
	f.typeID = typeID

	if typeID.IsZero() {
		f.clearLocked(categoryField)
		f.clearLocked(subcategoryField)
		f.mu.Unlock()
		return
	}

	if f.store != nil {
		f.applyLocked(categoryField, f.next(categoryField), f.store.CategoryOptions(typeID))
		f.deriveSubcategoriesLocked(f.category.Selected)
		f.mu.Unlock()
		return
	}

	n := f.next(categoryField)
	f.mu.Unlock()

	options, err := f.fetch(ctx, categoryField, typeID, n)
	if err != nil {
		return
	}

	f.mu.Lock()
	if !f.applyLocked(categoryField, n, options) {
		f.mu.Unlock()
		return
	}
	categoryID := f.category.Selected
	f.mu.Unlock()

	f.CategoryChanged(ctx, categoryID)
}

// CategoryChanged selects categoryID and recomputes the subcategory options.
// A category outside the current options resets the field to the sentinel.
func (f *Filter) CategoryChanged(ctx context.Context, categoryID ID) {
	f.mu.Lock()

	if f.store != nil {
		if !f.store.CategoryBelongs(categoryID, f.typeID) {
			categoryID = ""
		}
		f.category.Selected = categoryID
		f.deriveSubcategoriesLocked(categoryID)
		f.mu.Unlock()
		return
	}

	if !f.category.Has(categoryID) {
		categoryID = ""
	}
	f.category.Selected = categoryID
	if categoryID.IsZero() {
		f.clearLocked(subcategoryField)
		f.mu.Unlock()
		return
	}

	n := f.next(subcategoryField)
	f.mu.Unlock()

	options, err := f.fetch(ctx, subcategoryField, categoryID, n)
	if err != nil {
		return
	}

	f.mu.Lock()
	f.applyLocked(subcategoryField, n, options)
	f.mu.Unlock()
}

// SubcategoryChanged records the chosen subcategory if it is one of the
// current options; anything else resets the field to the sentinel.
func (f *Filter) SubcategoryChanged(subcategoryID ID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.subcategory.Has(subcategoryID) {
		subcategoryID = ""
	}
	f.subcategory.Selected = subcategoryID
}

func (f *Filter) currentType() ID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.typeID
}

func (f *Filter) fetch(ctx context.Context, key fieldKey, parent ID, n uint64) ([]Option, error) {
	if f.source == nil {
		return nil, errors.New("no source configured")
	}

	var (
		options []Option
		err     error
	)
	if key == categoryField {
		options, err = f.source.LoadCategories(ctx, parent)
	} else {
		options, err = f.source.LoadSubcategories(ctx, parent)
	}
	if err != nil {
		f.log.WithError(err).WithFields(logrus.Fields{
			"field":  key.String(),
			"parent": parent.String(),
			"seq":    n,
		}).Warn("remote option query failed")
	}
	return options, err
}

func (f *Filter) deriveSubcategoriesLocked(categoryID ID) {
	if categoryID.IsZero() {
		f.clearLocked(subcategoryField)
		return
	}
	f.applyLocked(subcategoryField, f.next(subcategoryField), f.store.SubcategoryOptions(categoryID))
}

func (f *Filter) clearLocked(key fieldKey) {
	n := f.next(key)
	f.seq[key].applied = n
	*f.field(key) = clearedField()
}

// applyLocked installs options for a response numbered n. It returns false
// when a newer response has already been applied.
func (f *Filter) applyLocked(key fieldKey, n uint64, options []Option) bool {
	if n < f.seq[key].applied {
		f.log.WithFields(logrus.Fields{
			"field":   key.String(),
			"seq":     n,
			"applied": f.seq[key].applied,
		}).Debug("discarding stale options")
		return false
	}
	f.seq[key].applied = n
	f.field(key).replace(options)
	return true
}

func (f *Filter) next(key fieldKey) uint64 {
	f.seq[key].issued++
	return f.seq[key].issued
}

func (f *Filter) field(key fieldKey) *Field {
	if key == categoryField {
		return &f.category
	}
	return &f.subcategory
}
