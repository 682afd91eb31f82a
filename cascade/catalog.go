package cascade

// SentinelLabel is shown for the "nothing selected" option.
const SentinelLabel = "———"

var sentinel = Option{Value: "", Label: SentinelLabel}

// Sentinel returns the synthetic unselected option heading every dependent field.
func Sentinel() Option {
	return sentinel
}

// Category belongs to exactly one transaction type.
type Category struct {
	ID                ID     `json:"id"`
	Name              string `json:"name"`
	TransactionTypeID ID     `json:"transaction_type_id"`
}

// Subcategory belongs to exactly one category.
type Subcategory struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	CategoryID ID     `json:"category_id"`
}

// Catalog is the full category tree fetched once per form session.
type Catalog struct {
	Categories    []Category    `json:"categories"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Option is one entry of a selection field. The JSON shape matches the
// per-parent endpoints, which return [{id, name}].
type Option struct {
	Value ID     `json:"id"`
	Label string `json:"name"`
}

// Store holds a loaded catalog for the lifetime of one filter.
type Store struct {
	categories    []Category
	subcategories []Subcategory
	categoryType  map[ID]ID
}

// NewStore indexes a catalog. Catalog order is kept for option lists.
func NewStore(catalog Catalog) *Store {
	s := &Store{
		categories:    append([]Category(nil), catalog.Categories...),
		subcategories: append([]Subcategory(nil), catalog.Subcategories...),
		categoryType:  make(map[ID]ID, len(catalog.Categories)),
	}
	for _, c := range s.categories {
		s.categoryType[c.ID] = c.TransactionTypeID
	}
	return s
}

// CategoryOptions returns the categories of a transaction type, without the sentinel.
func (s *Store) CategoryOptions(typeID ID) []Option {
	options := make([]Option, 0)
	if typeID.IsZero() {
		return options
	}
	for _, c := range s.categories {
		if c.TransactionTypeID == typeID {
			options = append(options, Option{Value: c.ID, Label: c.Name})
		}
	}
	return options
}

// SubcategoryOptions returns the subcategories of a category, without the sentinel.
func (s *Store) SubcategoryOptions(categoryID ID) []Option {
	options := make([]Option, 0)
	if categoryID.IsZero() {
		return options
	}
	for _, sc := range s.subcategories {
		if sc.CategoryID == categoryID {
			options = append(options, Option{Value: sc.ID, Label: sc.Name})
		}
	}
	return options
}

// CategoryBelongs reports whether categoryID is a category of typeID.
func (s *Store) CategoryBelongs(categoryID, typeID ID) bool {
	t, ok := s.categoryType[categoryID]
	return ok && !typeID.IsZero() && t == typeID
}

// Field is the state of one dependent selection field.
type Field struct {
	Options  []Option `json:"options"`
	Selected ID       `json:"selected"`
}

func clearedField() Field {
	return Field{Options: []Option{sentinel}}
}

// Has reports whether id is one of the field's non-sentinel options.
func (f Field) Has(id ID) bool {
	if id.IsZero() {
		return false
	}
	for _, o := range f.Options {
		if o.Value == id {
			return true
		}
	}
	return false
}

// replace swaps the option list, keeping the selection only if it survives.
// Options with an empty value are dropped since the sentinel is always local.
func (f *Field) replace(options []Option) {
	next := make([]Option, 0, len(options)+1)
	next = append(next, sentinel)
	for _, o := range options {
		if o.Value.IsZero() {
			continue
		}
		next = append(next, o)
	}
	f.Options = next
	if !f.Has(f.Selected) {
		f.Selected = ""
	}
}

func (f Field) clone() Field {
	return Field{Options: append([]Option(nil), f.Options...), Selected: f.Selected}
}
