// Package recordform guards submission of the cash-flow record form: it
// checks required fields and the amount before the form leaves the client,
// and fills the creation date on new records.
package recordform

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Form field keys.
const (
	FieldCreatedDate     = "created_date"
	FieldStatus          = "status"
	FieldTransactionType = "transaction_type"
	FieldCategory        = "category"
	FieldSubcategory     = "subcategory"
	FieldAmount          = "amount"
	FieldComment         = "comment"
)

// DateLayout is the value format of the date input.
const DateLayout = "2006-01-02"

// Record holds the raw submitted values of the record form.
type Record struct {
	CreatedDate     string `form:"created_date" validate:"required"`
	Status          string `form:"status"`
	TransactionType string `form:"transaction_type" validate:"required"`
	Category        string `form:"category" validate:"required"`
	Subcategory     string `form:"subcategory" validate:"required"`
	Amount          string `form:"amount" validate:"required"`
	Comment         string `form:"comment"`
}

// requiredFields lists the checked fields in display order.
var requiredFields = []struct {
	key   string
	label string
}{
	{FieldCreatedDate, "Created date"},
	{FieldTransactionType, "Transaction type"},
	{FieldCategory, "Category"},
	{FieldSubcategory, "Subcategory"},
	{FieldAmount, "Amount"},
}

var (
	decoder  = form.NewDecoder()
	validate = validator.New()
)

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
}

// Decode maps submitted form values onto a Record.
func Decode(values url.Values) (Record, error) {
	var r Record
	if err := decoder.Decode(&r, values); err != nil {
		return Record{}, fmt.Errorf("decode record form: %w", err)
	}
	return r, nil
}

// FieldError is one failed check.
type FieldError struct {
	Field   string
	Message string
}

// Result collects every failed check of one submission attempt.
type Result struct {
	Amount decimal.Decimal
	Errors []FieldError
}

// OK reports whether the form may be submitted.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Invalid reports whether field failed a check.
func (r *Result) Invalid(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

// InvalidFields returns the flagged fields without duplicates, in check order.
func (r *Result) InvalidFields() []string {
	seen := make(map[string]bool, len(r.Errors))
	fields := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if !seen[e.Field] {
			seen[e.Field] = true
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Clear drops the flags of a field once the user edits it.
func (r *Result) Clear(field string) {
	kept := r.Errors[:0]
	for _, e := range r.Errors {
		if e.Field != field {
			kept = append(kept, e)
		}
	}
	r.Errors = kept
}

// Notice renders all failures as one message, or "" when the form is valid.
func (r *Result) Notice() string {
	if r.OK() {
		return ""
	}
	var b strings.Builder
	b.WriteString("Errors:")
	for _, e := range r.Errors {
		b.WriteString("\n - ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Error lets a failed Result travel as an error.
func (r *Result) Error() string {
	return r.Notice()
}

// Normalize trims surrounding whitespace from every value.
func (r *Record) Normalize() {
	r.CreatedDate = strings.TrimSpace(r.CreatedDate)
	r.Status = strings.TrimSpace(r.Status)
	r.TransactionType = strings.TrimSpace(r.TransactionType)
	r.Category = strings.TrimSpace(r.Category)
	r.Subcategory = strings.TrimSpace(r.Subcategory)
	r.Amount = strings.TrimSpace(r.Amount)
	r.Comment = strings.TrimSpace(r.Comment)
}

// Check runs the submission guard over r.
func Check(r Record) *Result {
	r.Normalize()
	res := &Result{}

	missing := make(map[string]bool)
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				missing[fe.Field()] = true
			}
		}
	}
	for _, f := range requiredFields {
		if missing[f.key] {
			res.Errors = append(res.Errors, FieldError{
				Field:   f.key,
				Message: fmt.Sprintf("Field %q is required", f.label),
			})
		}
	}

	if r.Amount != "" {
		amount, err := ParseAmount(r.Amount)
		if err != nil {
			res.Errors = append(res.Errors, FieldError{Field: FieldAmount, Message: "Amount must be a positive number"})
		} else {
			res.Amount = amount
		}
	}

	return res
}

// ErrAmountNotPositive is returned for amounts that are not a positive number.
var ErrAmountNotPositive = errors.New("amount must be a positive number")

// ParseAmount reads a decimal amount. Spaces are ignored and a comma is
// accepted as the decimal separator.
func ParseAmount(raw string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	clean = strings.Replace(clean, ",", ".", 1)
	amount, err := decimal.NewFromString(clean)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}
	return amount, nil
}

// View tells which page the form is rendered on.
type View int

const (
	EditView View = iota
	CreateView
)

// IsCreatePath reports whether a request path belongs to a create page.
func IsCreatePath(path string) bool {
	return strings.Contains(path, "/create/")
}

// ViewForPath picks the view from a request path.
func ViewForPath(path string) View {
	if IsCreatePath(path) {
		return CreateView
	}
	return EditView
}

// DefaultCreatedDate fills an empty creation date with today's local date on
// the create view. It reports whether the record was changed.
func DefaultCreatedDate(r *Record, view View, now time.Time) bool {
	if view != CreateView || strings.TrimSpace(r.CreatedDate) != "" {
		return false
	}
	r.CreatedDate = now.Local().Format(DateLayout)
	return true
}
