package cascade

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

func newBackend(t *testing.T, catalogStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(DefaultCatalogPath, func(w http.ResponseWriter, r *http.Request) {
		if catalogStatus != http.StatusOK {
			w.WriteHeader(catalogStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"categories": [{"id": 1, "name": "Food", "transaction_type_id": 7}, {"id": 2, "name": "Rent", "transaction_type_id": 8}],
			"subcategories": [{"id": 10, "name": "Groceries", "category_id": 1}]
		}`))
	})
	mux.HandleFunc(CategoriesPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("transaction_type_id") != "7" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Food"}]`))
	})
	mux.HandleFunc(SubcategoriesPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("category_id") != "1" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id": "10", "name": "Groceries"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes numeric ids of the bulk catalog", func(t *testing.T) {
		srv := newBackend(t, http.StatusOK)
		src := NewHTTPSource(srv.URL + "/")

		catalog, err := src.LoadCatalog(ctx)

		require.NoError(t, err)
		require.Len(t, catalog.Categories, 2)
		assert.Equal(t, Category{ID: "1", Name: "Food", TransactionTypeID: "7"}, catalog.Categories[0])
		assert.Equal(t, Subcategory{ID: "10", Name: "Groceries", CategoryID: "1"}, catalog.Subcategories[0])
	})

	t.Run("per-parent queries send the parent id", func(t *testing.T) {
		srv := newBackend(t, http.StatusOK)
		src := NewHTTPSource(srv.URL)

		categories, err := src.LoadCategories(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, []Option{{Value: "1", Label: "Food"}}, categories)

		subcategories, err := src.LoadSubcategories(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, []Option{{Value: "10", Label: "Groceries"}}, subcategories)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := newBackend(t, http.StatusForbidden)
		src := NewHTTPSource(srv.URL)

		_, err := src.LoadCatalog(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("custom catalog path", func(t *testing.T) {
		srv := newBackend(t, http.StatusOK)
		src := NewHTTPSource(srv.URL, WithCatalogPath("/missing/"), WithHTTPClient(srv.Client()))

		_, err := src.LoadCatalog(ctx)

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("drives a filter end to end with catalog fallback", func(t *testing.T) {
		srv := newBackend(t, http.StatusInternalServerError)
		f := NewFilter(NewHTTPSource(srv.URL), WithLogger(quietLogger()),
			WithSelection(Selection{TransactionType: "7", Category: "1"}))

		_, err := f.LoadCatalog(ctx)

		assert.ErrorIs(t, err, ErrCatalogUnavailable)
		state := f.State()
		assert.Equal(t, ID("1"), state.Category.Selected)
		assert.Equal(t, []ID{"", "10"}, values(state.Subcategory))
	})
}
