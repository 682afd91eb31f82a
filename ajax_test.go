package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/cascade"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCatalog struct {
	income, expense         string
	salary, food, rent      string
	bonus, groceries, cafes string
	lease                   string
}

// seedTestCatalog builds two types with a few categories and subcategories
func seedTestCatalog(t *testing.T) testCatalog {
	t.Helper()
	require.NoError(t, cleanupTestData())

	var (
		c   testCatalog
		err error
	)
	c.income, err = createTestTransactionType("Income")
	require.NoError(t, err)
	c.expense, err = createTestTransactionType("Expense")
	require.NoError(t, err)

	c.salary, err = createTestCategory(c.income, "Salary")
	require.NoError(t, err)
	c.food, err = createTestCategory(c.expense, "Food")
	require.NoError(t, err)
	c.rent, err = createTestCategory(c.expense, "Rent")
	require.NoError(t, err)

	c.bonus, err = createTestSubcategory(c.salary, "Bonus")
	require.NoError(t, err)
	c.groceries, err = createTestSubcategory(c.food, "Groceries")
	require.NoError(t, err)
	c.cafes, err = createTestSubcategory(c.food, "Cafes")
	require.NoError(t, err)
	c.lease, err = createTestSubcategory(c.rent, "Lease")
	require.NoError(t, err)
	return c
}

func labels(options []cascade.Option) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.Label)
	}
	return out
}

func TestLoadCategories(t *testing.T) {
	c := seedTestCatalog(t)

	t.Run("returns categories of the transaction type", func(t *testing.T) {
		resp := makeRequest("GET", "/ajax/load-categories/?transaction_type_id="+c.expense, nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var options []cascade.Option
		require.NoError(t, parseJSONResponse(resp, &options))
		assert.Equal(t, []string{"Food", "Rent"}, labels(options))
		assert.Equal(t, cascade.ID(c.food), options[0].Value)
	})

	t.Run("uses id and name keys", func(t *testing.T) {
		resp := makeRequest("GET", "/ajax/load-categories/?transaction_type_id="+c.income, nil)

		var raw []map[string]interface{}
		require.NoError(t, parseJSONResponse(resp, &raw))
		require.Len(t, raw, 1)
		assert.Equal(t, c.salary, raw[0]["id"])
		assert.Equal(t, "Salary", raw[0]["name"])
	})

	t.Run("missing parameter yields an empty list", func(t *testing.T) {
		for _, path := range []string{"/ajax/load-categories/", "/ajax/load-categories/?transaction_type_id=", "/ajax/load-categories/?transaction_type_id=%20"} {
			resp := makeRequest("GET", path, nil)

			assertStatusCode(t, http.StatusOK, resp.Code)
			assert.JSONEq(t, "[]", resp.Body.String(), path)
		}
	})

	t.Run("unknown transaction type yields an empty list", func(t *testing.T) {
		resp := makeRequest("GET", "/ajax/load-categories/?transaction_type_id=00000000-0000-0000-0000-000000000000", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, "[]", resp.Body.String())
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		resp := makeRequest("GET", "/ajax/load-categories/?transaction_type_id=abc", nil)

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

func TestLoadSubcategories(t *testing.T) {
	c := seedTestCatalog(t)

	t.Run("returns subcategories of the category", func(t *testing.T) {
		resp := makeRequest("GET", "/ajax/load-subcategories/?category_id="+c.food, nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var options []cascade.Option
		require.NoError(t, parseJSONResponse(resp, &options))
		assert.Equal(t, []string{"Cafes", "Groceries"}, labels(options))
	})

	t.Run("missing parameter yields an empty list", func(t *testing.T) {
		resp := makeRequest("GET", "/ajax/load-subcategories/", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, "[]", resp.Body.String())
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		resp := makeRequest("GET", "/ajax/load-subcategories/?category_id=1", nil)

		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

func TestLoadAllCategories(t *testing.T) {
	c := seedTestCatalog(t)

	resp := makeRequest("GET", "/admin/cash_flow/cashflowrecord/ajax/load-all-categories/", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var catalog cascade.Catalog
	require.NoError(t, parseJSONResponse(resp, &catalog))
	require.Len(t, catalog.Categories, 3)
	require.Len(t, catalog.Subcategories, 4)

	store := cascade.NewStore(catalog)
	assert.Equal(t, []string{"Food", "Rent"}, labels(store.CategoryOptions(cascade.ID(c.expense))))
	assert.Equal(t, []string{"Lease"}, labels(store.SubcategoryOptions(cascade.ID(c.rent))))
	assert.True(t, store.CategoryBelongs(cascade.ID(c.salary), cascade.ID(c.income)))
}

func TestLoadFormOptions(t *testing.T) {
	c := seedTestCatalog(t)

	get := func(t *testing.T, q url.Values) cascade.State {
		t.Helper()
		resp := makeRequest("GET", "/ajax/form-options/?"+q.Encode(), nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var state cascade.State
		require.NoError(t, parseJSONResponse(resp, &state))
		return state
	}

	t.Run("no transaction type leaves only the sentinel", func(t *testing.T) {
		state := get(t, url.Values{})

		assert.Equal(t, []cascade.Option{cascade.Sentinel()}, state.Category.Options)
		assert.Equal(t, []cascade.Option{cascade.Sentinel()}, state.Subcategory.Options)
	})

	t.Run("keeps a consistent selection", func(t *testing.T) {
		state := get(t, url.Values{
			"transaction_type_id": {c.expense},
			"category_id":         {c.food},
			"subcategory_id":      {c.groceries},
		})

		assert.Equal(t, []string{cascade.SentinelLabel, "Food", "Rent"}, labels(state.Category.Options))
		assert.Equal(t, cascade.ID(c.food), state.Category.Selected)
		assert.Equal(t, []string{cascade.SentinelLabel, "Cafes", "Groceries"}, labels(state.Subcategory.Options))
		assert.Equal(t, cascade.ID(c.groceries), state.Subcategory.Selected)
	})

	t.Run("resets a category of another type", func(t *testing.T) {
		state := get(t, url.Values{
			"transaction_type_id": {c.income},
			"category_id":         {c.food},
			"subcategory_id":      {c.groceries},
		})

		assert.Equal(t, []string{cascade.SentinelLabel, "Salary"}, labels(state.Category.Options))
		assert.True(t, state.Category.Selected.IsZero())
		assert.Equal(t, []cascade.Option{cascade.Sentinel()}, state.Subcategory.Options)
		assert.True(t, state.Subcategory.Selected.IsZero())
	})

	t.Run("resets a subcategory of another category", func(t *testing.T) {
		state := get(t, url.Values{
			"transaction_type_id": {c.expense},
			"category_id":         {c.rent},
			"subcategory_id":      {c.groceries},
		})

		assert.Equal(t, cascade.ID(c.rent), state.Category.Selected)
		assert.Equal(t, []string{cascade.SentinelLabel, "Lease"}, labels(state.Subcategory.Options))
		assert.True(t, state.Subcategory.Selected.IsZero())
	})
}

func TestOperationalEndpoints(t *testing.T) {
	t.Run("metrics are exposed", func(t *testing.T) {
		makeRequest("GET", "/ajax/load-categories/", nil)

		resp := makeRequest("GET", "/metrics", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "cashflow_api_requests_total")
		assert.Contains(t, resp.Body.String(), `route="/ajax/load-categories/"`)
	})

	t.Run("swagger document is served", func(t *testing.T) {
		resp := makeRequest("GET", "/swagger/doc.json", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "/ajax/load-categories/")
	})

	t.Run("cors allows the configured origin", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/ajax/load-categories/", nil)
		req.Header.Set("Origin", "http://localhost:3001")
		req.Header.Set("Access-Control-Request-Method", "GET")
		recorder := httptest.NewRecorder()

		testRouter.ServeHTTP(recorder, req)

		assert.Equal(t, "http://localhost:3001", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}
