package cascade

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Endpoint paths served by the cash-flow backend.
const (
	CategoriesPath      = "/ajax/load-categories/"
	SubcategoriesPath   = "/ajax/load-subcategories/"
	DefaultCatalogPath  = "/admin/cash_flow/cashflowrecord/ajax/load-all-categories/"
	defaultHTTPTimeout  = 10 * time.Second
	transactionTypeKey  = "transaction_type_id"
	categoryKey         = "category_id"
	requestedWithHeader = "X-Requested-With"
)

// ErrUnexpectedStatus is wrapped by HTTPSource errors for non-200 responses.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// HTTPSource loads catalog data from the backend's JSON endpoints.
type HTTPSource struct {
	baseURL     string
	catalogPath string
	client      *http.Client
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithCatalogPath overrides the bulk catalog endpoint path.
func WithCatalogPath(path string) HTTPOption {
	return func(s *HTTPSource) {
		if path != "" {
			s.catalogPath = path
		}
	}
}

// NewHTTPSource returns a Source talking to the backend at baseURL.
func NewHTTPSource(baseURL string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		baseURL:     strings.TrimRight(baseURL, "/"),
		catalogPath: DefaultCatalogPath,
		client:      &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadCatalog fetches every category and subcategory.
func (s *HTTPSource) LoadCatalog(ctx context.Context) (Catalog, error) {
	var catalog Catalog
	if err := s.get(ctx, s.catalogPath, nil, &catalog); err != nil {
		return Catalog{}, errors.Wrap(err, "load catalog")
	}
	return catalog, nil
}

// LoadCategories fetches the categories of one transaction type.
func (s *HTTPSource) LoadCategories(ctx context.Context, transactionTypeID ID) ([]Option, error) {
	var options []Option
	query := url.Values{transactionTypeKey: {transactionTypeID.String()}}
	if err := s.get(ctx, CategoriesPath, query, &options); err != nil {
		return nil, errors.Wrapf(err, "load categories for type %s", transactionTypeID)
	}
	return options, nil
}

// LoadSubcategories fetches the subcategories of one category.
func (s *HTTPSource) LoadSubcategories(ctx context.Context, categoryID ID) ([]Option, error) {
	var options []Option
	query := url.Values{categoryKey: {categoryID.String()}}
	if err := s.get(ctx, SubcategoriesPath, query, &options); err != nil {
		return nil, errors.Wrapf(err, "load subcategories for category %s", categoryID)
	}
	return options, nil
}

func (s *HTTPSource) get(ctx context.Context, path string, query url.Values, target interface{}) error {
	u, err := url.Parse(s.baseURL + path)
	if err != nil {
		return errors.Wrap(err, "build request url")
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestedWithHeader, "XMLHttpRequest")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", u.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrUnexpectedStatus, "GET %s: %d", u.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "decode %s", u.Path)
	}
	return nil
}
