package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront-api/internal/catalog"
	catalogerrors "go-storefront-api/internal/catalog/errors"
)

const rawProductsBody = `[
  {"id":1,"title":"Gold Ring","price":120.0,"description":"a ring","category":"jewelery","image":"http://img/1.jpg","rating":{"rate":4.5,"count":120}},
  {"id":2,"title":"USB Hub","price":15.0,"description":"a hub","category":"electronics","image":"http://img/2.jpg","rating":{"rate":3.9,"count":40}},
  {"id":3,"title":"Mystery Box","price":9.99,"description":"unknown category","category":"collectibles","image":"http://img/3.jpg","rating":{"rate":0,"count":0}}
]`

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(rawProductsBody))
	})
	mux.HandleFunc("/products/2", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":2,"title":"USB Hub","price":15.0,"description":"a hub","category":"electronics","image":"http://img/2.jpg","rating":{"rate":3.9,"count":40}}`))
	})
	mux.HandleFunc("/products/999", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["electronics","jewelery","men's clothing","women's clothing"]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCatalogClient_GetProductsTransforms(t *testing.T) {
	srv := newCatalogServer(t)
	client := catalog.NewClient(srv.URL, nil, nil)

	products, err := client.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	ring := products[0]
	assert.Equal(t, "1", ring.ID)
	assert.Equal(t, "Gold Ring", ring.Name)
	assert.Equal(t, "jewelery", ring.Category)
	assert.Equal(t, []string{"http://img/1.jpg", "http://img/1.jpg"}, ring.Images)
	assert.Equal(t, 4.5, ring.Rating)
	assert.Contains(t, []string{"LuxJewels", "DiamondCraft", "GoldStandard", "PreciousGems"}, ring.Brand)
	assert.GreaterOrEqual(t, ring.CountInStock, 10)
	assert.LessOrEqual(t, ring.CountInStock, 59)

	// unmapped categories fall back to the generic brand; missing rating
	// defaults to 4.0
	box := products[2]
	assert.Equal(t, "Premium Brand", box.Brand)
	assert.Equal(t, 4.0, box.Rating)
}

func TestCatalogClient_DerivedFieldsAreStable(t *testing.T) {
	srv := newCatalogServer(t)
	client := catalog.NewClient(srv.URL, nil, nil)

	first, err := client.GetProducts(context.Background())
	require.NoError(t, err)

	second, err := client.GetProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Brand, second[i].Brand)
		assert.Equal(t, first[i].CountInStock, second[i].CountInStock)
		assert.Equal(t, first[i].Featured, second[i].Featured)
	}

	// the single-product endpoint shares the same derived fields
	hub, err := client.GetProductByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, first[1].Brand, hub.Brand)
	assert.Equal(t, first[1].CountInStock, hub.CountInStock)
}

func TestCatalogClient_ProductNotFound(t *testing.T) {
	srv := newCatalogServer(t)
	client := catalog.NewClient(srv.URL, nil, nil)

	_, err := client.GetProductByID(context.Background(), "999")
	assert.ErrorIs(t, err, catalogerrors.ErrProductNotFound)
}

func TestCatalogClient_GetCategories(t *testing.T) {
	srv := newCatalogServer(t)
	client := catalog.NewClient(srv.URL, nil, nil)

	categories, err := client.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"electronics", "jewelery", "men's clothing", "women's clothing"}, categories)
}

func TestCatalogClient_UpstreamDown(t *testing.T) {
	srv := newCatalogServer(t)
	client := catalog.NewClient(srv.URL, nil, nil)
	srv.Close()

	_, err := client.GetProducts(context.Background())
	assert.ErrorIs(t, err, catalogerrors.ErrFetchFailed)
}
