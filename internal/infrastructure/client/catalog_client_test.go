package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salepoint/salepoint-api/pkg/apperror"
)

func TestListCategories_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/category", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":1,"category_name":"Drinks"},{"id":2,"category_name":"Snacks"}]}`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, time.Second)
	categories, err := c.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 1, categories[0].ID)
	assert.Equal(t, "Drinks", categories[0].Name)
}

func TestListProductsByCategory_DecodesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products-load", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("category_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":7,"product_name":"Burger","price":"120.5","stock":5}]`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, time.Second)
	products, err := c.ListProductsByCategory(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 7, products[0].ID)
	assert.Equal(t, "Burger", products[0].Name)
	assert.Equal(t, "120.5", products[0].Price.String())
	assert.Equal(t, 5, products[0].Stock)
	assert.Equal(t, 3, products[0].CategoryID, "missing category is backfilled from the query")
}

func TestListProductsByCategory_KeepsExplicitCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":7,"product_name":"Burger","price":"120","stock":5,"category":9}]`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, time.Second)
	products, err := c.ListProductsByCategory(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 9, products[0].CategoryID)
}

func TestListCategories_Non200IsRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database exploded"}`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, time.Second)
	_, err := c.ListCategories(context.Background())

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindRemoteFailure))
	assert.Contains(t, err.Error(), "database exploded")
}

func TestListCategories_ConnectionRefusedIsRemoteFailure(t *testing.T) {
	c := NewCatalogClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindRemoteFailure))
}

func TestListCategories_MalformedBodyIsRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, time.Second)
	_, err := c.ListCategories(context.Background())

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindRemoteFailure))
}
