package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/internal/api"
	"katalog/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*api.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return api.NewClient(server.URL, 0, log), server
}

func TestClient_UnwrapsDataEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": 1, "name": "Laptop", "price": 1200.0},
			},
		})
	}))

	products, err := client.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Laptop", products[0].Name)
}

func TestClient_ErrorMessageFromBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Kategori adı zaten mevcut"})
	}))

	_, err := client.CreateCategory(context.Background(), &models.Category{Name: "Elektronik", IsActive: true})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Kategori adı zaten mevcut", apiErr.Message)
}

func TestClient_FallbackMessages(t *testing.T) {
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not even json"))
	})

	cases := []struct {
		name string
		call func(*api.Client) error
		want string
	}{
		{"list products", func(c *api.Client) error { _, err := c.GetAllProducts(context.Background()); return err }, "Bir hata oluştu"},
		{"delete product", func(c *api.Client) error { return c.DeleteProduct(context.Background(), 1) }, "Ürün silinirken hata oluştu"},
		{"get category", func(c *api.Client) error { _, err := c.GetCategoryByID(context.Background(), 1); return err }, "Kategori bulunamadı"},
		{"delete category", func(c *api.Client) error { return c.DeleteCategory(context.Background(), 1) }, "Kategori silinirken hata oluştu"},
		{"get seller", func(c *api.Client) error { _, err := c.GetSellerByID(context.Background(), 1); return err }, "Satıcı bulunamadı"},
		{"update seller", func(c *api.Client) error {
			_, err := c.UpdateSeller(context.Background(), 1, &models.Seller{})
			return err
		}, "Satıcı güncellenirken hata oluştu"},
		{"delete seller", func(c *api.Client) error { return c.DeleteSeller(context.Background(), 1) }, "Satıcı silinirken hata oluştu"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, failing)
			err := tc.call(client)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestClient_CreateSendsJSONBody(t *testing.T) {
	var received models.Product
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		received.ID = 7
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": received})
	}))

	product := &models.Product{
		Name:     "Klavye",
		Price:    75,
		Color:    "Siyah",
		Brand:    "Logi",
		Model:    "MX",
		Category: &models.Category{ID: 3},
		Seller:   &models.Seller{ID: 4},
	}
	created, err := client.CreateProduct(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "Klavye", received.Name)
	require.NotNil(t, received.Category)
	assert.Equal(t, int64(3), received.Category.ID)
}

func TestClient_SearchQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": []models.Product{}})
	})

	client, _ := newTestClient(t, handler)
	ctx := context.Background()

	_, err := client.SearchProductsByCategory(ctx, "Elektronik Ürünler")
	require.NoError(t, err)
	assert.Equal(t, []string{"Elektronik Ürünler"}, gotQuery["categoryName"])

	_, err = client.SearchProductsBySeller(ctx, "Ayşe")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ayşe"}, gotQuery["sellerName"])

	// Combined search keeps empty filters out of the query.
	_, err = client.SearchProducts(ctx, "Elektronik", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Elektronik"}, gotQuery["categoryName"])
	assert.NotContains(t, gotQuery, "sellerName")
}

func TestClient_DeleteIgnoresEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.NoError(t, client.DeleteProduct(context.Background(), 5))
}
