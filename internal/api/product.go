package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"katalog/internal/models"
)

// GetAllProducts retrieves every product in the catalog.
func (c *Client) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &products, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (c *Client) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	path := fmt.Sprintf("/products/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &product, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a new product and returns it with its
// server-assigned ID.
func (c *Client) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, product, &created, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces the product with the given ID.
func (c *Client) UpdateProduct(ctx context.Context, id int64, product *models.Product) (*models.Product, error) {
	var updated models.Product
	path := fmt.Sprintf("/products/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, product, &updated, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a product by its ID.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/products/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, "Ürün silinirken hata oluştu")
}

// SearchProductsByCategory retrieves products belonging to the named
// category.
func (c *Client) SearchProductsByCategory(ctx context.Context, categoryName string) ([]models.Product, error) {
	query := url.Values{}
	query.Set("categoryName", categoryName)
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/search/category", query, nil, &products, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProductsBySeller retrieves products offered by the named seller.
func (c *Client) SearchProductsBySeller(ctx context.Context, sellerName string) ([]models.Product, error) {
	query := url.Values{}
	query.Set("sellerName", sellerName)
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/search/seller", query, nil, &products, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts retrieves products filtered by category and/or seller
// name. Empty filters are left out of the query entirely.
func (c *Client) SearchProducts(ctx context.Context, categoryName, sellerName string) ([]models.Product, error) {
	query := url.Values{}
	if categoryName != "" {
		query.Set("categoryName", categoryName)
	}
	if sellerName != "" {
		query.Set("sellerName", sellerName)
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/search", query, nil, &products, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return products, nil
}
