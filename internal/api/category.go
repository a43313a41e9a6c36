package api

import (
	"context"
	"fmt"
	"net/http"

	"katalog/internal/models"
)

// GetAllCategories retrieves every category, active or not.
func (c *Client) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID retrieves a single category by its ID.
func (c *Client) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	path := fmt.Sprintf("/categories/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &category, "Kategori bulunamadı"); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory creates a new category and returns it with its
// server-assigned ID.
func (c *Client) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	var created models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, category, &created, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory replaces the category with the given ID. Status
// toggles go through here as full-object updates.
func (c *Client) UpdateCategory(ctx context.Context, id int64, category *models.Category) (*models.Category, error) {
	var updated models.Category
	path := fmt.Sprintf("/categories/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, category, &updated, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory removes a category by its ID.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/categories/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, "Kategori silinirken hata oluştu")
}
