package api

import (
	"context"
	"fmt"
	"net/http"

	"katalog/internal/models"
)

// GetAllSellers retrieves every seller, active or not.
func (c *Client) GetAllSellers(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := c.do(ctx, http.MethodGet, "/sellers", nil, nil, &sellers, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return sellers, nil
}

// GetSellerByID retrieves a single seller by its ID.
func (c *Client) GetSellerByID(ctx context.Context, id int64) (*models.Seller, error) {
	var seller models.Seller
	path := fmt.Sprintf("/sellers/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &seller, "Satıcı bulunamadı"); err != nil {
		return nil, err
	}
	return &seller, nil
}

// CreateSeller creates a new seller and returns it with its
// server-assigned ID.
func (c *Client) CreateSeller(ctx context.Context, seller *models.Seller) (*models.Seller, error) {
	var created models.Seller
	if err := c.do(ctx, http.MethodPost, "/sellers", nil, seller, &created, DefaultErrorMessage); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSeller replaces the seller with the given ID.
func (c *Client) UpdateSeller(ctx context.Context, id int64, seller *models.Seller) (*models.Seller, error) {
	var updated models.Seller
	path := fmt.Sprintf("/sellers/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, seller, &updated, "Satıcı güncellenirken hata oluştu"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSeller removes a seller by its ID.
func (c *Client) DeleteSeller(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/sellers/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, "Satıcı silinirken hata oluştu")
}
