package models

import "strings"

// Product represents a catalog product as the backend serves it.
// Category and Seller arrive embedded on reads; updates send them back
// as id-only references.
type Product struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name" validate:"required,min=3,max=50"`
	Description        string    `json:"description" validate:"omitempty,max=500"`
	Price              float64   `json:"price" validate:"required,gt=0"`
	ImageURL           string    `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	Color              string    `json:"color" validate:"required"`
	Brand              string    `json:"brand" validate:"required"`
	Model              string    `json:"model" validate:"required"`
	Inventory          int       `json:"inventory" validate:"gte=0"`
	HasDiscount        bool      `json:"hasDiscount"`
	DiscountPercentage float64   `json:"discountPercentage" validate:"gte=0,lte=100"`
	DiscountPrice      float64   `json:"discountPrice"`
	ProductionDate     string    `json:"productionDate,omitempty"`
	Category           *Category `json:"category,omitempty"`
	Seller             *Seller   `json:"seller,omitempty"`
}

// NormalizeDate reduces an RFC3339 timestamp to its calendar-date part.
// The backend may serve productionDate with a time component; form
// drafts only ever hold the date.
func NormalizeDate(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}
