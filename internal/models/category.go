package models

// Category groups products. Inactive categories stay manageable but are
// hidden from the storefront views.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`
	IsActive    bool   `json:"isActive"`
}
