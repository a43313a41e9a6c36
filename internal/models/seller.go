package models

// Seller is a merchant offering products in the catalog.
type Seller struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Surname  string `json:"surname" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=10,max=15"`
	Address  string `json:"address" validate:"required,max=500"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	IsActive bool   `json:"isActive"`
}
