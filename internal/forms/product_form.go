package forms

import (
	"context"
	"strings"

	"katalog/internal/models"
	"katalog/internal/notify"
)

// ProductForm is the draft behind the product create and edit forms.
// Category and Seller are resolved references picked from fetched
// lists, not free-text input.
type ProductForm struct {
	Name               string
	Description        string
	Price              float64
	ImageURL           string
	Color              string
	Brand              string
	Model              string
	Inventory          int
	HasDiscount        bool
	DiscountPercentage float64
	DiscountPrice      float64
	ProductionDate     string
	Category           *models.Category
	Seller             *models.Seller

	notifier *notify.Notifier
}

// NewProductForm creates an empty product draft reporting through the
// given notifier.
func NewProductForm(notifier *notify.Notifier) *ProductForm {
	return &ProductForm{notifier: notifier}
}

// NewProductFormFrom pre-populates a draft from a fetched product, as
// the edit view does. The production date is normalized to its
// calendar-date part.
func NewProductFormFrom(product *models.Product, notifier *notify.Notifier) *ProductForm {
	return &ProductForm{
		Name:               product.Name,
		Description:        product.Description,
		Price:              product.Price,
		ImageURL:           product.ImageURL,
		Color:              product.Color,
		Brand:              product.Brand,
		Model:              product.Model,
		Inventory:          product.Inventory,
		HasDiscount:        product.HasDiscount,
		DiscountPercentage: product.DiscountPercentage,
		DiscountPrice:      product.DiscountPrice,
		ProductionDate:     models.NormalizeDate(product.ProductionDate),
		Category:           product.Category,
		Seller:             product.Seller,
		notifier:           notifier,
	}
}

// SetPrice updates the price and recomputes the discount price while a
// discount is active.
func (f *ProductForm) SetPrice(price float64) {
	f.Price = price
	if f.HasDiscount {
		f.DiscountPrice = ComputeDiscountPrice(price, f.DiscountPercentage)
	} else {
		f.DiscountPrice = 0
	}
}

// SetDiscountPercentage updates the percentage and recomputes the
// discount price from the current base price.
func (f *ProductForm) SetDiscountPercentage(percentage float64) {
	f.DiscountPercentage = percentage
	f.DiscountPrice = ComputeDiscountPrice(f.Price, percentage)
}

// SetHasDiscount toggles the discount. Turning it off resets both the
// percentage and the computed price to zero.
func (f *ProductForm) SetHasDiscount(on bool) {
	f.HasDiscount = on
	if !on {
		f.DiscountPercentage = 0
		f.DiscountPrice = 0
	}
}

// SelectCategory resolves the category reference by id from a fetched
// list. An unknown id clears the selection.
func (f *ProductForm) SelectCategory(categories []models.Category, id int64) {
	f.Category = nil
	for i := range categories {
		if categories[i].ID == id {
			f.Category = &categories[i]
			return
		}
	}
}

// SelectSeller resolves the seller reference by id from a fetched list.
// An unknown id clears the selection.
func (f *ProductForm) SelectSeller(sellers []models.Seller, id int64) {
	f.Seller = nil
	for i := range sellers {
		if sellers[i].ID == id {
			f.Seller = &sellers[i]
			return
		}
	}
}

// Validate checks the draft field by field in a fixed order. The first
// failing rule emits one warning and stops; no further fields are
// inspected.
func (f *ProductForm) Validate() bool {
	if strings.TrimSpace(f.Name) == "" || validate.Var(f.Name, "min=3,max=50") != nil {
		f.notifier.MinLength("Ürün adı", 3)
		return false
	}
	if f.Description != "" && validate.Var(f.Description, "max=500") != nil {
		f.notifier.MaxLength("Açıklama", 500)
		return false
	}
	if validate.Var(f.Price, "required,gt=0") != nil {
		f.notifier.Invalid("Fiyat")
		return false
	}
	if f.ImageURL != "" && validate.Var(f.ImageURL, "max=500") != nil {
		f.notifier.MaxLength("Resim URL", 500)
		return false
	}
	if validate.Var(f.Color, "required") != nil {
		f.notifier.Required("Renk")
		return false
	}
	if validate.Var(f.Brand, "required") != nil {
		f.notifier.Required("Marka")
		return false
	}
	if validate.Var(f.Model, "required") != nil {
		f.notifier.Required("Model")
		return false
	}
	if validate.Var(f.Inventory, "gte=0") != nil {
		f.notifier.Invalid("Stok")
		return false
	}
	if validate.Var(f.ProductionDate, "required") != nil {
		f.notifier.Required("Üretim tarihi")
		return false
	}
	if f.Category == nil {
		f.notifier.Required("Kategori")
		return false
	}
	if f.Seller == nil {
		f.notifier.Required("Satıcı")
		return false
	}
	return true
}

// Payload assembles the validated draft into the wire shape the backend
// expects.
func (f *ProductForm) Payload() *models.Product {
	return &models.Product{
		Name:               f.Name,
		Description:        f.Description,
		Price:              f.Price,
		ImageURL:           f.ImageURL,
		Color:              f.Color,
		Brand:              f.Brand,
		Model:              f.Model,
		Inventory:          f.Inventory,
		HasDiscount:        f.HasDiscount,
		DiscountPercentage: f.DiscountPercentage,
		DiscountPrice:      f.DiscountPrice,
		ProductionDate:     f.ProductionDate,
		Category:           f.Category,
		Seller:             f.Seller,
	}
}

// Submit validates the draft and hands it to the callback. A validation
// failure stops before any network work. On callback success the draft
// resets to defaults; on failure it is preserved so the user can retry.
func (f *ProductForm) Submit(ctx context.Context, fn func(context.Context, *models.Product) error) bool {
	if !f.Validate() {
		return false
	}
	if err := fn(ctx, f.Payload()); err != nil {
		f.notifier.CreateFailed(notify.EntityProduct, err.Error())
		return false
	}
	f.notifier.Created(notify.EntityProduct)
	f.Reset()
	return true
}

// Reset clears the draft back to its defaults.
func (f *ProductForm) Reset() {
	*f = ProductForm{notifier: f.notifier}
}
