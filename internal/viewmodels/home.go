package viewmodels

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"katalog/internal/api"
	"katalog/internal/config"
	"katalog/internal/models"
)

// HomeView is the storefront listing: active categories as filter
// buttons and the products that belong to them.
type HomeView struct {
	api *api.Client
	cfg *config.Config
	log *logrus.Logger

	Status     Status
	Err        string
	Categories []models.Category
	Products   []models.Product
	// SelectedCategory of nil means "all".
	SelectedCategory *int64
}

// NewHomeView creates a home view in its loading state.
func NewHomeView(client *api.Client, cfg *config.Config, log *logrus.Logger) *HomeView {
	return &HomeView{api: client, cfg: cfg, log: log, Status: StatusLoading}
}

// Load fetches categories and products. Categories are narrowed to the
// active ones; products are narrowed to those whose embedded category
// is active. A category fetch failure is only logged, the product list
// still renders; a product fetch failure puts the view in its error
// state.
func (v *HomeView) Load(ctx context.Context) {
	v.Status = StatusLoading

	categories, err := v.api.GetAllCategories(ctx)
	if err != nil {
		v.log.WithField("view", "home").Errorf("Kategoriler yüklenirken hata oluştu: %v", err)
	} else {
		active := make([]models.Category, 0, len(categories))
		for _, category := range categories {
			if category.IsActive {
				active = append(active, category)
			}
		}
		v.Categories = active
	}

	products, err := v.api.GetAllProducts(ctx)
	if err != nil {
		v.log.WithField("view", "home").Errorf("Ürünler yüklenirken hata oluştu: %v", err)
		v.Err = err.Error()
		v.Status = StatusError
		return
	}
	visible := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.Category != nil && product.Category.IsActive {
			visible = append(visible, product)
		}
	}
	v.Products = visible
	v.Status = StatusReady
}

// SelectCategory narrows the listing to one category; nil shows all.
func (v *HomeView) SelectCategory(id *int64) {
	v.SelectedCategory = id
}

// VisibleProducts applies the selected-category filter on top of the
// active-category filter done at load time.
func (v *HomeView) VisibleProducts() []models.Product {
	if v.SelectedCategory == nil {
		return v.Products
	}
	filtered := make([]models.Product, 0, len(v.Products))
	for _, product := range v.Products {
		if product.Category != nil && product.Category.ID == *v.SelectedCategory {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// EmptyMessage distinguishes an empty catalog from an empty category.
func (v *HomeView) EmptyMessage() string {
	if v.SelectedCategory != nil {
		return "Bu kategoride ürün bulunmamaktadır."
	}
	return "Henüz ürün bulunmamaktadır."
}

// Title names the listing after the selected category.
func (v *HomeView) Title() string {
	if v.SelectedCategory != nil {
		for _, category := range v.Categories {
			if category.ID == *v.SelectedCategory {
				return category.Name + " Ürünleri"
			}
		}
	}
	return "Tüm Ürünler"
}

// ProductCard is one product prepared for display: image fallback
// applied and prices formatted with the configured currency label.
type ProductCard struct {
	Product            models.Product `json:"product"`
	ImageURL           string         `json:"imageUrl"`
	PriceLabel         string         `json:"priceLabel"`
	DiscountPriceLabel string         `json:"discountPriceLabel,omitempty"`
}

// Cards prepares the visible products for rendering.
func (v *HomeView) Cards() []ProductCard {
	products := v.VisibleProducts()
	cards := make([]ProductCard, 0, len(products))
	for _, product := range products {
		card := ProductCard{
			Product:    product,
			ImageURL:   product.ImageURL,
			PriceLabel: fmt.Sprintf("%.2f %s", product.Price, v.cfg.CurrencyLabel),
		}
		if card.ImageURL == "" {
			card.ImageURL = v.cfg.PlaceholderImageURL
		}
		if product.HasDiscount {
			card.DiscountPriceLabel = fmt.Sprintf("%.2f %s", product.DiscountPrice, v.cfg.CurrencyLabel)
		}
		cards = append(cards, card)
	}
	return cards
}
