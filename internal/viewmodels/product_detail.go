package viewmodels

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"katalog/internal/api"
	"katalog/internal/forms"
	"katalog/internal/models"
	"katalog/internal/notify"
)

// ProductDetailView is one product's read view with an edit-mode
// toggle. Category and seller lists are fetched alongside the product
// to back the edit form's selectors.
type ProductDetailView struct {
	api      *api.Client
	notifier *notify.Notifier
	log      *logrus.Logger
	// Confirm guards the delete action; deletion proceeds only when it
	// returns true.
	Confirm func(prompt string) bool

	ID     int64
	Status Status
	Err    string
	// NotFound marks the stale-id case: the backend answered 404 for
	// the product itself.
	NotFound bool

	Product    *models.Product
	Categories []models.Category
	Sellers    []models.Seller
	Editing    bool
	Draft      *forms.ProductForm
}

// NewProductDetailView creates a detail view for the given product id.
func NewProductDetailView(id int64, client *api.Client, notifier *notify.Notifier, confirm func(string) bool, log *logrus.Logger) *ProductDetailView {
	return &ProductDetailView{
		api:      client,
		notifier: notifier,
		log:      log,
		Confirm:  confirm,
		ID:       id,
		Status:   StatusLoading,
	}
}

// Load fetches the product plus the category and seller lists. List
// fetch failures are only logged, the selectors just come up empty; a
// product fetch failure puts the view in its error state.
func (v *ProductDetailView) Load(ctx context.Context) {
	v.Status = StatusLoading

	categories, err := v.api.GetAllCategories(ctx)
	if err != nil {
		v.log.WithField("view", "product_detail").Errorf("Kategoriler yüklenirken hata oluştu: %v", err)
	} else {
		v.Categories = categories
	}

	sellers, err := v.api.GetAllSellers(ctx)
	if err != nil {
		v.log.WithField("view", "product_detail").Errorf("Satıcılar yüklenirken hata oluştu: %v", err)
	} else {
		v.Sellers = sellers
	}

	product, err := v.api.GetProductByID(ctx, v.ID)
	if err != nil {
		v.log.WithField("view", "product_detail").Errorf("Ürün yüklenirken hata oluştu: %v", err)
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			v.NotFound = true
			v.notifier.NotFound(notify.EntityProduct)
		}
		v.Err = err.Error()
		v.Status = StatusError
		return
	}
	v.Product = product
	v.Status = StatusReady
}

// StartEditing swaps in the edit form pre-populated from the fetched
// product.
func (v *ProductDetailView) StartEditing() {
	if v.Product == nil {
		return
	}
	v.Draft = forms.NewProductFormFrom(v.Product, v.notifier)
	v.Editing = true
}

// CancelEditing drops the draft and returns to the read view.
func (v *ProductDetailView) CancelEditing() {
	v.Draft = nil
	v.Editing = false
}

// SaveEdits validates the draft, performs the update, and on success
// returns to read mode by re-fetching the product. On failure the draft
// stays so the user can retry.
func (v *ProductDetailView) SaveEdits(ctx context.Context) bool {
	if v.Draft == nil || v.Product == nil {
		return false
	}
	if !v.Draft.Validate() {
		return false
	}

	payload := v.Draft.Payload()
	payload.ID = v.Product.ID
	if _, err := v.api.UpdateProduct(ctx, v.Product.ID, payload); err != nil {
		v.notifier.UpdateFailed(notify.EntityProduct, err.Error())
		return false
	}
	v.notifier.Updated(notify.EntityProduct)
	v.CancelEditing()
	v.Load(ctx)
	return true
}

// Delete asks for confirmation, then removes the product. It returns
// true when the product is gone and the caller should navigate away.
func (v *ProductDetailView) Delete(ctx context.Context) bool {
	if !v.Confirm("Bu ürünü silmek istediğinizden emin misiniz?") {
		return false
	}
	if err := v.api.DeleteProduct(ctx, v.ID); err != nil {
		v.notifier.DeleteFailed(notify.EntityProduct, err.Error())
		return false
	}
	v.notifier.Deleted(notify.EntityProduct)
	return true
}
