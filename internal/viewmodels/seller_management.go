package viewmodels

import (
	"context"

	"github.com/sirupsen/logrus"

	"katalog/internal/api"
	"katalog/internal/forms"
	"katalog/internal/models"
	"katalog/internal/notify"
)

// SellerManagementView lists every seller with inline edit,
// status-toggle, and delete actions. Mutations reload the whole list
// instead of patching it in place.
type SellerManagementView struct {
	api      *api.Client
	notifier *notify.Notifier
	log      *logrus.Logger
	Confirm  func(prompt string) bool

	Status  Status
	Err     string
	Sellers []models.Seller
	// EditingID of zero means no row is being edited.
	EditingID int64
	Draft     *forms.SellerForm
}

// NewSellerManagementView creates the management view in its loading
// state.
func NewSellerManagementView(client *api.Client, notifier *notify.Notifier, confirm func(string) bool, log *logrus.Logger) *SellerManagementView {
	return &SellerManagementView{
		api:      client,
		notifier: notifier,
		log:      log,
		Confirm:  confirm,
		Status:   StatusLoading,
	}
}

// Load fetches the full seller list.
func (v *SellerManagementView) Load(ctx context.Context) {
	v.Status = StatusLoading
	sellers, err := v.api.GetAllSellers(ctx)
	if err != nil {
		v.notifier.LoadFailed(notify.EntitySeller, err.Error())
		v.Err = err.Error()
		v.Status = StatusError
		return
	}
	v.Sellers = sellers
	v.Status = StatusReady
}

// StartEditing opens the inline editor for one row, pre-populated from
// the fetched seller.
func (v *SellerManagementView) StartEditing(seller models.Seller) {
	v.EditingID = seller.ID
	v.Draft = forms.NewSellerFormFrom(&seller, v.notifier)
}

// CancelEditing drops the draft and closes the inline editor.
func (v *SellerManagementView) CancelEditing() {
	v.EditingID = 0
	v.Draft = nil
}

// SaveEdits validates the draft, performs the update, and on success
// closes the editor and reloads the list. On failure the draft stays so
// the user can retry.
func (v *SellerManagementView) SaveEdits(ctx context.Context) bool {
	if v.Draft == nil || v.EditingID == 0 {
		return false
	}
	if !v.Draft.Validate() {
		return false
	}

	payload := v.Draft.Payload()
	payload.ID = v.EditingID
	if _, err := v.api.UpdateSeller(ctx, v.EditingID, payload); err != nil {
		v.notifier.UpdateFailed(notify.EntitySeller, err.Error())
		return false
	}
	v.notifier.Updated(notify.EntitySeller)
	v.CancelEditing()
	v.Load(ctx)
	return true
}

// ToggleStatus flips the active flag through a full-object update, then
// reloads the list.
func (v *SellerManagementView) ToggleStatus(ctx context.Context, seller models.Seller, isActive bool) bool {
	updated := seller
	updated.IsActive = isActive
	if _, err := v.api.UpdateSeller(ctx, seller.ID, &updated); err != nil {
		v.notifier.UpdateFailed(notify.EntitySeller, err.Error())
		return false
	}
	v.Load(ctx)
	v.notifier.StatusChanged(notify.EntitySeller, isActive)
	return true
}

// Delete asks for confirmation, removes the seller, and reloads the
// list. Declining the prompt performs no network call at all.
func (v *SellerManagementView) Delete(ctx context.Context, seller models.Seller) bool {
	if !v.Confirm("Bu satıcıyı silmek istediğinizden emin misiniz? Bu işlem geri alınamaz.") {
		return false
	}
	if err := v.api.DeleteSeller(ctx, seller.ID); err != nil {
		v.notifier.DeleteFailed(notify.EntitySeller, err.Error())
		return false
	}
	v.notifier.Deleted(notify.EntitySeller)
	v.Load(ctx)
	return true
}
