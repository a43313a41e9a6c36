package viewmodels

import (
	"context"

	"github.com/sirupsen/logrus"

	"katalog/internal/api"
	"katalog/internal/models"
	"katalog/internal/notify"
)

// CategoryManagementView lists every category with status-toggle and
// delete actions. Mutations reload the whole list instead of patching
// it in place.
type CategoryManagementView struct {
	api      *api.Client
	notifier *notify.Notifier
	log      *logrus.Logger
	Confirm  func(prompt string) bool

	Status     Status
	Err        string
	Categories []models.Category
}

// NewCategoryManagementView creates the management view in its loading
// state.
func NewCategoryManagementView(client *api.Client, notifier *notify.Notifier, confirm func(string) bool, log *logrus.Logger) *CategoryManagementView {
	return &CategoryManagementView{
		api:      client,
		notifier: notifier,
		log:      log,
		Confirm:  confirm,
		Status:   StatusLoading,
	}
}

// Load fetches the full category list.
func (v *CategoryManagementView) Load(ctx context.Context) {
	v.Status = StatusLoading
	categories, err := v.api.GetAllCategories(ctx)
	if err != nil {
		v.notifier.LoadFailed(notify.EntityCategory, err.Error())
		v.Err = err.Error()
		v.Status = StatusError
		return
	}
	v.Categories = categories
	v.Status = StatusReady
}

// ToggleStatus flips the active flag through a full-object update, then
// reloads the list.
func (v *CategoryManagementView) ToggleStatus(ctx context.Context, category models.Category, isActive bool) bool {
	updated := category
	updated.IsActive = isActive
	if _, err := v.api.UpdateCategory(ctx, category.ID, &updated); err != nil {
		v.notifier.UpdateFailed(notify.EntityCategory, err.Error())
		return false
	}
	v.Load(ctx)
	v.notifier.StatusChanged(notify.EntityCategory, isActive)
	return true
}

// Delete asks for confirmation, removes the category, and reloads the
// list. Declining the prompt performs no network call at all.
func (v *CategoryManagementView) Delete(ctx context.Context, category models.Category) bool {
	if !v.Confirm("Bu kategoriyi silmek istediğinizden emin misiniz? Bu işlem geri alınamaz.") {
		return false
	}
	if err := v.api.DeleteCategory(ctx, category.ID); err != nil {
		v.notifier.DeleteFailed(notify.EntityCategory, err.Error())
		return false
	}
	v.notifier.Deleted(notify.EntityCategory)
	v.Load(ctx)
	return true
}
