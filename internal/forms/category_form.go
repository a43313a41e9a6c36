package forms

import (
	"context"
	"strings"

	"katalog/internal/models"
	"katalog/internal/notify"
)

// CategoryForm is the draft behind the category create form. New
// categories start out active.
type CategoryForm struct {
	Name        string
	Description string
	IsActive    bool

	notifier *notify.Notifier
}

// NewCategoryForm creates a category draft with defaults.
func NewCategoryForm(notifier *notify.Notifier) *CategoryForm {
	return &CategoryForm{IsActive: true, notifier: notifier}
}

// Validate checks name then description; the first failing rule emits
// one warning and stops.
func (f *CategoryForm) Validate() bool {
	if strings.TrimSpace(f.Name) == "" || validate.Var(f.Name, "min=3,max=50") != nil {
		f.notifier.MinLength("Kategori adı", 3)
		return false
	}
	if f.Description != "" && validate.Var(f.Description, "max=500") != nil {
		f.notifier.MaxLength("Açıklama", 500)
		return false
	}
	return true
}

// Payload assembles the validated draft into the wire shape.
func (f *CategoryForm) Payload() *models.Category {
	return &models.Category{
		Name:        f.Name,
		Description: f.Description,
		IsActive:    f.IsActive,
	}
}

// Submit validates the draft and hands it to the callback. A validation
// failure stops before any network work; on success the draft resets.
func (f *CategoryForm) Submit(ctx context.Context, fn func(context.Context, *models.Category) error) bool {
	if !f.Validate() {
		return false
	}
	if err := fn(ctx, f.Payload()); err != nil {
		f.notifier.CreateFailed(notify.EntityCategory, err.Error())
		return false
	}
	f.notifier.Created(notify.EntityCategory)
	f.Reset()
	return true
}

// Reset clears the draft back to its defaults.
func (f *CategoryForm) Reset() {
	*f = CategoryForm{IsActive: true, notifier: f.notifier}
}
