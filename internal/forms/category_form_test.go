package forms_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"katalog/internal/forms"
	"katalog/internal/models"
	"katalog/internal/notify"
)

func TestCategoryForm_DefaultsActive(t *testing.T) {
	_, notifier := newRecorder()
	form := forms.NewCategoryForm(notifier)
	assert.True(t, form.IsActive)
}

func TestCategoryForm_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*forms.CategoryForm)
		valid   bool
		message string
	}{
		{"valid", func(f *forms.CategoryForm) {}, true, ""},
		{"too short", func(f *forms.CategoryForm) { f.Name = "AB" }, false, "Kategori adı en az 3 karakter olmalıdır!"},
		{"whitespace only", func(f *forms.CategoryForm) { f.Name = "    " }, false, "Kategori adı en az 3 karakter olmalıdır!"},
		{"too long", func(f *forms.CategoryForm) { f.Name = strings.Repeat("a", 51) }, false, "Kategori adı en az 3 karakter olmalıdır!"},
		{"long description", func(f *forms.CategoryForm) { f.Description = strings.Repeat("a", 501) }, false, "Açıklama en fazla 500 karakter olmalıdır!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, notifier := newRecorder()
			form := forms.NewCategoryForm(notifier)
			form.Name = "Elektronik"
			form.Description = "Elektronik ürünler"
			tc.mutate(form)

			assert.Equal(t, tc.valid, form.Validate())
			if !tc.valid {
				assert.Len(t, rec.Notifications, 1)
				assert.Equal(t, notify.SeverityWarning, rec.Notifications[0].Severity)
				assert.Equal(t, tc.message, rec.Notifications[0].Message)
			} else {
				assert.Empty(t, rec.Notifications)
			}
		})
	}
}

func TestCategoryForm_SubmitRejectedBeforeCallback(t *testing.T) {
	rec, notifier := newRecorder()
	form := forms.NewCategoryForm(notifier)
	form.Name = "AB"

	calls := 0
	ok := form.Submit(context.Background(), func(context.Context, *models.Category) error {
		calls++
		return nil
	})

	assert.False(t, ok)
	assert.Zero(t, calls, "validation must short-circuit before any network work")
	assert.Len(t, rec.Notifications, 1)
	assert.Equal(t, notify.SeverityWarning, rec.Notifications[0].Severity)
}

func TestCategoryForm_SubmitSuccess(t *testing.T) {
	rec, notifier := newRecorder()
	form := forms.NewCategoryForm(notifier)
	form.Name = "Elektronik"
	form.Description = "Elektronik ürünler"

	ok := form.Submit(context.Background(), func(_ context.Context, payload *models.Category) error {
		assert.Equal(t, "Elektronik", payload.Name)
		assert.True(t, payload.IsActive)
		return nil
	})

	assert.True(t, ok)
	assert.Len(t, rec.Notifications, 1)
	assert.Equal(t, notify.SeveritySuccess, rec.Notifications[0].Severity)
	assert.Equal(t, "Kategori başarıyla eklendi!", rec.Notifications[0].Message)
	// Draft reset keeps the active default.
	assert.Empty(t, form.Name)
	assert.True(t, form.IsActive)
}
