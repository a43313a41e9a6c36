package forms_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"katalog/internal/forms"
	"katalog/internal/models"
	"katalog/internal/notify"
)

func validSellerForm(notifier *notify.Notifier) *forms.SellerForm {
	form := forms.NewSellerForm(notifier)
	form.Name = "Ayşe"
	form.Surname = "Yılmaz"
	form.Email = "ayse@example.com"
	form.Phone = "05551234567"
	form.Address = "İstanbul"
	return form
}

func TestSellerForm_EmailPattern(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.c", true},
		{"ayse@example.com", true},
		{"a@b", false},
		{"@b.c", false},
		{"a.b.c", false},
		{"", false},
	}

	for _, tc := range cases {
		rec, notifier := newRecorder()
		form := validSellerForm(notifier)
		form.Email = tc.email

		assert.Equal(t, tc.valid, form.Validate(), "email %q", tc.email)
		if !tc.valid {
			assert.Len(t, rec.Notifications, 1)
			assert.Equal(t, "Geçersiz E-posta değeri!", rec.Notifications[0].Message)
		}
	}
}

func TestSellerForm_PhoneLength(t *testing.T) {
	cases := []struct {
		length int
		valid  bool
	}{
		{9, false},
		{10, true},
		{15, true},
		{16, false},
	}

	for _, tc := range cases {
		rec, notifier := newRecorder()
		form := validSellerForm(notifier)
		form.Phone = strings.Repeat("5", tc.length)

		assert.Equal(t, tc.valid, form.Validate(), "phone of length %d", tc.length)
		if !tc.valid {
			assert.Len(t, rec.Notifications, 1)
			assert.Equal(t, "Telefon en az 10 karakter olmalıdır!", rec.Notifications[0].Message)
		}
	}
}

func TestSellerForm_FieldRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*forms.SellerForm)
		message string
	}{
		{"short name", func(f *forms.SellerForm) { f.Name = "Al" }, "İsim en az 3 karakter olmalıdır!"},
		{"short surname", func(f *forms.SellerForm) { f.Surname = "Y" }, "Soyisim en az 2 karakter olmalıdır!"},
		{"long surname", func(f *forms.SellerForm) { f.Surname = strings.Repeat("y", 51) }, "Soyisim en az 2 karakter olmalıdır!"},
		{"long bio", func(f *forms.SellerForm) { f.Bio = strings.Repeat("b", 1001) }, "Biyografi en fazla 1000 karakter olmalıdır!"},
		{"missing address", func(f *forms.SellerForm) { f.Address = "" }, "Adres alanı zorunludur!"},
		{"long address", func(f *forms.SellerForm) { f.Address = strings.Repeat("a", 501) }, "Adres alanı zorunludur!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, notifier := newRecorder()
			form := validSellerForm(notifier)
			tc.mutate(form)

			assert.False(t, form.Validate())
			assert.Len(t, rec.Notifications, 1)
			assert.Equal(t, notify.SeverityWarning, rec.Notifications[0].Severity)
			assert.Equal(t, tc.message, rec.Notifications[0].Message)
		})
	}
}

func TestSellerForm_SubmitRoundTrip(t *testing.T) {
	rec, notifier := newRecorder()
	form := validSellerForm(notifier)

	ok := form.Submit(context.Background(), func(_ context.Context, payload *models.Seller) error {
		assert.Equal(t, "Ayşe", payload.Name)
		assert.True(t, payload.IsActive)
		return nil
	})
	assert.True(t, ok)
	assert.Equal(t, "Satıcı başarıyla eklendi!", rec.Notifications[0].Message)
	assert.Empty(t, form.Name)
	assert.True(t, form.IsActive)

	// A failed retry keeps whatever the user typed.
	form.Name = "Fatma"
	form.Surname = "Kaya"
	form.Email = "fatma@example.com"
	form.Phone = "05550000000"
	form.Address = "Ankara"
	ok = form.Submit(context.Background(), func(context.Context, *models.Seller) error {
		return errors.New("sunucu hatası")
	})
	assert.False(t, ok)
	assert.Equal(t, "Fatma", form.Name)
	assert.Equal(t, "Satıcı eklenirken hata oluştu: sunucu hatası", rec.Notifications[len(rec.Notifications)-1].Message)
}
