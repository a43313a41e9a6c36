package forms

import (
	"context"
	"strings"

	"katalog/internal/models"
	"katalog/internal/notify"
)

// SellerForm is the draft behind the seller create and edit forms. New
// sellers start out active.
type SellerForm struct {
	Name     string
	Surname  string
	Email    string
	Phone    string
	Address  string
	Bio      string
	IsActive bool

	notifier *notify.Notifier
}

// NewSellerForm creates a seller draft with defaults.
func NewSellerForm(notifier *notify.Notifier) *SellerForm {
	return &SellerForm{IsActive: true, notifier: notifier}
}

// NewSellerFormFrom pre-populates a draft from a fetched seller, as the
// management view's inline editor does.
func NewSellerFormFrom(seller *models.Seller, notifier *notify.Notifier) *SellerForm {
	return &SellerForm{
		Name:     seller.Name,
		Surname:  seller.Surname,
		Email:    seller.Email,
		Phone:    seller.Phone,
		Address:  seller.Address,
		Bio:      seller.Bio,
		IsActive: seller.IsActive,
		notifier: notifier,
	}
}

// Validate checks the draft field by field in a fixed order; the first
// failing rule emits one warning and stops. The phone rule is length
// only, the input mask is expected to keep it digits.
func (f *SellerForm) Validate() bool {
	if strings.TrimSpace(f.Name) == "" || validate.Var(f.Name, "min=3,max=50") != nil {
		f.notifier.MinLength("İsim", 3)
		return false
	}
	if strings.TrimSpace(f.Surname) == "" || validate.Var(f.Surname, "min=2,max=50") != nil {
		f.notifier.MinLength("Soyisim", 2)
		return false
	}
	if !emailPattern.MatchString(f.Email) {
		f.notifier.Invalid("E-posta")
		return false
	}
	if validate.Var(f.Phone, "required,min=10,max=15") != nil {
		f.notifier.MinLength("Telefon", 10)
		return false
	}
	if f.Bio != "" && validate.Var(f.Bio, "max=1000") != nil {
		f.notifier.MaxLength("Biyografi", 1000)
		return false
	}
	if validate.Var(f.Address, "required,max=500") != nil {
		f.notifier.Required("Adres")
		return false
	}
	return true
}

// Payload assembles the validated draft into the wire shape.
func (f *SellerForm) Payload() *models.Seller {
	return &models.Seller{
		Name:     f.Name,
		Surname:  f.Surname,
		Email:    f.Email,
		Phone:    f.Phone,
		Address:  f.Address,
		Bio:      f.Bio,
		IsActive: f.IsActive,
	}
}

// Submit validates the draft and hands it to the callback. A validation
// failure stops before any network work; on success the draft resets.
func (f *SellerForm) Submit(ctx context.Context, fn func(context.Context, *models.Seller) error) bool {
	if !f.Validate() {
		return false
	}
	if err := fn(ctx, f.Payload()); err != nil {
		f.notifier.CreateFailed(notify.EntitySeller, err.Error())
		return false
	}
	f.notifier.Created(notify.EntitySeller)
	f.Reset()
	return true
}

// Reset clears the draft back to its defaults.
func (f *SellerForm) Reset() {
	*f = SellerForm{IsActive: true, notifier: f.notifier}
}
