package notify

import "fmt"

// Entity names an entity type in both grammatical forms the message
// catalog needs.
type Entity struct {
	Singular string
	Plural   string
}

var (
	EntityProduct  = Entity{Singular: "Ürün", Plural: "Ürünler"}
	EntityCategory = Entity{Singular: "Kategori", Plural: "Kategoriler"}
	EntitySeller   = Entity{Singular: "Satıcı", Plural: "Satıcılar"}
)

// Created reports a successful create for the given entity.
func (n *Notifier) Created(e Entity) {
	n.Success(fmt.Sprintf("%s başarıyla eklendi!", e.Singular))
}

// Updated reports a successful update for the given entity.
func (n *Notifier) Updated(e Entity) {
	n.Success(fmt.Sprintf("%s başarıyla güncellendi!", e.Singular))
}

// Deleted reports a successful delete for the given entity.
func (n *Notifier) Deleted(e Entity) {
	n.Success(fmt.Sprintf("%s başarıyla silindi!", e.Singular))
}

// StatusChanged reports a successful active/inactive toggle.
func (n *Notifier) StatusChanged(e Entity, isActive bool) {
	state := "pasif"
	if isActive {
		state = "aktif"
	}
	n.Success(fmt.Sprintf("%s başarıyla %s duruma getirildi!", e.Singular, state))
}

// CreateFailed reports a failed create with the underlying message.
func (n *Notifier) CreateFailed(e Entity, cause string) {
	n.Error(fmt.Sprintf("%s eklenirken hata oluştu: %s", e.Singular, cause))
}

// UpdateFailed reports a failed update with the underlying message.
func (n *Notifier) UpdateFailed(e Entity, cause string) {
	n.Error(fmt.Sprintf("%s güncellenirken hata oluştu: %s", e.Singular, cause))
}

// DeleteFailed reports a failed delete with the underlying message.
func (n *Notifier) DeleteFailed(e Entity, cause string) {
	n.Error(fmt.Sprintf("%s silinirken hata oluştu: %s", e.Singular, cause))
}

// NotFound reports that the entity no longer exists.
func (n *Notifier) NotFound(e Entity) {
	n.Error(fmt.Sprintf("%s bulunamadı!", e.Singular))
}

// LoadFailed reports a failed list fetch with the underlying message.
func (n *Notifier) LoadFailed(e Entity, cause string) {
	n.Error(fmt.Sprintf("%s yüklenirken hata oluştu: %s", e.Plural, cause))
}

// Required warns that a mandatory field is missing.
func (n *Notifier) Required(field string) {
	n.Warning(fmt.Sprintf("%s alanı zorunludur!", field))
}

// Invalid warns that a field holds an unusable value.
func (n *Notifier) Invalid(field string) {
	n.Warning(fmt.Sprintf("Geçersiz %s değeri!", field))
}

// MinLength warns that a field is shorter than its lower bound.
func (n *Notifier) MinLength(field string, length int) {
	n.Warning(fmt.Sprintf("%s en az %d karakter olmalıdır!", field, length))
}

// MaxLength warns that a field exceeds its upper bound.
func (n *Notifier) MaxLength(field string, length int) {
	n.Warning(fmt.Sprintf("%s en fazla %d karakter olmalıdır!", field, length))
}

// MinValue warns that a numeric field is below its lower bound.
func (n *Notifier) MinValue(field string, value float64) {
	n.Warning(fmt.Sprintf("%s en az %v olmalıdır!", field, value))
}

// MaxValue warns that a numeric field is above its upper bound.
func (n *Notifier) MaxValue(field string, value float64) {
	n.Warning(fmt.Sprintf("%s en fazla %v olmalıdır!", field, value))
}
