package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/internal/notify"
)

func lastMessage(t *testing.T, rec *notify.Recorder) notify.Notification {
	t.Helper()
	require.NotEmpty(t, rec.Notifications)
	return rec.Notifications[len(rec.Notifications)-1]
}

func TestNotifier_SeverityPerMethod(t *testing.T) {
	rec := &notify.Recorder{}
	n := notify.New(rec)

	n.Success("kayıt eklendi")
	n.Error("kayıt eklenemedi")
	n.Warning("alan eksik")
	n.Info("yükleniyor")

	require.Len(t, rec.Notifications, 4)
	assert.Equal(t, notify.SeveritySuccess, rec.Notifications[0].Severity)
	assert.Equal(t, notify.SeverityError, rec.Notifications[1].Severity)
	assert.Equal(t, notify.SeverityWarning, rec.Notifications[2].Severity)
	assert.Equal(t, notify.SeverityInfo, rec.Notifications[3].Severity)
	assert.Equal(t, "alan eksik", rec.Notifications[2].Message)
}

func TestFanout_DeliversToEverySink(t *testing.T) {
	first := &notify.Recorder{}
	second := &notify.Recorder{}
	n := notify.New(notify.Fanout(first, second))

	n.Success("tamam")

	require.Len(t, first.Notifications, 1)
	require.Len(t, second.Notifications, 1)
	assert.Equal(t, first.Notifications[0], second.Notifications[0])
}

func TestNotifier_EntityCatalog(t *testing.T) {
	cases := []struct {
		name     string
		emit     func(*notify.Notifier)
		message  string
		severity notify.Severity
	}{
		{"product created", func(n *notify.Notifier) { n.Created(notify.EntityProduct) }, "Ürün başarıyla eklendi!", notify.SeveritySuccess},
		{"product updated", func(n *notify.Notifier) { n.Updated(notify.EntityProduct) }, "Ürün başarıyla güncellendi!", notify.SeveritySuccess},
		{"product deleted", func(n *notify.Notifier) { n.Deleted(notify.EntityProduct) }, "Ürün başarıyla silindi!", notify.SeveritySuccess},
		{"product not found", func(n *notify.Notifier) { n.NotFound(notify.EntityProduct) }, "Ürün bulunamadı!", notify.SeverityError},
		{"products load failed", func(n *notify.Notifier) { n.LoadFailed(notify.EntityProduct, "zaman aşımı") }, "Ürünler yüklenirken hata oluştu: zaman aşımı", notify.SeverityError},
		{"product create failed", func(n *notify.Notifier) { n.CreateFailed(notify.EntityProduct, "bağlantı koptu") }, "Ürün eklenirken hata oluştu: bağlantı koptu", notify.SeverityError},
		{"seller update failed", func(n *notify.Notifier) { n.UpdateFailed(notify.EntitySeller, "sunucu hatası") }, "Satıcı güncellenirken hata oluştu: sunucu hatası", notify.SeverityError},
		{"category delete failed", func(n *notify.Notifier) { n.DeleteFailed(notify.EntityCategory, "sunucu hatası") }, "Kategori silinirken hata oluştu: sunucu hatası", notify.SeverityError},
		{"category activated", func(n *notify.Notifier) { n.StatusChanged(notify.EntityCategory, true) }, "Kategori başarıyla aktif duruma getirildi!", notify.SeveritySuccess},
		{"seller deactivated", func(n *notify.Notifier) { n.StatusChanged(notify.EntitySeller, false) }, "Satıcı başarıyla pasif duruma getirildi!", notify.SeveritySuccess},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &notify.Recorder{}
			tc.emit(notify.New(rec))

			got := lastMessage(t, rec)
			assert.Equal(t, tc.message, got.Message)
			assert.Equal(t, tc.severity, got.Severity)
		})
	}
}

func TestNotifier_ValidationCatalog(t *testing.T) {
	rec := &notify.Recorder{}
	n := notify.New(rec)

	n.Required("Ürün adı")
	n.Invalid("Fiyat")
	n.MinLength("Ürün adı", 3)
	n.MaxLength("Açıklama", 500)

	require.Len(t, rec.Notifications, 4)
	assert.Equal(t, "Ürün adı alanı zorunludur!", rec.Notifications[0].Message)
	assert.Equal(t, "Geçersiz Fiyat değeri!", rec.Notifications[1].Message)
	assert.Equal(t, "Ürün adı en az 3 karakter olmalıdır!", rec.Notifications[2].Message)
	assert.Equal(t, "Açıklama en fazla 500 karakter olmalıdır!", rec.Notifications[3].Message)

	for _, got := range rec.Notifications {
		assert.Equal(t, notify.SeverityWarning, got.Severity)
	}
}
