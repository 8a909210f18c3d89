package models

import (
	"formsayfa.link/pkg/slugify"
)

// Form bir form tanımının ana kaydıdır. Bu uygulama formları yalnızca okur;
// oluşturma ve düzenleme dışarıdaki form yönetim sistemine aittir.
type Form struct {
	BaseModel
	Title      string `gorm:"type:varchar(255);not null;index"`
	IsActive   bool   `gorm:"default:true;index"`
	ViewCount  int    `gorm:"default:0"` // bilgilendirme amaçlı
	EntryCount int    `gorm:"default:0"` // bilgilendirme amaçlı

	// GORM İlişkileri
	Detail FormDetail `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Slug başlıktan türetilen URL tanımlayıcısı. Saklanmaz, her çağrıda
// yeniden hesaplanır; başlık değişirse slug da değişir. Değer alıcısı,
// template içinden de çağrılabilsin diye.
func (f Form) Slug() string {
	return slugify.Slug(f.Title)
}
