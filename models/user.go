package models

// User yönetim paneline giriş yapabilen kullanıcı.
// Ziyaretçi tarafında kullanıcı kaydı yoktur; yalnızca oturum varlığı
// (giriş yapılmış mı) form görünürlüğünü etkiler.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsSystem     bool   `gorm:"default:false;index"`
}
