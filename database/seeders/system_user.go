package seeders

import (
	"errors"
	"os"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemUser SYSTEM_USER_EMAIL / SYSTEM_USER_PASSWORD ortam
// değişkenlerinden sistem kullanıcısını oluşturur veya şifresini günceller.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if email == "" || password == "" {
		return errors.New("SYSTEM_USER_EMAIL ve SYSTEM_USER_PASSWORD ortam değişkenleri tanımlı olmalı")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı şifresi hash'lenemedi", zap.Error(err))
		return err
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)

	if result.Error == nil {
		configslog.SLog.Infof("Sistem kullanıcısı '%s' zaten mevcut, şifre güncelleniyor.", email)
		updates := map[string]interface{}{
			"password_hash": string(hashed),
			"is_system":     true,
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			configslog.Log.Error("Sistem kullanıcısı güncellenemedi", zap.Error(err))
			return err
		}
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	user := models.User{
		Name:         "Sistem Yöneticisi",
		Email:        email,
		PasswordHash: string(hashed),
		IsSystem:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem kullanıcısı '%s' başarıyla oluşturuldu (ID: %d).", email, user.ID)
	return nil
}
