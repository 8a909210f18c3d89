package seeders

import (
	"errors"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedOptions varsayılan site ayarlarını ekler. Mevcut kayıtlara
// dokunulmaz; yönetici panelinden değiştirilen değerler korunur.
func SeedOptions(db *gorm.DB) error {
	optionsToSeed := []models.Option{
		{Key: models.OptionFormsSlug, Value: services.DefaultFormsSlug},
		{Key: models.OptionFormsPerPage, Value: "10"},
		{Key: models.OptionHideFormArchive, Value: "0"},
		{Key: models.OptionHideClosedForms, Value: "0"},
		{Key: models.OptionDefaultAvail, Value: "1"},
		{Key: models.OptionForceAjax, Value: "0"},
		{Key: models.OptionArchiveTitle, Value: services.DefaultArchiveTitle},
		{Key: models.OptionArchiveDescription, Value: ""},
	}

	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Ayar seed işlemi başlıyor...")

	for _, optionToSeed := range optionsToSeed {
		var existingOption models.Option
		result := db.Where("key = ?", optionToSeed.Key).First(&existingOption)

		if result.Error == nil {
			configslog.SLog.Debugf("Ayar '%s' zaten mevcut, oluşturma atlanıyor.", optionToSeed.Key)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Ayar kontrol edilirken veritabanı hatası",
				zap.String("option_key", optionToSeed.Key),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if err := db.Create(&optionToSeed).Error; err != nil {
			configslog.Log.Error("Ayar oluşturulamadı",
				zap.String("option_key", optionToSeed.Key),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni ayar başarıyla seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm ayarlar zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("ayarlar seed edilirken en az bir hata oluştu")
	}

	configslog.SLog.Info("Ayar seed işlemi başarıyla tamamlandı.")
	return nil
}
