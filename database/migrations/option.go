package migrations

import (
	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateOptionsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating options table...")
	err := db.AutoMigrate(&models.Option{})
	if err != nil {
		configslog.Log.Error("Failed to migrate options table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Options table migrated successfully")
	return nil
}
