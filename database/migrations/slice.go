package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSliceRecordsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating slice_records table...")
	err := db.AutoMigrate(&models.SliceRecord{})
	if err != nil {
		configslog.Log.Error("Failed to migrate slice_records table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Slice_records table migrated successfully")
	return nil
}
