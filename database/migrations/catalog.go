package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
)

// MigrateCatalogTables ürün kataloğu tablolarını oluşturur/günceller.
// DesignTemplate önce gelir; Product ona FK taşır.
func MigrateCatalogTables(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.DesignTemplate{}, &models.CustomFont{}, &models.Product{}); err != nil {
		configslog.Log.Error("katalog tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	return nil
}
