package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
)

// MigrateCommerceTables sepet ve sipariş tablolarını oluşturur/günceller.
func MigrateCommerceTables(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		configslog.Log.Error("sepet/sipariş tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	return nil
}
