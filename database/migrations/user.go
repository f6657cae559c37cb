package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
)

// MigrateUsersTable User ve Address modelleri için tabloları oluşturur/günceller.
func MigrateUsersTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Address{}); err != nil {
		configslog.Log.Error("users/addresses tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	return nil
}
