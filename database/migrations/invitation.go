package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
)

// MigrateInvitationTables davetiye ve LCV tablolarını oluşturur/günceller.
// Sipariş tabloları zaten var olmalı; UserInvitation OrderItem'a FK taşır.
func MigrateInvitationTables(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.UserInvitation{}, &models.Rsvp{}); err != nil {
		configslog.Log.Error("davetiye/LCV tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	return nil
}
