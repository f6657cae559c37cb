package seeders

import (
	"errors"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
)

// SeedAdminUser admin hesabını yoksa oluşturur. Parola ortamdan gelir;
// tanımlı değilse seed atlanır, varsayılan parola basılmaz.
func SeedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD tanımlı değil, admin seed atlanıyor")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        email,
		Name:         "Mağaza Yöneticisi",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Admin kullanıcısı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Admin kullanıcısı oluşturuldu: %s", email)
	return nil
}
