package configsdatabase

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"davetiye.store/configs"
	"davetiye.store/configs/configslog"
)

// Connect verilen yapılandırma ile bir GORM bağlantısı açar.
// Dönen *gorm.DB uygulama ömrü boyunca yaşar; kapanış Close ile yapılır.
// Global bir handle tutulmaz, bağlantı constructor'lara parametre olarak geçilir.
func Connect(cfg configs.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı açılamadı: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB alınamadı: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("veritabanına erişilemiyor: %w", err)
	}

	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu: %s/%s", cfg.Host, cfg.Name)
	return db, nil
}

// Close bağlantı havuzunu kapatır. main'de defer ile çağrılır.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Kapanışta sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
