package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/database/migrations"
	"davetiye.store/database/seeders"
)

// Initialize migrasyonları ve seeder'ları tek transaction içinde
// çalıştırır. Herhangi bir adım başarısız olursa tamamı geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrasyonlar tamamlandı.")
		}

		if seed {
			configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
			if err := RunSeeders(tx); err != nil {
				configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeder'lar tamamlandı.")
		}
		return nil
	})
}

// RunMigrationsInOrder tabloları FK bağımlılık sırasına göre oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info(" -> users/addresses tabloları...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> katalog tabloları...")
	if err := migrations.MigrateCatalogTables(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> sepet/sipariş tabloları...")
	if err := migrations.MigrateCommerceTables(db); err != nil {
		return err
	}

	configslog.SLog.Info(" -> davetiye/LCV tabloları...")
	if err := migrations.MigrateInvitationTables(db); err != nil {
		return err
	}

	return nil
}

// RunSeeders başlangıç verilerini yoksa oluşturur.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedAdminUser(db); err != nil {
		return err
	}
	return seeders.SeedCatalog(db)
}
