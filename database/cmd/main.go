package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"davetiye.store/configs"
	"davetiye.store/configs/configsdatabase"
	"davetiye.store/configs/configslog"
	"davetiye.store/database"
)

// Veritabanı bootstrap aracı:
//
//	go run davetiye.store/database/cmd -migrate -seed
func main() {
	migrate := flag.Bool("migrate", false, "tabloları oluştur/güncelle")
	seed := flag.Bool("seed", false, "başlangıç verilerini yükle")
	flag.Parse()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.LoadConfig()
	if err != nil {
		configslog.SLog.Errorf("Konfigürasyon yüklenemedi: %v", err)
		os.Exit(1)
	}

	db, err := configsdatabase.Connect(cfg.Database)
	if err != nil {
		configslog.Log.Error("Veritabanına bağlanılamadı", zap.Error(err))
		os.Exit(1)
	}
	defer configsdatabase.Close(db)

	if err := database.Initialize(db, *migrate, *seed); err != nil {
		configslog.Log.Error("Veritabanı başlatma başarısız", zap.Error(err))
		os.Exit(1)
	}
	configslog.SLog.Info("Veritabanı başlatma tamamlandı")
}
