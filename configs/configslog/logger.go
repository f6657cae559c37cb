package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) logger.
// SLog sugared logger, formatlı mesajlar için.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger çağrılana kadar loglar sessizce yutulur; testlerde logger
// kurulumu gerektirmemek için no-op ile başlanır.
func init() {
	Log = zap.NewNop()
	SLog = Log.Sugar()
}

// InitLogger global loggerları ortam değişkenine göre hazırlar.
// APP_ENV=production ise JSON, aksi halde console encoder kullanılır.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa yapacak bir şey yok
		panic("logger oluşturulamadı: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'daki logları flush eder. main'de defer ile çağrılmalı.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
