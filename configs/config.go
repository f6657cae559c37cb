package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"davetiye.store/configs/configslog"
)

// Config uygulamanın tüm ortam yapılandırmasını taşır.
// main'de bir kez yüklenir, bağımlılık olarak aşağıya aktarılır.
type Config struct {
	AppEnv     string
	ServerPort string

	Database DatabaseConfig

	JWTSecret string

	SMTP SMTPConfig

	Storage StorageConfig

	PaymentWebhookSecret string

	// Public davetiye sayfalarının servis edildiği ana alan adı
	PublicBaseURL string

	// Ürün okuma sorgularını saran kısa süreli cache'in TTL'i
	ProductCacheTTL time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type StorageConfig struct {
	Bucket        string
	PublicBaseURL string
	SigningSecret string
	UploadBaseURL string
}

// DSN GORM postgres driver'ının beklediği bağlantı cümlesini üretir.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// LoadConfig .env dosyasını (varsa) okur ve Config'i doldurur.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env opsiyonel; production'da ortam değişkenleri doğrudan gelir
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak")
	}

	cfg := &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "3000"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "davetiye"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret: getEnv("JWT_SECRET", ""),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@davetiye.store"),
		},
		Storage: StorageConfig{
			Bucket:        getEnv("STORAGE_BUCKET", "davetiye-assets"),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_URL", "https://cdn.davetiye.store"),
			SigningSecret: getEnv("STORAGE_SIGNING_SECRET", ""),
			UploadBaseURL: getEnv("STORAGE_UPLOAD_URL", "https://upload.davetiye.store"),
		},
		PaymentWebhookSecret: getEnv("PAYMENT_WEBHOOK_SECRET", ""),
		PublicBaseURL:        getEnv("PUBLIC_BASE_URL", "https://davetiye.store"),
		ProductCacheTTL:      getEnvDuration("PRODUCT_CACHE_TTL", 60*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET tanımlı değil")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
