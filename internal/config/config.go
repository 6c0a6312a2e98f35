package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort             string
	DatabaseDSN          string
	JWTSecret            string
	CORSOrigins          string
	LowStockThreshold    int // Dashboard düşük stok eşiği
	ActivityPollInterval int // Tetikleyici yoklama aralığı (milisaniye)
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:          getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=stokpanel port=5432 sslmode=disable"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		CORSOrigins:          getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LowStockThreshold:    getEnvInt("LOW_STOCK_THRESHOLD", 4),
		ActivityPollInterval: getEnvInt("ACTIVITY_POLL_INTERVAL_MS", 100),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=stokpanel port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}
	if cfg.LowStockThreshold <= 0 {
		log.Println("[WARN] LOW_STOCK_THRESHOLD geçersiz, varsayılan 4 kullanılacak.")
		cfg.LowStockThreshold = 4
	}

	return cfg
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
