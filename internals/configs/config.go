package configs

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// Batas ukuran upload (sesuai backend portal)
	MaxUploadSize int64 = 50 * 1024 * 1024 // 50MB foto/video tugas
	MaxPhotoSize  int64 = 5 * 1024 * 1024  // 5MB foto profil
)

type Config struct {
	BaseURL     string
	TokenPath   string
	LogPath     string
	HTTPTimeout time.Duration
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// CLIENT CONFIG (viper)
// =======================

// BindDefaults mendaftarkan default + env binding ke viper.
// Flag dari cobra di-bind oleh main sebelum Load dipanggil.
func BindDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("token_file", "")
	v.SetDefault("log_file", "")
	v.SetDefault("http_timeout", "15s")

	v.SetEnvPrefix("PORTAL")
	_ = v.BindEnv("base_url")   // PORTAL_BASE_URL
	_ = v.BindEnv("token_file") // PORTAL_TOKEN_FILE
	_ = v.BindEnv("log_file")   // PORTAL_LOG_FILE
	_ = v.BindEnv("http_timeout")
}

func Load(v *viper.Viper) Config {
	cfg := Config{
		BaseURL:     v.GetString("base_url"),
		TokenPath:   v.GetString("token_file"),
		LogPath:     v.GetString("log_file"),
		HTTPTimeout: v.GetDuration("http_timeout"),
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	appDir := filepath.Join(dir, "kampusku")

	if cfg.TokenPath == "" {
		cfg.TokenPath = filepath.Join(appDir, "token")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(appDir, "client.log")
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	return cfg
}
