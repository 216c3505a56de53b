package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ============================================================
// Configuration
// ============================================================

const (
	DefaultPort        = "3003"
	DefaultBodyLimit   = 4 * 1024 * 1024
	DefaultParallelism = 4
)

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
	CorsOrigins  []string

	ExtentConvention string
	Strategy         string
	SkipInvalid      bool
	Parallelism      int
}

// Load загружает конфигурацию: .env (если есть), файл из BIGRAPH_CONFIG
// (если задан), переменные окружения. Окружение приоритетнее файла.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] .env ignored: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString("BIGRAPH_CONFIG"); path != "" {
		v.SetConfigFile(path)
		// viper не угадывает формат по пути сам
		v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))
		if err := v.MergeInConfig(); err != nil {
			log.Printf("[CONFIG] failed to read %s: %v", path, err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("ENV", "development")
	v.SetDefault("READ_TIMEOUT", 10)
	v.SetDefault("WRITE_TIMEOUT", 10)
	v.SetDefault("BODY_LIMIT", DefaultBodyLimit)
	v.SetDefault("CORS_ORIGINS", "")
	v.SetDefault("EXTENT_CONVENTION", "analyzed")
	v.SetDefault("NEAREST_STRATEGY", "surface")
	v.SetDefault("SKIP_INVALID", false)
	v.SetDefault("ROOM_PARALLELISM", DefaultParallelism)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:             v.GetString("PORT"),
		Environment:      v.GetString("ENV"),
		ReadTimeout:      v.GetInt("READ_TIMEOUT"),
		WriteTimeout:     v.GetInt("WRITE_TIMEOUT"),
		BodyLimit:        v.GetInt("BODY_LIMIT"),
		CorsOrigins:      splitList(v.GetString("CORS_ORIGINS")),
		ExtentConvention: v.GetString("EXTENT_CONVENTION"),
		Strategy:         v.GetString("NEAREST_STRATEGY"),
		SkipInvalid:      v.GetBool("SKIP_INVALID"),
		Parallelism:      v.GetInt("ROOM_PARALLELISM"),
	}

	// нечисловые значения viper отдает как 0
	if cfg.BodyLimit <= 0 {
		cfg.BodyLimit = DefaultBodyLimit
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = DefaultParallelism
	}
	return cfg
}

// splitList: "a, b,,c" -> [a b c]
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
