package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreBadger = "badger"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

type Config struct {
	Store      string `env:"RIZZ_STORE,default=badger" validate:"oneof=badger redis memory"`
	DataDir    string `env:"RIZZ_DATA_DIR" validate:"required"`
	RedisAddr  string `env:"RIZZ_REDIS_ADDR,default=localhost:6379" validate:"required_if=Store redis"`
	StorageKey string `env:"RIZZ_STORAGE_KEY,default=rizz_state_v1" validate:"required"`
	Author     string `env:"RIZZ_AUTHOR"`
	LogLevel   string `env:"RIZZ_LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	LogFile    string `env:"RIZZ_LOG_FILE"`
	HTTPAddr   string `env:"RIZZ_HTTP_ADDR,default=localhost:8080" validate:"required"`
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory when there is one.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("could not find home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".rizz")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "rizz.log")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}
