package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"fitledger/storage"
)

// Config is everything the server needs from the environment. Loaded once
// in main and passed down explicitly; nothing here is a package global.
type Config struct {
	Addr string

	// StorageBackend is one of "badger", "postgres", "sqlite", "memory".
	StorageBackend string
	BadgerPath     string
	SQLitePath     string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret        string
	AuthEmail        string
	AuthPasswordHash string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:             getEnv("ADDR", ":8080"),
		StorageBackend:   getEnv("STORAGE_BACKEND", "badger"),
		BadgerPath:       getEnv("BADGER_PATH", "data/ledger"),
		SQLitePath:       getEnv("SQLITE_PATH", "data/ledger.db"),
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           os.Getenv("DB_PORT"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AuthEmail:        os.Getenv("AUTH_EMAIL"),
		AuthPasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AuthEmail == "" || cfg.AuthPasswordHash == "" {
		return nil, fmt.Errorf("AUTH_EMAIL and AUTH_PASSWORD_HASH are required")
	}
	return cfg, nil
}

// OpenKV opens the configured storage backend.
func (c *Config) OpenKV(logger *slog.Logger) (storage.KV, error) {
	switch c.StorageBackend {
	case "badger":
		bc := storage.DefaultBadgerConfig(c.BadgerPath)
		bc.Logger = logger
		return storage.OpenBadger(bc)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
		return storage.OpenPostgres(dsn)
	case "sqlite":
		return storage.OpenSQLite(c.SQLitePath)
	case "memory":
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
