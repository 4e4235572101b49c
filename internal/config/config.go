package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime settings loaded from the environment.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	TokenExpiry time.Duration
	Env         string
}

// LoadConfig reads configuration from .env / the environment. Secrets have no
// defaults; startup fails without them.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		MongoURI:    os.Getenv("MONGO_URI"),
		DBName:      getEnv("DB_NAME", "Bondify"),
		JWTSecret:   os.Getenv("ACCESS_TOKEN_SECRET"),
		TokenExpiry: 365 * 24 * time.Hour,
		Env:         getEnv("ENV", "development"),
	}

	if cfg.MongoURI == "" {
		logrus.Fatal("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("ACCESS_TOKEN_SECRET is required")
	}

	if raw := os.Getenv("TOKEN_EXPIRY"); raw != "" {
		expiry, err := time.ParseDuration(raw)
		if err != nil {
			logrus.WithError(err).Fatal("Invalid TOKEN_EXPIRY value")
		}
		cfg.TokenExpiry = expiry
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
