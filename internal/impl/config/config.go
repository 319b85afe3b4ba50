package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	MongoURI     string
	DatabaseName string
	SQLitePath   string
	DataDir      string
	Port         string
	logger       *zap.Logger
}

var (
	configInstance *Config
	once           sync.Once
)

func InitConfig() (*Config, error) {
	var initErr error

	once.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err := config.Build()
		if err != nil {
			logger = zap.NewNop()
			initErr = fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		// Load .env file
		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("No .env file found; falling back to system environment variables")
			} else {
				initErr = fmt.Errorf("failed to load .env file: %w", err)
				logger.Error("Config file load error", zap.Error(err))
				return
			}
		} else {
			logger.Debug("Successfully loaded .env file")
		}

		configInstance = &Config{
			MongoURI:     os.Getenv("MONGO_URI"),
			DatabaseName: envOrDefault("DATABASE_NAME", "aichat"),
			SQLitePath:   envOrDefault("SQLITE_PATH", ".aichat/aichat.db"),
			DataDir:      envOrDefault("DATA_DIR", ".aichat"),
			Port:         envOrDefault("PORT", "8080"),
			logger:       logger,
		}
	})

	if initErr != nil {
		return nil, initErr
	}
	if configInstance == nil {
		return nil, fmt.Errorf("configuration initialization failed unexpectedly")
	}

	return configInstance, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
