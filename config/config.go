package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"atelier/internal/domain/model"
	"atelier/internal/infrastructure/database"
	"atelier/internal/infrastructure/storage"
	"atelier/internal/presentation/middleware"
	"atelier/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment string            `yaml:"environment"`
	Server      ServerConfig      `yaml:"server"`
	DBConfig    database.Config   `yaml:"db_config"`
	Storage     storage.Config    `yaml:"storage"`
	Auth        middleware.Config `yaml:"auth"`
	Logger      logger.Config     `yaml:"logger"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		// .env is optional; env vars may come from the environment itself.
		_ = godotenv.Load()
	}

	if uri := os.Getenv("DATABASE_URI"); uri != "" {
		config.DBConfig.URI = uri
	}

	// An admin principal can be injected without touching the config file.
	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		if config.Auth.Tokens == nil {
			config.Auth.Tokens = make(map[string]model.Principal)
		}
		config.Auth.Tokens[token] = model.Principal{
			ID:   os.Getenv("ADMIN_ID"),
			Role: model.RoleAdmin,
		}
	}

	config.applyDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Storage.TempDir == "" && c.Storage.BaseDir != "" {
		c.Storage.TempDir = filepath.Join(c.Storage.BaseDir, "tmp")
	}
	if c.DBConfig.ConnectionTimeout == 0 {
		c.DBConfig.ConnectionTimeout = 5000
	}
	if c.DBConfig.QueryTimeout == 0 {
		c.DBConfig.QueryTimeout = 3000
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Storage.BaseDir == "" {
		return Error{reason: "storage.base_dir is required"}
	}
	if c.DBConfig.DBName == "" {
		return Error{reason: "db_config.db_name is required"}
	}

	return nil
}
