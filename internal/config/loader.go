package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the server configuration. Sources, strongest first: process
// environment, .env (DOTENV_PATH, default ./.env), the YAML file
// (CONFIG_PATH, default ./config.yaml), env-default tags. A missing default
// file is fine; a missing explicit one is an error.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadDatabase reads only the database section from the environment, for
// maintenance commands that must not need the server's secrets.
func LoadDatabase() (DatabaseConfig, error) {
	if err := loadDotEnv(); err != nil {
		return DatabaseConfig{}, err
	}
	var db DatabaseConfig
	if err := cleanenv.ReadEnv(&db); err != nil {
		return DatabaseConfig{}, fmt.Errorf("config: database: %w", err)
	}
	return db, nil
}

func read(dst any) error {
	path, explicit := os.Getenv("CONFIG_PATH"), true
	if path == "" {
		path, explicit = defaultConfigPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}

// loadDotEnv never overrides variables already present in the environment.
func loadDotEnv() error {
	path, explicit := os.Getenv("DOTENV_PATH"), true
	if path == "" {
		path, explicit = ".env", false
	}

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("config: dotenv %s: %w", path, err)
}
