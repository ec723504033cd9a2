package main

import (
	"fmt"

	"github.com/heartmarshall/incident-desk/internal/config"
)

func postgresConfig() (config.DatabaseConfig, error) {
	db, err := config.LoadDatabase()
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("load database config: %w", err)
	}
	// One short-lived connection is enough.
	db.MaxConns, db.MinConns = 1, 0
	return db, nil
}
