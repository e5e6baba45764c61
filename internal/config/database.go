package config

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"requirement-pool/db/migrations"
)

func NewPostgresDB(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := migrations.Up(db.DB); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
