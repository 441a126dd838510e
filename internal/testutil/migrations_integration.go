//go:build integration

package testutil

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/Gunvolt24/wb_inventory/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"
)

// ApplyMigrations — применяет встроенные миграции (migrations.FS) к базе.
func ApplyMigrations(dsn string) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(log.New(os.Stdout, "[goose] ", 0))
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
