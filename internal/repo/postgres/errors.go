package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
)

// classifyWriteErr — ошибки данных (22xxx) и ограничений (23xxx) постоянны для записи
// и помечаются domain.ErrRejected; остальное считается временным сбоем.
func classifyWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && isPermanentClass(pgErr.Code) {
		return fmt.Errorf("%s: %w: sqlstate=%s: %w", op, domain.ErrRejected, pgErr.Code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isPermanentClass(sqlState string) bool {
	if len(sqlState) < 2 {
		return false
	}
	switch sqlState[:2] {
	case "22", "23":
		return true
	}
	return false
}
