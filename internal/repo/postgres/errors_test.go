package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
)

func TestClassifyWriteErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		rejected bool
	}{
		{"invalid byte sequence", &pgconn.PgError{Code: "22021"}, true},
		{"numeric out of range", &pgconn.PgError{Code: "22003"}, true},
		{"not null violation", &pgconn.PgError{Code: "23502"}, true},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, false},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, false},
		{"network", errors.New("connection reset by peer"), false},
		{"deadline", context.DeadlineExceeded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyWriteErr("insert product", tt.err)
			require.Error(t, got)
			assert.Equal(t, tt.rejected, errors.Is(got, domain.ErrRejected))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
