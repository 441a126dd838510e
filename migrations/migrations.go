// Package migrations — встроенные SQL-миграции goose.
package migrations

import "embed"

// FS — файлы миграций (*.sql), встроенные в бинарник.
//
//go:embed *.sql
var FS embed.FS
