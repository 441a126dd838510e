package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ProductStore.
var _ ports.ProductStore = (*ProductRepository)(nil)

// ProductRepository — хранилище определений продуктов на Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository - конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Insert — добавляет новую строку с новым UUID; уникальность кода не проверяется.
// Заполняет def.ID и def.CreatedAt.
func (r *ProductRepository) Insert(ctx context.Context, def *domain.ProductDefinition) (string, error) {
	if def == nil {
		return "", errors.New("product definition is nil")
	}

	id := uuid.New()
	if err := r.pool.QueryRow(ctx, `
		INSERT INTO products (id, code, status, price)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, id, def.Code, int16(def.Status), def.Price).Scan(&def.CreatedAt); err != nil {
		return "", classifyWriteErr("insert product", err)
	}

	def.ID = id.String()
	return def.ID, nil
}

// UpdateByCode — выставляет code и status первой (самой старой) строке с этим кодом.
// Цена намеренно не меняется. Нет строки — domain.ErrProductNotFound.
func (r *ProductRepository) UpdateByCode(ctx context.Context, code string, status domain.ProductStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products SET code = $1, status = $2
		WHERE id = (
			SELECT id FROM products
			WHERE code = $1
			ORDER BY created_at, id
			LIMIT 1
		)
	`, code, int16(status))
	if err != nil {
		return classifyWriteErr("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// GetByCode — первая строка с этим кодом. Если не нашли, возвращает (nil, nil).
func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*domain.ProductDefinition, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id::text, code, status, price, created_at
		FROM products
		WHERE code = $1
		ORDER BY created_at, id
		LIMIT 1
	`, code)

	def, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return def, nil
}

// LastN — последние N определений (для прогрева кэша).
func (r *ProductRepository) LastN(ctx context.Context, n int) ([]*domain.ProductDefinition, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, code, status, price, created_at
		FROM products
		ORDER BY created_at DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last products: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.ProductDefinition, 0, n)
	for rows.Next() {
		def, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return result, nil
}

func scanProduct(row pgx.Row) (*domain.ProductDefinition, error) {
	var (
		def    domain.ProductDefinition
		status int16
	)
	if err := row.Scan(&def.ID, &def.Code, &status, &def.Price, &def.CreatedAt); err != nil {
		return nil, err
	}
	def.Status = domain.ProductStatus(status)
	return &def, nil
}
