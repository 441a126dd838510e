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

var _ ports.ProductItemStore = (*ProductItemRepository)(nil)

// ProductItemRepository — единицы товара на Postgres.
type ProductItemRepository struct {
	pool *pgxpool.Pool
}

func NewProductItemRepository(pool *pgxpool.Pool) *ProductItemRepository {
	return &ProductItemRepository{pool: pool}
}

// ListByProduct — единицы продукта в порядке импорта.
func (r *ProductItemRepository) ListByProduct(ctx context.Context, productCode string, limit, offset int) ([]*domain.ProductItem, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, product_code, code, status
		FROM product_items
		WHERE product_code = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`, productCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select product items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ProductItem, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product items rows: %w", err)
	}
	return items, nil
}

// Import — массовая вставка единиц со статусом "доступна" через COPY.
func (r *ProductItemRepository) Import(ctx context.Context, productCode string, codes []string) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, []any{uuid.New(), productCode, code, int16(domain.ItemStatusAvailable)})
	}

	n, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"product_items"},
		[]string{"id", "product_code", "code", "status"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy product items: %w", err)
	}
	return n, nil
}

// ReserveOne — атомарно переводит самую старую доступную единицу в статус "выдана".
// SKIP LOCKED: параллельные выдачи не ждут друг друга и не получают одну и ту же единицу.
func (r *ProductItemRepository) ReserveOne(ctx context.Context, productCode string) (*domain.ProductItem, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE product_items SET status = $2
		WHERE id = (
			SELECT id FROM product_items
			WHERE product_code = $1 AND status = $3
			ORDER BY created_at, id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id::text, product_code, code, status
	`, productCode, int16(domain.ItemStatusExported), int16(domain.ItemStatusAvailable))

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrItemNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("reserve product item: %w", err)
	}
	return item, nil
}

func scanItem(row pgx.Row) (*domain.ProductItem, error) {
	var (
		item   domain.ProductItem
		status int16
	)
	if err := row.Scan(&item.ID, &item.ProductCode, &item.Code, &status); err != nil {
		return nil, err
	}
	item.Status = domain.ItemStatus(status)
	return &item, nil
}
