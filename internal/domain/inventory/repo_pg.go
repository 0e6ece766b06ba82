package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicore/clinicore/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const itemCols = `id, medicine_name, batch_number, quantity_on_hand, cost_price, sale_price,
	COALESCE(expiration_date::text, ''), supplier, reorder_level, created_at`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.MedicineName, &it.BatchNumber, &it.QuantityOnHand,
		&it.CostPrice, &it.SalePrice, &it.ExpirationDate, &it.Supplier, &it.ReorderLevel, &it.CreatedAt)
	return &it, err
}

func (r *repoPG) Insert(ctx context.Context, it *Item) error {
	it.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medicine_inventory
			(id, medicine_name, batch_number, quantity_on_hand, cost_price, sale_price, expiration_date, supplier, reorder_level)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::date, $8, $9)
		RETURNING created_at`,
		it.ID, it.MedicineName, it.BatchNumber, it.QuantityOnHand, it.CostPrice,
		it.SalePrice, it.ExpirationDate, it.Supplier, it.ReorderLevel).Scan(&it.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	it, err := scanItem(r.conn(ctx).QueryRow(ctx,
		`SELECT `+itemCols+` FROM medicine_inventory WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Item, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+itemCols+` FROM medicine_inventory ORDER BY medicine_name, batch_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Decrement is race safe: the quantity predicate makes concurrent dispenses
// against the same batch serialize on the row and never go negative.
func (r *repoPG) Decrement(ctx context.Context, id uuid.UUID, qty int) (*Item, error) {
	it, err := scanItem(r.conn(ctx).QueryRow(ctx, `
		UPDATE medicine_inventory
		SET quantity_on_hand = quantity_on_hand - $1
		WHERE id = $2 AND quantity_on_hand >= $1
		RETURNING `+itemCols, qty, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}
