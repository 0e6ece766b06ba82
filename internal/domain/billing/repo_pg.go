package billing

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

const billCols = `id, patient_id, amount, status, payment_method, billing_date`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.PatientID, &b.Amount, &b.Status, &b.PaymentMethod, &b.BillingDate)
	return &b, err
}

func (r *repoPG) Insert(ctx context.Context, b *Bill) error {
	b.ID = uuid.New()
	b.Status = StatusUnpaid
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO billing (id, patient_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING billing_date`,
		b.ID, b.PatientID, b.Amount, b.Status).Scan(&b.BillingDate)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bill, error) {
	b, err := scanBill(r.conn(ctx).QueryRow(ctx,
		`SELECT `+billCols+` FROM billing WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Bill, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+billCols+` FROM billing
		WHERE patient_id = $1 ORDER BY billing_date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *repoPG) ListAll(ctx context.Context) ([]*BillWithPatient, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT b.id, b.patient_id, b.amount, b.status, b.payment_method, b.billing_date, p.full_name
		FROM billing b
		JOIN patients p ON p.id = b.patient_id
		ORDER BY b.billing_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*BillWithPatient
	for rows.Next() {
		var b BillWithPatient
		if err := rows.Scan(&b.ID, &b.PatientID, &b.Amount, &b.Status, &b.PaymentMethod, &b.BillingDate, &b.PatientName); err != nil {
			return nil, err
		}
		items = append(items, &b)
	}
	return items, rows.Err()
}

// MarkPaid is race safe: the status predicate makes concurrent settlements
// of the same bill resolve to exactly one winner.
func (r *repoPG) MarkPaid(ctx context.Context, id uuid.UUID, method string) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE billing SET status = $1, payment_method = $2
		WHERE id = $3 AND status = $4`,
		StatusPaid, method, id, StatusUnpaid)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
