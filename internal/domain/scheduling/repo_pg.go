package scheduling

import (
	"context"

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

func (r *repoPG) Insert(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, appointment_date, appointment_time, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		a.ID, a.PatientID, a.AppointmentDate, a.AppointmentTime, a.Reason).Scan(&a.CreatedAt)
}

func (r *repoPG) ListAll(ctx context.Context) ([]*AppointmentWithPatient, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT a.id, a.patient_id, a.appointment_date::text, a.appointment_time, a.reason, a.created_at, p.full_name
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		ORDER BY a.appointment_date, a.appointment_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*AppointmentWithPatient
	for rows.Next() {
		var a AppointmentWithPatient
		if err := rows.Scan(&a.ID, &a.PatientID, &a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.CreatedAt, &a.PatientName); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}
