package reporting

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinicore/internal/platform/apperror"
	"github.com/clinicore/clinicore/internal/platform/auth"
)

// DailySummary is the front-desk dashboard aggregate. Always computed
// fresh against the current date; never cached.
type DailySummary struct {
	Date              string  `json:"date"`
	NewPatients       int     `json:"newPatients"`
	TotalAppointments int     `json:"totalAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// PrescriptionRow is the pharmacy work queue view: every consultation
// that left a non-empty prescription, joined with the patient.
type PrescriptionRow struct {
	RecordID     uuid.UUID `json:"record_id"`
	PatientID    uuid.UUID `json:"patient_id"`
	PatientName  string    `json:"full_name"`
	DoctorName   string    `json:"doctor_name"`
	Prescription string    `json:"prescription"`
	VisitDate    time.Time `json:"visit_date"`
}

// Handler serves the read-only aggregation endpoints straight off the
// pool; these queries cross domain boundaries and belong to no single
// domain repository.
type Handler struct {
	pool *pgxpool.Pool
}

func NewHandler(pool *pgxpool.Pool) *Handler {
	return &Handler{pool: pool}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reports/daily-summary", h.DailySummary, auth.RequireModule(auth.ModuleReports))
	api.GET("/pharmacy/prescriptions", h.Prescriptions, auth.RequireModule(auth.ModulePharmacy))
}

// The summary counts key off the server's current date. Patient and
// billing rows carry full timestamps, so those are truncated to the
// date component; appointment_date is already a DATE. Revenue counts
// settled bills only.
const (
	newPatientsTodayQuery = `SELECT COUNT(*) FROM patients WHERE created_at::date = CURRENT_DATE`

	appointmentsTodayQuery = `SELECT COUNT(*) FROM appointments WHERE appointment_date = CURRENT_DATE`

	revenueTodayQuery = `SELECT COALESCE(SUM(amount), 0) FROM billing
	 WHERE status = 'Paid' AND billing_date::date = CURRENT_DATE`
)

// DailySummary compares the stored date component against the current
// date at query time; time of day is ignored.
func (h *Handler) DailySummary(c echo.Context) error {
	ctx := c.Request().Context()
	s := DailySummary{Date: time.Now().Format("2006-01-02")}

	if err := h.pool.QueryRow(ctx, newPatientsTodayQuery).Scan(&s.NewPatients); err != nil {
		return apperror.Wrap(apperror.Storage, "error generating summary", err)
	}
	if err := h.pool.QueryRow(ctx, appointmentsTodayQuery).Scan(&s.TotalAppointments); err != nil {
		return apperror.Wrap(apperror.Storage, "error generating summary", err)
	}
	if err := h.pool.QueryRow(ctx, revenueTodayQuery).Scan(&s.TotalRevenue); err != nil {
		return apperror.Wrap(apperror.Storage, "error generating summary", err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) Prescriptions(c echo.Context) error {
	rows, err := h.queryPrescriptions(c.Request().Context())
	if err != nil {
		return apperror.Wrap(apperror.Storage, "error fetching prescriptions", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) queryPrescriptions(ctx context.Context) ([]*PrescriptionRow, error) {
	rows, err := h.pool.Query(ctx, `
		SELECT m.id, m.patient_id, p.full_name, m.doctor_name, m.prescription, m.visit_date
		FROM medical_records m
		JOIN patients p ON p.id = m.patient_id
		WHERE m.prescription IS NOT NULL AND m.prescription <> ''
		ORDER BY m.visit_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*PrescriptionRow{}
	for rows.Next() {
		var r PrescriptionRow
		if err := rows.Scan(&r.RecordID, &r.PatientID, &r.PatientName, &r.DoctorName, &r.Prescription, &r.VisitDate); err != nil {
			return nil, err
		}
		items = append(items, &r)
	}
	return items, rows.Err()
}
