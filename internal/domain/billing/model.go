package billing

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnpaid = "Unpaid"
	StatusPaid   = "Paid"
)

// Bill is a billable charge tied to a patient. Lifecycle is one-way:
// created Unpaid, settled Paid exactly once with a payment method.
type Bill struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	Amount        float64   `db:"amount" json:"amount"`
	Status        string    `db:"status" json:"status"`
	PaymentMethod *string   `db:"payment_method" json:"payment_method"`
	BillingDate   time.Time `db:"billing_date" json:"billing_date"`
}

// BillWithPatient is the joined row for the billing desk listing.
type BillWithPatient struct {
	Bill
	PatientName string `db:"full_name" json:"full_name"`
}

type CreateInput struct {
	PatientID uuid.UUID `json:"patient_id"`
	Amount    float64   `json:"amount"`
}

type PayInput struct {
	Method string `json:"method"`
}
