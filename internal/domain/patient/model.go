package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the clinic's demographic record. Clinical data hangs off it
// in medical_records, appointments and billing.
type Patient struct {
	ID             uuid.UUID `db:"id" json:"id"`
	FullName       string    `db:"full_name" json:"full_name"`
	Age            int       `db:"age" json:"age"`
	Gender         string    `db:"gender" json:"gender"`
	Phone          string    `db:"phone" json:"phone"`
	MedicalHistory string    `db:"medical_history" json:"medical_history"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// RegisterInput binds the wire body of POST /patients. The request keys
// are the short names clients send; responses carry the column names.
type RegisterInput struct {
	FullName       string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	MedicalHistory string `json:"history"`
}

// UpdateInput covers the staff-editable demographics (PUT /patients/:id).
type UpdateInput struct {
	FullName string `json:"name"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
}
