package records

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is one consultation entry. Records are never updated or
// deleted in the normal flow.
type MedicalRecord struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorName   string    `db:"doctor_name" json:"doctor_name"`
	Diagnosis    string    `db:"diagnosis" json:"diagnosis"`
	Prescription string    `db:"prescription" json:"prescription"`
	VisitDate    time.Time `db:"visit_date" json:"visit_date"`
}

type ConsultationInput struct {
	PatientID    uuid.UUID `json:"patient_id"`
	DoctorName   string    `json:"doctor_name"`
	Diagnosis    string    `json:"diagnosis"`
	Prescription string    `json:"prescription"`
}
