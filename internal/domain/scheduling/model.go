package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked slot. The same patient may book the same date
// and time twice; no uniqueness is enforced.
type Appointment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	AppointmentDate string    `db:"appointment_date" json:"appointment_date"`
	AppointmentTime string    `db:"appointment_time" json:"appointment_time"`
	Reason          string    `db:"reason" json:"reason"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// AppointmentWithPatient is the joined queue view row.
type AppointmentWithPatient struct {
	Appointment
	PatientName string `db:"full_name" json:"full_name"`
}

// ScheduleInput binds the wire body of POST /appointments; clients send
// short date/time keys, responses carry the column names.
type ScheduleInput struct {
	PatientID       uuid.UUID `json:"patient_id"`
	AppointmentDate string    `json:"date"`
	AppointmentTime string    `json:"time"`
	Reason          string    `json:"reason"`
}
