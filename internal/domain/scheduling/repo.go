package scheduling

import "context"

type Repository interface {
	Insert(ctx context.Context, a *Appointment) error
	// ListAll returns the queue view joined with patient names,
	// ordered by date then time.
	ListAll(ctx context.Context) ([]*AppointmentWithPatient, error)
}
