package scheduling

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/platform/apperror"
)

// PatientChecker is the slice of the patient repository scheduling needs.
type PatientChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo     Repository
	patients PatientChecker
}

func NewService(repo Repository, patients PatientChecker) *Service {
	return &Service{repo: repo, patients: patients}
}

// Schedule books an appointment. Scheduling writes no audit entry.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) (*Appointment, error) {
	if in.PatientID == uuid.Nil {
		return nil, apperror.New(apperror.Validation, "patient_id is required")
	}
	if in.AppointmentDate == "" || in.AppointmentTime == "" {
		return nil, apperror.New(apperror.Validation, "appointment date and time are required")
	}
	found, err := s.patients.Exists(ctx, in.PatientID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error scheduling appointment", err)
	}
	if !found {
		return nil, apperror.New(apperror.Reference, "Patient not found")
	}
	a := &Appointment{
		PatientID:       in.PatientID,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		Reason:          in.Reason,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error scheduling appointment", err)
	}
	return a, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*AppointmentWithPatient, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error fetching appointments", err)
	}
	return items, nil
}
