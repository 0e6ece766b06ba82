package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/audit"
	"github.com/clinicore/clinicore/internal/platform/apperror"
	"github.com/clinicore/clinicore/internal/platform/auth"
)

// PatientChecker is the slice of the patient repository billing needs.
type PatientChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo     Repository
	patients PatientChecker
	auditor  audit.Recorder
}

func NewService(repo Repository, patients PatientChecker, auditor audit.Recorder) *Service {
	return &Service{repo: repo, patients: patients, auditor: auditor}
}

// Create raises a manual charge against a patient.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Bill, error) {
	if in.PatientID == uuid.Nil {
		return nil, apperror.New(apperror.Validation, "patient_id is required")
	}
	if in.Amount <= 0 {
		return nil, apperror.New(apperror.Validation, "amount must be positive")
	}
	found, err := s.patients.Exists(ctx, in.PatientID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error creating bill", err)
	}
	if !found {
		return nil, apperror.New(apperror.Reference, "Patient not found")
	}
	b := &Bill{PatientID: in.PatientID, Amount: in.Amount}
	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error creating bill", err)
	}
	return b, nil
}

// Settle flips an Unpaid bill to Paid. Settling twice is rejected with
// InvalidStateTransition and the first method is retained.
func (s *Service) Settle(ctx context.Context, id uuid.UUID, in PayInput) error {
	if in.Method == "" {
		return apperror.New(apperror.Validation, "payment method is required")
	}
	paid, err := s.repo.MarkPaid(ctx, id, in.Method)
	if err != nil {
		return apperror.Wrap(apperror.Storage, "error processing payment", err)
	}
	if !paid {
		b, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return apperror.Wrap(apperror.Storage, "error processing payment", err)
		}
		if b == nil {
			return apperror.New(apperror.NotFound, "Bill not found")
		}
		return apperror.New(apperror.InvalidStateTransition, "Bill is already paid")
	}
	actor, role := auth.ActorFromContext(ctx)
	s.auditor.Record(ctx, actor, role, audit.ActionPayment,
		fmt.Sprintf("Bill ID: %s", id),
		fmt.Sprintf("Payment received via %s", in.Method))
	return nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Bill, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error fetching bills", err)
	}
	return items, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*BillWithPatient, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error fetching bills", err)
	}
	return items, nil
}
