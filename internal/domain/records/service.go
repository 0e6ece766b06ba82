package records

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/audit"
	"github.com/clinicore/clinicore/internal/domain/billing"
	"github.com/clinicore/clinicore/internal/platform/apperror"
	"github.com/clinicore/clinicore/internal/platform/auth"
	"github.com/clinicore/clinicore/internal/platform/db"
)

// PatientChecker is the slice of the patient repository consultations need.
type PatientChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo       Repository
	patients   PatientChecker
	bills      billing.Repository
	txRunner   db.TxRunner
	auditor    audit.Recorder
	consultFee float64
}

func NewService(repo Repository, patients PatientChecker, bills billing.Repository,
	txRunner db.TxRunner, auditor audit.Recorder, consultFee float64) *Service {
	return &Service{
		repo:       repo,
		patients:   patients,
		bills:      bills,
		txRunner:   txRunner,
		auditor:    auditor,
		consultFee: consultFee,
	}
}

// RecordConsultation saves the medical record and raises the consultation
// invoice in one transaction: a successful response implies both exist,
// a failed one implies neither does. The audit entry follows the commit.
func (s *Service) RecordConsultation(ctx context.Context, in ConsultationInput) (*MedicalRecord, error) {
	if in.PatientID == uuid.Nil {
		return nil, apperror.New(apperror.Validation, "patient_id is required")
	}
	if in.Diagnosis == "" {
		return nil, apperror.New(apperror.Validation, "diagnosis is required")
	}
	rec := &MedicalRecord{
		PatientID:    in.PatientID,
		DoctorName:   in.DoctorName,
		Diagnosis:    in.Diagnosis,
		Prescription: in.Prescription,
	}
	err := s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		found, err := s.patients.Exists(ctx, in.PatientID)
		if err != nil {
			return apperror.Wrap(apperror.Storage, "error saving record", err)
		}
		if !found {
			return apperror.New(apperror.Reference, "Patient not found")
		}
		if err := s.repo.Insert(ctx, rec); err != nil {
			return apperror.Wrap(apperror.Storage, "error saving record", err)
		}
		bill := &billing.Bill{PatientID: in.PatientID, Amount: s.consultFee}
		if err := s.bills.Insert(ctx, bill); err != nil {
			return apperror.Wrap(apperror.Storage, "error creating consultation bill", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	actor, role := auth.ActorFromContext(ctx)
	s.auditor.Record(ctx, actor, role, audit.ActionConsultation,
		fmt.Sprintf("Patient ID: %s", in.PatientID),
		fmt.Sprintf("Recorded consultation by %s and billed consultation fee", in.DoctorName))
	return rec, nil
}

// ListByPatient returns the patient's records, newest first.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecord, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error fetching records", err)
	}
	return items, nil
}
