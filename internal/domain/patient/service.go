package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/audit"
	"github.com/clinicore/clinicore/internal/platform/apperror"
	"github.com/clinicore/clinicore/internal/platform/auth"
	"github.com/clinicore/clinicore/internal/platform/db"
)

type Service struct {
	repo     Repository
	txRunner db.TxRunner
	auditor  audit.Recorder
}

func NewService(repo Repository, txRunner db.TxRunner, auditor audit.Recorder) *Service {
	return &Service{repo: repo, txRunner: txRunner, auditor: auditor}
}

// Register creates a patient record and logs the registration.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Patient, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, apperror.New(apperror.Validation, "Patient name is required")
	}
	p := &Patient{
		FullName:       strings.TrimSpace(in.FullName),
		Age:            in.Age,
		Gender:         in.Gender,
		Phone:          in.Phone,
		MedicalHistory: in.MedicalHistory,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error registering patient", err)
	}
	actor, role := auth.ActorFromContext(ctx)
	s.auditor.Record(ctx, actor, role, audit.ActionRegistration,
		fmt.Sprintf("Patient: %s", p.FullName),
		fmt.Sprintf("Registered new patient (Age: %d, Gender: %s)", p.Age, p.Gender))
	return p, nil
}

// Update rewrites the patient's name, age and phone.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Patient, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, apperror.New(apperror.Validation, "Patient name is required")
	}
	in.FullName = strings.TrimSpace(in.FullName)
	p, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error updating patient", err)
	}
	if p == nil {
		return nil, apperror.New(apperror.NotFound, "Patient not found")
	}
	actor, role := auth.ActorFromContext(ctx)
	s.auditor.Record(ctx, actor, role, audit.ActionUpdate,
		fmt.Sprintf("Patient: %s", p.FullName), "Updated patient details")
	return p, nil
}

// Delete removes the patient and all dependent records in one transaction.
// The audit entry is written only after the transaction commits.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		found, err := s.repo.DeleteCascade(ctx, id)
		if err != nil {
			return apperror.Wrap(apperror.Storage, "error deleting patient", err)
		}
		if !found {
			return apperror.New(apperror.NotFound, "Patient not found")
		}
		return nil
	})
	if err != nil {
		return err
	}
	actor, role := auth.ActorFromContext(ctx)
	s.auditor.Record(ctx, actor, role, audit.ActionDeletion,
		fmt.Sprintf("Patient ID: %s", id), "Deleted patient and associated records")
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error fetching patient", err)
	}
	if p == nil {
		return nil, apperror.New(apperror.NotFound, "Patient not found")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error fetching patients", err)
	}
	return items, nil
}
