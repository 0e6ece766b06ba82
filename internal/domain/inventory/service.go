package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/audit"
	"github.com/clinicore/clinicore/internal/platform/apperror"
	"github.com/clinicore/clinicore/internal/platform/auth"
)

type Service struct {
	repo    Repository
	auditor audit.Recorder
}

func NewService(repo Repository, auditor audit.Recorder) *Service {
	return &Service{repo: repo, auditor: auditor}
}

// AddStock records a new batch exactly as submitted.
func (s *Service) AddStock(ctx context.Context, in StockInput) (*Item, error) {
	if strings.TrimSpace(in.MedicineName) == "" {
		return nil, apperror.New(apperror.Validation, "medicine name is required")
	}
	if strings.TrimSpace(in.BatchNumber) == "" {
		return nil, apperror.New(apperror.Validation, "batch number is required")
	}
	if in.QuantityOnHand <= 0 {
		return nil, apperror.New(apperror.Validation, "quantity must be positive")
	}
	it := &Item{
		MedicineName:   strings.TrimSpace(in.MedicineName),
		BatchNumber:    strings.TrimSpace(in.BatchNumber),
		QuantityOnHand: in.QuantityOnHand,
		CostPrice:      in.CostPrice,
		SalePrice:      in.SalePrice,
		ExpirationDate: in.ExpirationDate,
		Supplier:       in.Supplier,
		ReorderLevel:   in.ReorderLevel,
	}
	if err := s.repo.Insert(ctx, it); err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error adding stock", err)
	}
	actor, role := auth.ActorFromContext(ctx)
	s.auditor.Record(ctx, actor, role, audit.ActionStockEntry,
		fmt.Sprintf("Medicine: %s", it.MedicineName),
		fmt.Sprintf("Added batch %s (qty %d)", it.BatchNumber, it.QuantityOnHand))
	return it, nil
}

// Dispense decrements a batch's stock, failing when the batch is missing
// or holds less than requested.
func (s *Service) Dispense(ctx context.Context, id uuid.UUID, in DispenseInput) (*Item, error) {
	if in.Quantity <= 0 {
		return nil, apperror.New(apperror.Validation, "qty must be positive")
	}
	it, err := s.repo.Decrement(ctx, id, in.Quantity)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error dispensing medication", err)
	}
	if it == nil {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, apperror.Wrap(apperror.Storage, "error dispensing medication", err)
		}
		if existing == nil {
			return nil, apperror.New(apperror.NotFound, "Inventory item not found")
		}
		return nil, apperror.Newf(apperror.InsufficientStock,
			"only %d units of %s remain", existing.QuantityOnHand, existing.MedicineName)
	}
	actor, role := auth.ActorFromContext(ctx)
	s.auditor.Record(ctx, actor, role, audit.ActionDispense,
		fmt.Sprintf("Medicine: %s", it.MedicineName),
		fmt.Sprintf("Dispensed %d units from batch %s", in.Quantity, it.BatchNumber))
	return it, nil
}

func (s *Service) List(ctx context.Context) ([]*Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error fetching inventory", err)
	}
	return items, nil
}
