package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, p *Patient) error
	// Update rewrites name, age and phone. Returns nil, nil when the
	// patient does not exist.
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Patient, error)
	// DeleteCascade removes the patient together with their medical records,
	// appointments and bills. Returns false when no such patient exists.
	DeleteCascade(ctx context.Context, id uuid.UUID) (bool, error)
}
