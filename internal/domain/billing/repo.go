package billing

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Bill, error)
	ListAll(ctx context.Context) ([]*BillWithPatient, error)
	// MarkPaid flips exactly one Unpaid bill to Paid with the given method.
	// Returns false when the bill is absent or already Paid.
	MarkPaid(ctx context.Context, id uuid.UUID, method string) (bool, error)
}
