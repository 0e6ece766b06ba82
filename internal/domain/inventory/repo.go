package inventory

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
	// Decrement subtracts qty from the batch if enough stock remains.
	// Returns the updated item, or nil when the batch is absent or short.
	Decrement(ctx context.Context, id uuid.UUID, qty int) (*Item, error)
}
