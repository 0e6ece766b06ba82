package audit

import "context"

type EntryRepository interface {
	Insert(ctx context.Context, e *Entry) error
	List(ctx context.Context, limit, offset int) ([]*Entry, int, error)
	ListAll(ctx context.Context) ([]*Entry, error)
}
