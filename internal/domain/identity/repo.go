package identity

import "context"

type Repository interface {
	Insert(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	// ListAll returns every credential row, hashes included. Used by the
	// hash-legacy migration only.
	ListAll(ctx context.Context) ([]*User, error)
	UpdatePassword(ctx context.Context, username, password string) error
}
