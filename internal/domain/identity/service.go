package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/audit"
	"github.com/clinicore/clinicore/internal/platform/apperror"
	"github.com/clinicore/clinicore/internal/platform/auth"
)

type Service struct {
	repo    Repository
	issuer  *auth.TokenIssuer
	auditor audit.Recorder
	logger  zerolog.Logger
}

func NewService(repo Repository, issuer *auth.TokenIssuer, auditor audit.Recorder, logger zerolog.Logger) *Service {
	return &Service{repo: repo, issuer: issuer, auditor: auditor, logger: logger}
}

// Login verifies a credential and issues a session token. Unknown username
// and wrong password are indistinguishable to the caller; both audit a
// Failed Login tagged with the submitted username.
func (s *Service) Login(ctx context.Context, in LoginInput) (*User, string, error) {
	if in.Username == "" || in.Password == "" {
		return nil, "", apperror.New(apperror.Validation, "username and password are required")
	}
	u, err := s.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, "", apperror.Wrap(apperror.Storage, "error during login", err)
	}
	if u == nil || !auth.VerifyPassword(u.Password, in.Password) {
		s.auditor.Record(ctx, in.Username, "Unknown", audit.ActionFailedLogin,
			fmt.Sprintf("User: %s", in.Username), "Invalid credentials submitted")
		return nil, "", apperror.New(apperror.InvalidCredentials, "invalid username or password")
	}
	token, err := s.issuer.Issue(u.ID.String(), u.Username, u.Role)
	if err != nil {
		return nil, "", apperror.Wrap(apperror.Storage, "error during login", err)
	}
	s.auditor.Record(ctx, u.FullName, u.Role, audit.ActionLogin,
		fmt.Sprintf("User: %s", u.Username), "Logged in")
	return u, token, nil
}

// Register creates a staff credential. The password is always stored
// hashed, regardless of any legacy rows still in the table.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, apperror.New(apperror.Validation, "username and password are required")
	}
	if in.Role == "" {
		return nil, apperror.New(apperror.Validation, "role is required")
	}
	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Wrap(apperror.Storage, "error registering user", err)
	}
	// The role is stored exactly as submitted; module lookup folds case.
	u := &User{
		Username: strings.TrimSpace(in.Username),
		Password: hashed,
		Role:     in.Role,
		FullName: in.FullName,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, apperror.New(apperror.DuplicateUsername, "Username already exists")
		}
		return nil, apperror.Wrap(apperror.Storage, "error registering user", err)
	}
	actor, role := auth.ActorFromContext(ctx)
	s.auditor.Record(ctx, actor, role, audit.ActionUserRegistration,
		fmt.Sprintf("User: %s", u.Username),
		fmt.Sprintf("Created %s account for %s", u.Role, u.FullName))
	return u, nil
}

// HashLegacy rewrites every plaintext credential row as a bcrypt hash.
// One-time migration, invoked from the CLI, never from a request path.
func (s *Service) HashLegacy(ctx context.Context) (int, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}
	migrated := 0
	for _, u := range users {
		if auth.IsHashed(u.Password) {
			continue
		}
		hashed, err := auth.HashPassword(u.Password)
		if err != nil {
			return migrated, fmt.Errorf("hash credential for %s: %w", u.Username, err)
		}
		if err := s.repo.UpdatePassword(ctx, u.Username, hashed); err != nil {
			return migrated, fmt.Errorf("update credential for %s: %w", u.Username, err)
		}
		s.logger.Info().Str("username", u.Username).Msg("migrated legacy credential")
		migrated++
	}
	return migrated, nil
}
