package audit

import (
	"context"

	"github.com/rs/zerolog"
)

// Recorder is the fire-and-forget audit side channel used by every mutating
// workflow. Record never fails from the caller's point of view: the
// observability side channel must never compromise availability of the
// primary workflow.
type Recorder interface {
	Record(ctx context.Context, actor, role, actionType, subject, details string)
}

type Service struct {
	repo   EntryRepository
	logger zerolog.Logger
}

func NewService(repo EntryRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record appends one audit entry. Errors are contained here: logged,
// never raised to the caller. The write uses a context detached from the
// request's cancellation so a deadline expiring after the primary commit
// cannot suppress the entry.
func (s *Service) Record(ctx context.Context, actor, role, actionType, subject, details string) {
	e := &Entry{
		UserName:   actor,
		UserRole:   role,
		ActionType: actionType,
		Subject:    subject,
		Details:    details,
	}
	if err := s.repo.Insert(context.WithoutCancel(ctx), e); err != nil {
		s.logger.Error().Err(err).
			Str("actor", actor).
			Str("action_type", actionType).
			Str("subject", subject).
			Msg("audit entry dropped")
	}
}

// List returns audit entries newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Entry, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Export returns the full trail newest first, unpaginated.
func (s *Service) Export(ctx context.Context) ([]*Entry, error) {
	return s.repo.ListAll(ctx)
}
