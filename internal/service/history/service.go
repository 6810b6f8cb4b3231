package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/makerclub/toolroom/internal/domain"
	"github.com/makerclub/toolroom/internal/guard"
)

// historyRepo defines the ledger interface needed by history service.
type historyRepo interface {
	ListAll(ctx context.Context) ([]domain.HistoryRecord, error)
}

// Service exposes the checkout ledger to admins.
type Service struct {
	log     *slog.Logger
	history historyRepo
}

// NewService creates a new history service instance.
func NewService(logger *slog.Logger, history historyRepo) *Service {
	return &Service{
		log:     logger.With("service", "history"),
		history: history,
	}
}

// List returns the full ledger, newest checkout first, with tool and
// member names resolved.
func (s *Service) List(ctx context.Context) ([]domain.HistoryRecord, error) {
	if _, err := guard.Require(ctx, domain.RoleToolAdmin, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}

	records, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	return records, nil
}
