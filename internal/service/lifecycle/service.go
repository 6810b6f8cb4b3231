package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
)

// toolRepo defines the tool repository interface needed by lifecycle service.
type toolRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	SetCustody(ctx context.Context, id uuid.UUID, status domain.ToolStatus, holder *uuid.UUID, at time.Time) error
}

// historyRepo defines the ledger interface needed by lifecycle service.
type historyRepo interface {
	Open(ctx context.Context, toolID, userID uuid.UUID, at time.Time) (*domain.HistoryRecord, error)
	OpenCount(ctx context.Context, toolID uuid.UUID) (int, error)
	CloseLatestOpen(ctx context.Context, toolID uuid.UUID, at time.Time) (int64, error)
}

// txManager defines the transaction manager interface needed by lifecycle service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service moves tools between available and checked out. Every transition
// runs in a transaction holding a row lock on the tool, so concurrent
// attempts on the same tool serialize and at most one succeeds.
type Service struct {
	log     *slog.Logger
	tools   toolRepo
	history historyRepo
	tx      txManager
}

// NewService creates a new lifecycle service instance.
func NewService(
	logger *slog.Logger,
	tools toolRepo,
	history historyRepo,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "lifecycle"),
		tools:   tools,
		history: history,
		tx:      tx,
	}
}
