package tool

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
)

// toolRepo defines the tool repository interface needed by tool service.
type toolRepo interface {
	List(ctx context.Context) ([]domain.Tool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error)
	Create(ctx context.Context, tool *domain.Tool) (*domain.Tool, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ToolPatch) (*domain.Tool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements the tool registry operations.
type Service struct {
	log   *slog.Logger
	tools toolRepo
}

// NewService creates a new tool service instance.
func NewService(logger *slog.Logger, tools toolRepo) *Service {
	return &Service{
		log:   logger.With("service", "tool"),
		tools: tools,
	}
}
