package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/config"
	"github.com/makerclub/toolroom/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// toolRepo defines the tool repository interface needed by user service.
type toolRepo interface {
	CountHeldBy(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service implements member administration. All operations are restricted
// to super admins.
type Service struct {
	log   *slog.Logger
	users userRepo
	tools toolRepo
	cfg   config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tools toolRepo,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tools: tools,
		cfg:   cfg,
	}
}
