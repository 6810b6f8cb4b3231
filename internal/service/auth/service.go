package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/config"
	"github.com/makerclub/toolroom/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByName(ctx context.Context, name string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenIssuer defines the JWT management interface needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, name string, role domain.Role) (string, error)
}

// Service implements registration and login.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   tokenIssuer
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt tokenIssuer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}
