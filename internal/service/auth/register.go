package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/makerclub/toolroom/internal/domain"
)

// Register creates a new member account with the base role.
// Returns ErrAlreadyExists if the name is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Name = strings.TrimSpace(input.Name)
	if input.Team != nil {
		team := strings.TrimSpace(*input.Team)
		if team == "" {
			input.Team = nil
		} else {
			input.Team = &team
		}
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create user. Name uniqueness is enforced by a DB constraint.
	// Self-registration always produces the base role; only a super admin
	// can promote afterwards.
	now := time.Now()
	newUser := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Team:         input.Team,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	// Step 4: Issue token
	token, err := s.jwt.GenerateAccessToken(created.ID, created.Name, created.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "member registered",
		slog.String("user_id", created.ID.String()))

	return &AuthResult{AccessToken: token, User: *created}, nil
}
