package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/makerclub/toolroom/internal/domain"
	"github.com/makerclub/toolroom/internal/guard"
)

// List returns all members ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	if _, err := guard.Require(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Get returns a single member by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if _, err := guard.Require(ctx, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// Create adds a member with an arbitrary role. Unlike self-registration
// this may create admins directly.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	caller, err := guard.Require(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("user.Create hash password: %w", err)
	}

	now := time.Now()
	created, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Team:         input.Team,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "member created",
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()),
		slog.String("actor_id", caller.ID.String()))

	return created, nil
}

// Update applies an administrative patch: rename, team change, promotion
// or demotion, password reset.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.User, error) {
	caller, err := guard.Require(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := domain.UserPatch{
		Name: input.Name,
		Team: input.Team,
		Role: input.Role,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("user.Update hash password: %w", err)
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "member updated",
		slog.String("user_id", id.String()),
		slog.String("actor_id", caller.ID.String()))

	return updated, nil
}

// Delete removes a member. A member currently holding tools cannot be
// deleted; neither can one referenced by the ledger, which the database
// enforces.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	caller, err := guard.Require(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return err
	}

	held, err := s.tools.CountHeldBy(ctx, id)
	if err != nil {
		return fmt.Errorf("user.Delete count held tools: %w", err)
	}
	if held > 0 {
		return fmt.Errorf("user.Delete: member holds %d tool(s): %w", held, domain.ErrConflict)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "member deleted",
		slog.String("user_id", id.String()),
		slog.String("actor_id", caller.ID.String()))

	return nil
}
