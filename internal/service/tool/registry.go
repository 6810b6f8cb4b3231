package tool

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
	"github.com/makerclub/toolroom/internal/guard"
)

// List returns all tools ordered by name, with holder names resolved.
// Available to every authenticated member.
func (s *Service) List(ctx context.Context) ([]domain.Tool, error) {
	if _, err := guard.Require(ctx, domain.RoleUser, domain.RoleToolAdmin, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}

	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("tool.List: %w", err)
	}
	return tools, nil
}

// Get returns a single tool by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	if _, err := guard.Require(ctx, domain.RoleUser, domain.RoleToolAdmin, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}

	tool, err := s.tools.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tool.Get: %w", err)
	}
	return tool, nil
}

// Create registers a new tool in available state.
// Returns ErrAlreadyExists if the name is taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Tool, error) {
	caller, err := guard.Require(ctx, domain.RoleToolAdmin, domain.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	created, err := s.tools.Create(ctx, &domain.Tool{
		ID:        uuid.New(),
		Name:      input.Name,
		Status:    domain.ToolStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("tool.Create: %w", err)
	}

	s.log.InfoContext(ctx, "tool created",
		slog.String("tool_id", created.ID.String()),
		slog.String("actor_id", caller.ID.String()))

	return created, nil
}

// Update applies administrative edits. A status or holder change is an
// override outside the lifecycle engine; the custody coupling between
// status and holder is re-checked against the resulting state.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Tool, error) {
	caller, err := guard.Require(ctx, domain.RoleToolAdmin, domain.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.tools.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tool.Update: %w", err)
	}

	status := current.Status
	if input.Status != nil {
		status = *input.Status
	}
	holder := current.HolderID
	if input.ClearHolder {
		holder = nil
	}
	if input.Holder != nil {
		holder = input.Holder
	}
	if !domain.CustodyValid(status, holder) {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "status", Message: "a checked out tool needs a holder, an available one must have none"},
		}}
	}

	updated, err := s.tools.Update(ctx, id, domain.ToolPatch{
		Name:        input.Name,
		Status:      input.Status,
		Holder:      input.Holder,
		ClearHolder: input.ClearHolder,
	})
	if err != nil {
		return nil, fmt.Errorf("tool.Update: %w", err)
	}

	s.log.InfoContext(ctx, "tool updated",
		slog.String("tool_id", id.String()),
		slog.String("actor_id", caller.ID.String()))

	return updated, nil
}

// Delete removes a tool. A checked out tool cannot be deleted.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	caller, err := guard.Require(ctx, domain.RoleToolAdmin, domain.RoleSuperAdmin)
	if err != nil {
		return err
	}

	current, err := s.tools.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("tool.Delete: %w", err)
	}
	if current.Status == domain.ToolStatusCheckedOut {
		return fmt.Errorf("tool.Delete: tool is checked out: %w", domain.ErrConflict)
	}

	if err := s.tools.Delete(ctx, id); err != nil {
		return fmt.Errorf("tool.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "tool deleted",
		slog.String("tool_id", id.String()),
		slog.String("actor_id", caller.ID.String()))

	return nil
}
