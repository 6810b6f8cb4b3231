package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
	"github.com/makerclub/toolroom/internal/guard"
)

// Checkout moves an available tool into the caller's custody and opens a
// ledger entry, as one transaction. Returns ErrConflict if the tool is
// already checked out and ErrNotFound if it does not exist.
func (s *Service) Checkout(ctx context.Context, toolID uuid.UUID) (*domain.Tool, error) {
	caller, err := guard.Require(ctx, domain.RoleUser, domain.RoleToolAdmin, domain.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	var result *domain.Tool

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The row lock serializes concurrent checkouts of the same tool.
		tool, err := s.tools.GetForUpdate(txCtx, toolID)
		if err != nil {
			return fmt.Errorf("lock tool: %w", err)
		}
		if tool.Status != domain.ToolStatusAvailable {
			return fmt.Errorf("tool is already checked out: %w", domain.ErrConflict)
		}

		now := time.Now()
		if err := s.tools.SetCustody(txCtx, toolID, domain.ToolStatusCheckedOut, &caller.ID, now); err != nil {
			return fmt.Errorf("set custody: %w", err)
		}
		if _, err := s.history.Open(txCtx, toolID, caller.ID, now); err != nil {
			return fmt.Errorf("open ledger entry: %w", err)
		}

		tool.Status = domain.ToolStatusCheckedOut
		tool.HolderID = &caller.ID
		tool.HolderName = &caller.Name
		tool.UpdatedAt = now
		result = tool
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lifecycle.Checkout: %w", err)
	}

	s.log.InfoContext(ctx, "tool checked out",
		slog.String("tool_id", toolID.String()),
		slog.String("holder_id", caller.ID.String()))

	return result, nil
}
