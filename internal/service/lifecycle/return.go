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

// Return puts a checked out tool back on the shelf and closes its open
// ledger entry, as one transaction. Any authenticated member may return a
// tool, including one held by somebody else; the tool room works on the
// honor system. Returns ErrConflict if the tool is already available and
// ErrNotFound if it does not exist.
func (s *Service) Return(ctx context.Context, toolID uuid.UUID) (*domain.Tool, error) {
	caller, err := guard.Require(ctx, domain.RoleUser, domain.RoleToolAdmin, domain.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	var result *domain.Tool

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tool, err := s.tools.GetForUpdate(txCtx, toolID)
		if err != nil {
			return fmt.Errorf("lock tool: %w", err)
		}
		if tool.Status != domain.ToolStatusCheckedOut {
			return fmt.Errorf("tool is already available: %w", domain.ErrConflict)
		}

		open, err := s.history.OpenCount(txCtx, toolID)
		if err != nil {
			return fmt.Errorf("count open ledger entries: %w", err)
		}
		switch {
		case open == 0:
			// Custody says checked out but the ledger disagrees. Repair
			// the tool state and surface the inconsistency in the log.
			s.log.WarnContext(txCtx, "no open ledger entry for checked out tool",
				slog.String("tool_id", toolID.String()))
		case open > 1:
			s.log.WarnContext(txCtx, "multiple open ledger entries for tool, closing most recent",
				slog.String("tool_id", toolID.String()),
				slog.Int("open_entries", open))
		}

		now := time.Now()
		if open > 0 {
			closed, err := s.history.CloseLatestOpen(txCtx, toolID, now)
			if err != nil {
				return fmt.Errorf("close ledger entry: %w", err)
			}
			if closed == 0 {
				return fmt.Errorf("open ledger entry vanished for tool %s", toolID)
			}
		}
		if err := s.tools.SetCustody(txCtx, toolID, domain.ToolStatusAvailable, nil, now); err != nil {
			return fmt.Errorf("set custody: %w", err)
		}

		tool.Status = domain.ToolStatusAvailable
		tool.HolderID = nil
		tool.HolderName = nil
		tool.UpdatedAt = now
		result = tool
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lifecycle.Return: %w", err)
	}

	s.log.InfoContext(ctx, "tool returned",
		slog.String("tool_id", toolID.String()),
		slog.String("actor_id", caller.ID.String()))

	return result, nil
}
