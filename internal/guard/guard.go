// Package guard decides whether a caller may perform an operation.
// It is a pure role-set membership check: no hierarchy is implied, so an
// operation meant for super_admin must list super_admin explicitly.
package guard

import (
	"context"
	"fmt"

	"github.com/makerclub/toolroom/internal/domain"
	"github.com/makerclub/toolroom/pkg/ctxutil"
)

// Require returns the caller from the context if its role is in the
// required set.
//
// A missing caller or a caller without a valid role yields
// domain.ErrUnauthorized; a valid caller whose role is not listed yields
// domain.ErrForbidden. Both surface to clients as authorization failures,
// but the distinction matters for diagnostics and status codes.
func Require(ctx context.Context, roles ...domain.Role) (ctxutil.Caller, error) {
	if len(roles) == 0 {
		return ctxutil.Caller{}, fmt.Errorf("guard: empty role set: %w", domain.ErrForbidden)
	}

	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return ctxutil.Caller{}, fmt.Errorf("guard: no caller: %w", domain.ErrUnauthorized)
	}
	if !caller.Role.IsValid() {
		return ctxutil.Caller{}, fmt.Errorf("guard: caller %s has no role: %w", caller.ID, domain.ErrUnauthorized)
	}

	for _, r := range roles {
		if caller.Role == r {
			return caller, nil
		}
	}

	return ctxutil.Caller{}, fmt.Errorf("guard: role %s not permitted: %w", caller.Role, domain.ErrForbidden)
}
