package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/makerclub/toolroom/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	team := "team-" + suffix
	user := domain.User{
		ID:           uuid.New(),
		Name:         "member-" + suffix,
		Team:         &team,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthash",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, team, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Team, user.PasswordHash, user.Role.String(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTool creates an available tool and returns the filled domain.Tool.
func SeedTool(t *testing.T, pool *pgxpool.Pool) domain.Tool {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tool := domain.Tool{
		ID:        uuid.New(),
		Name:      "tool-" + suffix,
		Status:    domain.ToolStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tools (id, name, status, holder_id, created_at, updated_at)
		 VALUES ($1, $2, $3, NULL, $4, $5)`,
		tool.ID, tool.Name, tool.Status.String(), tool.CreatedAt, tool.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTool insert tool: %v", err)
	}

	return tool
}

// SeedCheckedOutTool creates a tool held by the given user together with
// the matching open ledger entry, keeping both invariants intact.
func SeedCheckedOutTool(t *testing.T, pool *pgxpool.Pool, holder domain.User) domain.Tool {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	holderID := holder.ID
	tool := domain.Tool{
		ID:        uuid.New(),
		Name:      "tool-" + suffix,
		Status:    domain.ToolStatusCheckedOut,
		HolderID:  &holderID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tools (id, name, status, holder_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tool.ID, tool.Name, tool.Status.String(), tool.HolderID, tool.CreatedAt, tool.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCheckedOutTool insert tool: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO history (id, tool_id, user_id, checked_out_at, returned_at)
		 VALUES ($1, $2, $3, $4, NULL)`,
		uuid.New(), tool.ID, holder.ID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCheckedOutTool insert history: %v", err)
	}

	return tool
}
