// Package history implements the checkout ledger repository using PostgreSQL.
// Rows are appended at checkout and closed at return; nothing here updates
// a closed row or deletes anything.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/makerclub/toolroom/internal/adapter/postgres"
	"github.com/makerclub/toolroom/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// recordRow mirrors the history table joined with tool and user names.
type recordRow struct {
	ID           uuid.UUID  `db:"id"`
	ToolID       uuid.UUID  `db:"tool_id"`
	UserID       uuid.UUID  `db:"user_id"`
	ToolName     string     `db:"tool_name"`
	UserName     string     `db:"user_name"`
	CheckedOutAt time.Time  `db:"checked_out_at"`
	ReturnedAt   *time.Time `db:"returned_at"`
}

// Open appends a new open ledger entry for the given tool and user.
func (r *Repo) Open(ctx context.Context, toolID, userID uuid.UUID, at time.Time) (*domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	query, args, err := psql.
		Insert("history").
		Columns("id", "tool_id", "user_id", "checked_out_at", "returned_at").
		Values(id, toolID, userID, at, nil).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return nil, mapError(err, "history", id)
	}

	return &domain.HistoryRecord{
		ID:           id,
		ToolID:       toolID,
		UserID:       userID,
		CheckedOutAt: at,
	}, nil
}

// OpenCount returns the number of open entries for a tool. Anything other
// than 0 or 1 is a data-integrity violation the caller should surface.
func (r *Repo) OpenCount(ctx context.Context, toolID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("count(*)").
		From("history").
		Where(sq.Eq{"tool_id": toolID, "returned_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, mapError(err, "history", toolID)
	}
	return count, nil
}

// CloseLatestOpen sets the return timestamp on the most recently opened
// open entry for the tool and returns the number of rows closed (0 or 1).
// Selecting the latest entry is deliberate: should more than one open row
// ever exist, the newest one matches the tool's current custody.
func (r *Repo) CloseLatestOpen(ctx context.Context, toolID uuid.UUID, at time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const query = `
UPDATE history SET returned_at = $2
WHERE id = (
    SELECT id FROM history
    WHERE tool_id = $1 AND returned_at IS NULL
    ORDER BY checked_out_at DESC
    LIMIT 1
)`

	tag, err := q.Exec(ctx, query, toolID, at)
	if err != nil {
		return 0, mapError(err, "history", toolID)
	}
	return tag.RowsAffected(), nil
}

// ListAll returns every ledger entry joined with tool and user names,
// ordered by checkout timestamp descending.
func (r *Repo) ListAll(ctx context.Context) ([]domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("h.id", "h.tool_id", "h.user_id",
			"t.name AS tool_name", "u.name AS user_name",
			"h.checked_out_at", "h.returned_at").
		From("history h").
		Join("tools t ON t.id = h.tool_id").
		Join("users u ON u.id = h.user_id").
		OrderBy("h.checked_out_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, mapError(err, "history", uuid.Nil)
	}

	records := make([]domain.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.HistoryRecord{
			ID:           row.ID,
			ToolID:       row.ToolID,
			UserID:       row.UserID,
			ToolName:     row.ToolName,
			UserName:     row.UserName,
			CheckedOutAt: row.CheckedOutAt,
			ReturnedAt:   row.ReturnedAt,
		})
	}
	return records, nil
}

// CountForUser returns the number of ledger entries authored by a user.
func (r *Repo) CountForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("count(*)").
		From("history").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, mapError(err, "history", userID)
	}
	return count, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation (second open entry for one tool)
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
