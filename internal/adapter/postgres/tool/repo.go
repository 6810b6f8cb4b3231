// Package tool implements the tool registry repository using PostgreSQL.
package tool

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

// Repo provides tool persistence backed by PostgreSQL.
// The (status, holder_id) pair is additionally protected by a CHECK
// constraint, so an invariant-breaking write fails at the database even
// if a caller bypasses the service layer.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tool repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// toolRow mirrors the tools table, optionally joined with the holder's name.
type toolRow struct {
	ID         uuid.UUID  `db:"id"`
	Name       string     `db:"name"`
	Status     string     `db:"status"`
	HolderID   *uuid.UUID `db:"holder_id"`
	HolderName *string    `db:"holder_name"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

const joinedColumns = "t.id, t.name, t.status, t.holder_id, u.name AS holder_name, t.created_at, t.updated_at"

// List returns all tools ordered by name ascending, joined with the
// holder's display name.
func (r *Repo) List(ctx context.Context) ([]domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(joinedColumns).
		From("tools t").
		LeftJoin("users u ON u.id = t.holder_id").
		OrderBy("t.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []toolRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, mapError(err, "tools", uuid.Nil)
	}

	tools := make([]domain.Tool, 0, len(rows))
	for _, row := range rows {
		tools = append(tools, toDomain(row))
	}
	return tools, nil
}

// GetByID returns a tool by primary key, joined with the holder's name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select(joinedColumns).
		From("tools t").
		LeftJoin("users u ON u.id = t.holder_id").
		Where(sq.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row toolRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, mapError(err, "tool", id)
	}

	t := toDomain(row)
	return &t, nil
}

// GetForUpdate returns a tool by primary key and takes a row lock on it.
// Must be called inside a transaction; the lock serializes concurrent
// lifecycle transitions on the same tool without blocking other tools.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("id", "name", "status", "holder_id", "created_at", "updated_at").
		From("tools").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock query: %w", err)
	}

	var row toolRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, mapError(err, "tool", id)
	}

	t := toDomain(row)
	return &t, nil
}

// Create inserts a new tool and returns the persisted domain.Tool.
func (r *Repo) Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Insert("tools").
		Columns("id", "name", "status", "holder_id", "created_at", "updated_at").
		Values(t.ID, t.Name, t.Status.String(), t.HolderID, t.CreatedAt, t.UpdatedAt).
		Suffix("RETURNING id, name, status, holder_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var row toolRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, mapError(err, "tool", t.ID)
	}

	created := toDomain(row)
	return &created, nil
}

// Update applies an administrative patch. The service layer validates the
// custody coupling before calling this; the CHECK constraint is the backstop.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.ToolPatch) (*domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("tools").Set("updated_at", time.Now().UTC())
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Status != nil {
		update = update.Set("status", patch.Status.String())
	}
	if patch.Holder != nil {
		update = update.Set("holder_id", *patch.Holder)
	} else if patch.ClearHolder {
		update = update.Set("holder_id", nil)
	}

	query, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, status, holder_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	var row toolRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, mapError(err, "tool", id)
	}

	t := toDomain(row)
	return &t, nil
}

// SetCustody writes a new (status, holder) pair. This is the low-level
// mutator used by the lifecycle service inside its transaction.
func (r *Repo) SetCustody(ctx context.Context, id uuid.UUID, status domain.ToolStatus, holder *uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Update("tools").
		Set("status", status.String()).
		Set("holder_id", holder).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build custody query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "tool", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tool %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a tool. The delete is conditional on the tool being
// available, so a concurrent checkout cannot slip a held tool past the
// service-level check.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Delete("tools").
		Where(sq.Eq{"id": id, "status": domain.ToolStatusAvailable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "tool", id)
	}
	if tag.RowsAffected() == 0 {
		// Nothing matched: either the tool is gone or it is checked out.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("tool %s is checked out: %w", id, domain.ErrConflict)
	}
	return nil
}

// CountHeldBy returns how many tools the given user currently holds.
func (r *Repo) CountHeldBy(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("count(*)").
		From("tools").
		Where(sq.Eq{"holder_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, mapError(err, "tools", userID)
	}
	return count, nil
}

// toDomain converts a toolRow into a domain.Tool.
func toDomain(row toolRow) domain.Tool {
	return domain.Tool{
		ID:         row.ID,
		Name:       row.Name,
		Status:     domain.ToolStatus(row.Status),
		HolderID:   row.HolderID,
		HolderName: row.HolderName,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation (custody coupling)
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
