// Package user implements the user repository using PostgreSQL.
package user

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

const columns = "id, name, team, password_hash, role, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// userRow mirrors the users table.
type userRow struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Team         *string   `db:"team"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(columns).From("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, mapError(err, "user", id)
	}

	u := toDomain(row)
	return &u, nil
}

// GetByName returns a user by unique display name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(columns).From("users").Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}

	u := toDomain(row)
	return &u, nil
}

// List returns all users ordered by name ascending.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(columns).From("users").OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, mapError(err, "users", uuid.Nil)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomain(row))
	}
	return users, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Insert("users").
		Columns("id", "name", "team", "password_hash", "role", "created_at", "updated_at").
		Values(u.ID, u.Name, u.Team, u.PasswordHash, u.Role.String(), u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, mapError(err, "user", u.ID)
	}

	created := toDomain(row)
	return &created, nil
}

// Update applies an administrative patch. Password in the patch must
// already be hashed by the service layer.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("users").Set("updated_at", time.Now().UTC())
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Team != nil {
		update = update.Set("team", *patch.Team)
	}
	if patch.Role != nil {
		update = update.Set("role", patch.Role.String())
	}
	if patch.Password != nil {
		update = update.Set("password_hash", *patch.Password)
	}

	query, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, mapError(err, "user", id)
	}

	u := toDomain(row)
	return &u, nil
}

// Delete removes a user. A foreign key restriction from the ledger maps
// to domain.ErrConflict: users with audit entries cannot be deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// toDomain converts a userRow into a domain.User.
func toDomain(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Team:         row.Team,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
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
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation (ledger or tools still reference the user)
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
