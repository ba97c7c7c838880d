// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres"
	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "accounts"

var columns = []string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new account and returns the persisted domain.Account.
// A duplicate email surfaces as domain.ErrAlreadyExists via the unique
// constraint on the email column.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(a.ID, a.Name, a.Email, a.PasswordHash, a.Role.String(), a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING " + selectList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert account: %w", err)
	}

	created, err := scanAccount(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}

	return created, nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select account: %w", err)
	}

	a, err := scanAccount(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	return a, nil
}

// GetByEmail returns an account by its lowercased email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select account: %w", err)
	}

	a, err := scanAccount(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "account", uuid.Nil)
	}

	return a, nil
}

// ListByRole returns all accounts with the given role ordered by name.
// Returns an empty slice (not nil) when none exist.
func (r *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"role": role.String()}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list accounts: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts by role: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts by role: %w", err)
	}

	return accounts, nil
}

func selectList() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		a    domain.Account
		role string
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Role = domain.Role(role)
	return &a, nil
}
