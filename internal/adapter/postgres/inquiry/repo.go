// Package inquiry implements the Inquiry repository using PostgreSQL.
package inquiry

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

const table = "inquiries"

var columns = []string{
	"id", "parent_id", "student_name", "class_level", "subjects",
	"location", "contact", "status", "teacher_id", "fee",
	"created_at", "updated_at",
}

// Repo provides inquiry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inquiry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new inquiry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, in *domain.Inquiry) (*domain.Inquiry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			in.ID, in.ParentID, in.StudentName, in.ClassLevel, in.Subjects,
			in.Location, in.Contact, in.Status.String(), in.TeacherID, in.Fee,
			in.CreatedAt, in.UpdatedAt,
		).
		Suffix("RETURNING " + selectList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert inquiry: %w", err)
	}

	created, err := scanInquiry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "inquiry", in.ID)
	}

	return created, nil
}

// GetByID returns an inquiry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select inquiry: %w", err)
	}

	in, err := scanInquiry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "inquiry", id)
	}

	return in, nil
}

// ListByScope returns inquiries visible under the given access scope,
// newest first. An all-scope lists every inquiry; otherwise rows are
// filtered by the parent or assigned teacher the scope names.
func (r *Repo) ListByScope(ctx context.Context, scope domain.InquiryScope) ([]domain.Inquiry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Select(columns...).
		From(table).
		OrderBy("created_at DESC")

	switch {
	case scope.All:
	case scope.ParentID != uuid.Nil:
		b = b.Where(squirrel.Eq{"parent_id": scope.ParentID})
	case scope.TeacherID != uuid.Nil:
		b = b.Where(squirrel.Eq{"teacher_id": scope.TeacherID})
	default:
		return []domain.Inquiry{}, nil
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list inquiries: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []domain.Inquiry{}
	for rows.Next() {
		in, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	return inquiries, nil
}

// Update applies the non-nil fields of upd to the inquiry and returns
// the updated row. Only status, teacher assignment and fee are mutable.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.InquiryUpdate) (*domain.Inquiry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + selectList())

	if upd.Status != nil {
		b = b.Set("status", upd.Status.String())
	}
	if upd.TeacherID != nil {
		b = b.Set("teacher_id", *upd.TeacherID)
	}
	if upd.Fee != nil {
		b = b.Set("fee", *upd.Fee)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update inquiry: %w", err)
	}

	in, err := scanInquiry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "inquiry", id)
	}

	return in, nil
}

// Count returns the total number of inquiries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count inquiries: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}

	return n, nil
}

func selectList() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}

func scanInquiry(row pgx.Row) (*domain.Inquiry, error) {
	var (
		in     domain.Inquiry
		status string
	)
	if err := row.Scan(
		&in.ID, &in.ParentID, &in.StudentName, &in.ClassLevel, &in.Subjects,
		&in.Location, &in.Contact, &status, &in.TeacherID, &in.Fee,
		&in.CreatedAt, &in.UpdatedAt,
	); err != nil {
		return nil, err
	}
	in.Status = domain.InquiryStatus(status)
	return &in, nil
}
