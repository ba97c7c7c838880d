// Package teacherprofile implements the TeacherProfile repository using PostgreSQL.
package teacherprofile

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres"
	"github.com/rajdhanitech/tuition-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "teacher_profiles"

// Repo provides teacher profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new teacher profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert stores the profile for a teacher, replacing any existing one.
// A teacher has at most one profile; re-saving overwrites the subject
// list rather than accumulating entries.
func (r *Repo) Upsert(ctx context.Context, p *domain.TeacherProfile) (*domain.TeacherProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("teacher_id", "subjects", "updated_at").
		Values(p.TeacherID, p.Subjects, p.UpdatedAt).
		Suffix("ON CONFLICT (teacher_id) DO UPDATE SET subjects = EXCLUDED.subjects, updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING teacher_id, subjects, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert teacher profile: %w", err)
	}

	var saved domain.TeacherProfile
	if err := q.QueryRow(ctx, sql, args...).Scan(&saved.TeacherID, &saved.Subjects, &saved.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "teacher profile", p.TeacherID)
	}

	return &saved, nil
}

// GetByTeacherID returns the profile for a teacher account.
func (r *Repo) GetByTeacherID(ctx context.Context, teacherID uuid.UUID) (*domain.TeacherProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select("teacher_id", "subjects", "updated_at").
		From(table).
		Where(squirrel.Eq{"teacher_id": teacherID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select teacher profile: %w", err)
	}

	var p domain.TeacherProfile
	if err := q.QueryRow(ctx, sql, args...).Scan(&p.TeacherID, &p.Subjects, &p.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "teacher profile", teacherID)
	}

	return &p, nil
}
