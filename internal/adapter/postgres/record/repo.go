// Package record implements comment record persistence using PostgreSQL.
package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

const table = "comment_records"

var columns = []string{"id", "date", "comment", "created_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

type recordRow struct {
	ID        uuid.UUID `db:"id"`
	Date      time.Time `db:"date"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}

func (r recordRow) toDomain() domain.CommentRecord {
	return domain.CommentRecord{
		ID:        r.ID,
		Date:      r.Date,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides comment record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a record.
func (r *Repo) Create(ctx context.Context, rec *domain.CommentRecord) (*domain.CommentRecord, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "date", "comment").
		Values(rec.ID, rec.Date, rec.Comment).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert record: %w", err)
	}
	return r.getOne(ctx, rec.ID, query, args)
}

// GetByIDs loads every existing record among ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CommentRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build record batch query: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "records", uuid.Nil)
	}

	out := make([]domain.CommentRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update applies the non-nil fields of upd and returns the updated record.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.CommentRecord, error) {
	if upd.IsEmpty() {
		query, args, err := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build record query: %w", err)
		}
		return r.getOne(ctx, id, query, args)
	}

	b := postgres.Builder().Update(table).
		Where(sq.Eq{"id": id}).
		Suffix(returning)
	if upd.Date != nil {
		b = b.Set("date", *upd.Date)
	}
	if upd.Comment != nil {
		b = b.Set("comment", *upd.Comment)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update record: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// Delete removes the record. Deleting a missing record is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM comment_records WHERE id = $1`, id); err != nil {
		return postgres.MapError(err, "record", id)
	}
	return nil
}

// DeleteOrphans removes records that no counter references and returns how many were deleted.
// Records created after olderThan are kept so in-flight writes are never raced.
func (r *Repo) DeleteOrphans(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `
		DELETE FROM comment_records r
		WHERE r.created_at < $1
		  AND NOT EXISTS (
			SELECT 1 FROM counters c
			WHERE c.reset_record_ids @> ARRAY[r.id]
			   OR c.diary_record_ids @> ARRAY[r.id]
		  )`, olderThan)
	if err != nil {
		return 0, postgres.MapError(err, "orphan records", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.CommentRecord, error) {
	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	rec := row.toDomain()
	return &rec, nil
}
