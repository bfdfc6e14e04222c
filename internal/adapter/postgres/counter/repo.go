// Package counter implements counter persistence using PostgreSQL.
// Reset and diary references are stored as ordered uuid[] columns.
package counter

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

const table = "counters"

var columns = []string{
	"id", "user_id", "name", "start", "color",
	"reset_record_ids", "diary_record_ids", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type counterRow struct {
	ID             uuid.UUID   `db:"id"`
	UserID         uuid.UUID   `db:"user_id"`
	Name           string      `db:"name"`
	Start          time.Time   `db:"start"`
	Color          string      `db:"color"`
	ResetRecordIDs []uuid.UUID `db:"reset_record_ids"`
	DiaryRecordIDs []uuid.UUID `db:"diary_record_ids"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

func (r counterRow) toDomain() domain.Counter {
	return domain.Counter{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Start:     r.Start,
		Color:     r.Color,
		ResetIDs:  nonNil(r.ResetRecordIDs),
		DiaryIDs:  nonNil(r.DiaryRecordIDs),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

// arrayColumn maps a record kind to the column holding its references.
func arrayColumn(kind domain.RecordKind) (string, error) {
	switch kind {
	case domain.RecordKindReset:
		return "reset_record_ids", nil
	case domain.RecordKindDiary:
		return "diary_record_ids", nil
	}
	return "", fmt.Errorf("unknown record kind %q", kind)
}

// Repo provides counter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new counter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a counter with empty reference lists.
func (r *Repo) Create(ctx context.Context, c *domain.Counter) (*domain.Counter, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "name", "start", "color").
		Values(c.ID, c.UserID, c.Name, c.Start, c.Color).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert counter: %w", err)
	}
	return r.getOne(ctx, c.ID, query, args)
}

// GetByID returns a counter by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Counter, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build counter query: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// ListByUser returns every counter owned by userID, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Counter, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build counter list: %w", err)
	}

	var rows []counterRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "counters of user", userID)
	}

	out := make([]domain.Counter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update applies the non-nil fields of upd and returns the updated counter.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.CounterUpdate) (*domain.Counter, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Start != nil {
		b = b.Set("start", *upd.Start)
	}
	if upd.Color != nil {
		b = b.Set("color", *upd.Color)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update counter: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// Delete removes the counter. Referenced records are not touched and
// deleting a missing counter is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM counters WHERE id = $1`, id); err != nil {
		return postgres.MapError(err, "counter", id)
	}
	return nil
}

// AppendRecord adds recordID to the end of the list selected by kind.
// Returns domain.ErrNotFound when the counter does not exist.
func (r *Repo) AppendRecord(ctx context.Context, counterID uuid.UUID, kind domain.RecordKind, recordID uuid.UUID) error {
	return r.modifyRecords(ctx, counterID, kind, "array_append", recordID)
}

// RemoveRecord drops every occurrence of recordID from the list selected by kind.
// A record that is not referenced leaves the list unchanged.
// Returns domain.ErrNotFound when the counter does not exist.
func (r *Repo) RemoveRecord(ctx context.Context, counterID uuid.UUID, kind domain.RecordKind, recordID uuid.UUID) error {
	return r.modifyRecords(ctx, counterID, kind, "array_remove", recordID)
}

func (r *Repo) modifyRecords(ctx context.Context, counterID uuid.UUID, kind domain.RecordKind, fn string, recordID uuid.UUID) error {
	col, err := arrayColumn(kind)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set(col, sq.Expr(fn+"("+col+", ?)", recordID)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": counterID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s: %w", fn, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "counter", counterID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("counter %s: %w", counterID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Counter, error) {
	var row counterRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "counter", id)
	}
	c := row.toDomain()
	return &c, nil
}
