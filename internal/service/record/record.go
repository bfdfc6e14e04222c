package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// Add creates a record and appends its id to the counter list selected by kind,
// both in one transaction. A missing counter returns ErrNotFound and leaves no record behind.
func (s *Service) Add(ctx context.Context, kind domain.RecordKind, input AddInput) (*domain.CommentRecord, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("record.Add: unknown kind %q", kind)
	}

	p, err := input.validate(s.now())
	if err != nil {
		return nil, err
	}

	var created *domain.CommentRecord
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.records.Create(txCtx, &domain.CommentRecord{
			ID:      uuid.New(),
			Date:    p.date,
			Comment: p.comment,
		})
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}

		if err := s.counters.AppendRecord(txCtx, p.counterID, kind, rec.ID); err != nil {
			return fmt.Errorf("append to counter: %w", err)
		}

		created = rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record.Add: %w", err)
	}

	s.log.InfoContext(ctx, "record added",
		slog.String("kind", kind.String()),
		slog.String("counter_id", p.counterID.String()),
		slog.String("record_id", created.ID.String()))

	return created, nil
}

// Remove drops recordID from the counter list selected by kind and deletes the record,
// both in one transaction. The record is deleted even if the list did not reference it.
// A missing counter returns ErrNotFound and deletes nothing.
func (s *Service) Remove(ctx context.Context, kind domain.RecordKind, rawCounterID string, recordID uuid.UUID) error {
	if !kind.IsValid() {
		return fmt.Errorf("record.Remove: unknown kind %q", kind)
	}

	counterID, err := parseCounterID(rawCounterID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.counters.RemoveRecord(txCtx, counterID, kind, recordID); err != nil {
			return fmt.Errorf("remove from counter: %w", err)
		}
		if err := s.records.Delete(txCtx, recordID); err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record.Remove: %w", err)
	}

	s.log.InfoContext(ctx, "record removed",
		slog.String("kind", kind.String()),
		slog.String("counter_id", counterID.String()),
		slog.String("record_id", recordID.String()))

	return nil
}

// Update changes the present fields of a record. Counters are not touched.
func (s *Service) Update(ctx context.Context, recordID uuid.UUID, input UpdateInput) (*domain.CommentRecord, error) {
	upd, err := input.toUpdate(s.now())
	if err != nil {
		return nil, err
	}

	rec, err := s.records.Update(ctx, recordID, upd)
	if err != nil {
		return nil, fmt.Errorf("record.Update: %w", err)
	}
	return rec, nil
}
