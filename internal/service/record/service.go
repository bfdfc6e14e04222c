package record

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

type recordRepo interface {
	Create(ctx context.Context, rec *domain.CommentRecord) (*domain.CommentRecord, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.RecordUpdate) (*domain.CommentRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// counterRefs edits the reference lists of a counter.
// Both methods return domain.ErrNotFound when the counter does not exist.
type counterRefs interface {
	AppendRecord(ctx context.Context, counterID uuid.UUID, kind domain.RecordKind, recordID uuid.UUID) error
	RemoveRecord(ctx context.Context, counterID uuid.UUID, kind domain.RecordKind, recordID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages comment records and keeps counter reference lists in sync.
type Service struct {
	records  recordRepo
	counters counterRefs
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new record service.
func NewService(log *slog.Logger, records recordRepo, counters counterRefs, tx txManager) *Service {
	return &Service{
		records:  records,
		counters: counters,
		tx:       tx,
		log:      log.With("service", "record"),
		now:      time.Now,
	}
}
