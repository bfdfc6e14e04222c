package counter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

type counterRepo interface {
	Create(ctx context.Context, c *domain.Counter) (*domain.Counter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Counter, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Counter, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.CounterUpdate) (*domain.Counter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// recordLoader resolves record references in one round trip.
type recordLoader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CommentRecord, error)
}

// Service provides counter management operations.
type Service struct {
	counters counterRepo
	records  recordLoader
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new counter service.
func NewService(log *slog.Logger, counters counterRepo, records recordLoader) *Service {
	return &Service{
		counters: counters,
		records:  records,
		log:      log.With("service", "counter"),
		now:      time.Now,
	}
}

// resolve loads every record referenced by counters with a single batched
// lookup and returns the counters as aggregates, in input order.
func (s *Service) resolve(ctx context.Context, counters []domain.Counter) ([]domain.CounterAggregate, error) {
	var ids []uuid.UUID
	for _, c := range counters {
		ids = append(ids, c.RecordIDs(domain.RecordKindReset)...)
		ids = append(ids, c.RecordIDs(domain.RecordKindDiary)...)
	}

	byID := make(map[uuid.UUID]domain.CommentRecord, len(ids))
	if len(ids) > 0 {
		records, err := s.records.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			byID[r.ID] = r
		}
	}

	out := make([]domain.CounterAggregate, 0, len(counters))
	for _, c := range counters {
		out = append(out, domain.ResolveCounter(c, byID))
	}
	return out, nil
}
