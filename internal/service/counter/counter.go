package counter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/pkg/ctxutil"
)

// Create adds a counter owned by the authenticated user. Both record lists start empty.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.CounterAggregate, error) {
	input.Name = strings.TrimSpace(input.Name)

	start, err := input.validate(s.now())
	if err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	created, err := s.counters.Create(ctx, &domain.Counter{
		ID:     uuid.New(),
		UserID: userID,
		Name:   input.Name,
		Start:  start,
		Color:  input.Color,
	})
	if err != nil {
		return nil, fmt.Errorf("counter.Create: %w", err)
	}

	s.log.InfoContext(ctx, "counter created",
		slog.String("user_id", userID.String()),
		slog.String("counter_id", created.ID.String()))

	agg := domain.ResolveCounter(*created, nil)
	return &agg, nil
}

// List returns every counter of the authenticated user with both record lists resolved.
func (s *Service) List(ctx context.Context) ([]domain.CounterAggregate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	counters, err := s.counters.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("counter.List: %w", err)
	}

	out, err := s.resolve(ctx, counters)
	if err != nil {
		return nil, fmt.Errorf("counter.List resolve records: %w", err)
	}
	return out, nil
}

// Get returns one counter with its records resolved.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.CounterAggregate, error) {
	c, err := s.counters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("counter.Get: %w", err)
	}

	out, err := s.resolve(ctx, []domain.Counter{*c})
	if err != nil {
		return nil, fmt.Errorf("counter.Get resolve records: %w", err)
	}
	return &out[0], nil
}

// Update changes the present fields of a counter and returns it with records resolved.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.CounterAggregate, error) {
	upd, err := input.toUpdate(s.now())
	if err != nil {
		return nil, err
	}

	c, err := s.counters.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("counter.Update: %w", err)
	}

	out, err := s.resolve(ctx, []domain.Counter{*c})
	if err != nil {
		return nil, fmt.Errorf("counter.Update resolve records: %w", err)
	}
	return &out[0], nil
}

// Delete removes a counter. Its records are kept; deleting a missing counter succeeds.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.counters.Delete(ctx, id); err != nil {
		return fmt.Errorf("counter.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "counter deleted", slog.String("counter_id", id.String()))
	return nil
}
