package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecordKind selects which reference list of a counter a record belongs to.
type RecordKind string

const (
	RecordKindReset RecordKind = "reset"
	RecordKindDiary RecordKind = "diary"
)

// String returns the string representation of the RecordKind.
func (k RecordKind) String() string { return string(k) }

// IsValid checks if the RecordKind is a known value.
func (k RecordKind) IsValid() bool {
	switch k {
	case RecordKindReset, RecordKindDiary:
		return true
	}
	return false
}

// Counter is a streak owned by a user. ResetIDs and DiaryIDs hold record
// references in insertion order.
type Counter struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Start     time.Time
	Color     string
	ResetIDs  []uuid.UUID
	DiaryIDs  []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecordIDs returns the reference list selected by kind.
func (c *Counter) RecordIDs(kind RecordKind) []uuid.UUID {
	if kind == RecordKindReset {
		return c.ResetIDs
	}
	return c.DiaryIDs
}

// CounterUpdate carries the optional fields of a counter update.
type CounterUpdate struct {
	Name  *string
	Start *time.Time
	Color *string
}

// IsEmpty reports whether the update changes nothing.
func (u CounterUpdate) IsEmpty() bool {
	return u.Name == nil && u.Start == nil && u.Color == nil
}

// CommentRecord is a dated note attached to a counter, either as a reset or a diary entry.
type CommentRecord struct {
	ID        uuid.UUID
	Date      time.Time
	Comment   string
	CreatedAt time.Time
}

// RecordUpdate carries the optional fields of a record update.
type RecordUpdate struct {
	Date    *time.Time
	Comment *string
}

// IsEmpty reports whether the update changes nothing.
func (u RecordUpdate) IsEmpty() bool {
	return u.Date == nil && u.Comment == nil
}

// CounterAggregate is a counter with its references resolved to records.
type CounterAggregate struct {
	Counter
	Resets []CommentRecord
	Diary  []CommentRecord
}

// ResolveCounter builds an aggregate from a counter and a lookup of loaded records.
// References missing from the lookup are skipped; order is preserved.
func ResolveCounter(c Counter, records map[uuid.UUID]CommentRecord) CounterAggregate {
	return CounterAggregate{
		Counter: c,
		Resets:  pick(c.RecordIDs(RecordKindReset), records),
		Diary:   pick(c.RecordIDs(RecordKindDiary), records),
	}
}

func pick(ids []uuid.UUID, records map[uuid.UUID]CommentRecord) []CommentRecord {
	out := make([]CommentRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := records[id]; ok {
			out = append(out, rec)
		}
	}
	return out
}
