package testhelper

import (
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
)

// UUIDArg matches a query argument equal to id. squirrel resolves
// driver.Valuer arguments in Eq and Expr clauses, so a uuid.UUID reaches the
// driver as its string form; both are accepted.
func UUIDArg(id uuid.UUID) pgxmock.Argument {
	return uuidArg(id)
}

type uuidArg uuid.UUID

func (a uuidArg) Match(v any) bool {
	switch got := v.(type) {
	case uuid.UUID:
		return got == uuid.UUID(a)
	case string:
		return got == uuid.UUID(a).String()
	}
	return false
}
