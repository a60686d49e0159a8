package errs

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ViolationKind int

const (
	NoViolation ViolationKind = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Violation describes the constraint a failed write ran into. Constraint is the
// constraint or index name (PostgreSQL) and Columns the failing columns when the
// driver reports them (SQLite).
type Violation struct {
	Kind       ViolationKind
	Constraint string
	Columns    []string
}

// ClassifyConstraint inspects a store error for an integrity constraint violation.
func ClassifyConstraint(err error) Violation {
	if err == nil {
		return Violation{}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Violation{Kind: UniqueViolation, Constraint: pgErr.ConstraintName}
		case pgForeignKeyViolation:
			return Violation{Kind: ForeignKeyViolation, Constraint: pgErr.ConstraintName}
		case pgCheckViolation:
			return Violation{Kind: CheckViolation, Constraint: pgErr.ConstraintName}
		}
		return Violation{}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Violation{Kind: UniqueViolation}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Violation{Kind: ForeignKeyViolation}
	}

	// SQLite reports constraints only through the message text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return Violation{Kind: UniqueViolation, Columns: sqliteColumns(msg, "UNIQUE constraint failed:")}
	case strings.Contains(msg, "PRIMARY KEY constraint failed"):
		return Violation{Kind: UniqueViolation, Columns: sqliteColumns(msg, "PRIMARY KEY constraint failed:")}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return Violation{Kind: ForeignKeyViolation}
	case strings.Contains(msg, "CHECK constraint failed"):
		return Violation{Kind: CheckViolation}
	}
	return Violation{}
}

// sqliteColumns turns "UNIQUE constraint failed: games.user_id, games.publication_id (1555)"
// into [user_id publication_id].
func sqliteColumns(msg, marker string) []string {
	_, rest, ok := strings.Cut(msg, marker)
	if !ok {
		return nil
	}
	if i := strings.Index(rest, " ("); i >= 0 {
		rest = rest[:i]
	}
	var cols []string
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if _, col, ok := strings.Cut(part, "."); ok {
			part = col
		}
		if part != "" {
			cols = append(cols, part)
		}
	}
	return cols
}
