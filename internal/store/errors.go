package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"videogame-catalog/internal/errs"
)

// constraintFields maps PostgreSQL constraint and index names to the fields they guard.
var constraintFields = map[string]string{
	"idx_users_username":                   "username",
	"idx_users_email":                      "email",
	"platforms_pkey":                       "code",
	"idx_publications_platform_video_game": "platform_code, video_game_id",
	"games_pkey":                           "user_id, publication_id",
	"idx_genres_name":                      "name",
	"categories_pkey":                      "genre_id, video_game_id",
}

// unresolvedReference defers naming a missing referenced row until the transaction
// that hit the foreign key has ended.
type unresolvedReference struct {
	kind  Kind
	refs  []Ref
	cause error
}

func (e *unresolvedReference) Error() string {
	return fmt.Sprintf("%s references a missing row: %v", e.kind, e.cause)
}

func (e *unresolvedReference) Unwrap() error {
	return e.cause
}

// translate maps a store error onto the API error taxonomy. Constraint violations are
// authoritative: unique ones become conflicts and foreign key ones become not-found for
// the first missing ref, or a conflict when no refs are given (a delete that something
// still points at).
func (s *Store) translate(ctx context.Context, kind Kind, err error, refs []Ref) error {
	if err == nil {
		return nil
	}
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(string(kind))
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTimeoutError(err)
	}

	v := errs.ClassifyConstraint(err)
	switch v.Kind {
	case errs.UniqueViolation:
		return errs.NewAlreadyExists(string(kind), conflictField(v))
	case errs.ForeignKeyViolation:
		if len(refs) == 0 {
			return errs.NewConflictError(fmt.Sprintf("%s is still referenced by other records", kind))
		}
		if s.inTx {
			return &unresolvedReference{kind: kind, refs: refs, cause: err}
		}
		return s.resolveReference(ctx, &unresolvedReference{kind: kind, refs: refs, cause: err})
	case errs.CheckViolation:
		return errs.NewBadRequestError(fmt.Sprintf("%s has a value out of range", kind))
	}
	return fmt.Errorf("%s: %w", kind, err)
}

func (s *Store) resolveReference(ctx context.Context, pending *unresolvedReference) error {
	for _, ref := range pending.refs {
		ok, err := s.Exists(ctx, ref.Kind, ref.Key)
		if err != nil {
			return err
		}
		if !ok {
			return errs.NewNotFound(string(ref.Kind))
		}
	}
	// the missing row came back before it could be probed
	return errs.NewConflictError(fmt.Sprintf("%s references a row that changed concurrently", pending.kind))
}

func conflictField(v errs.Violation) string {
	if len(v.Columns) > 0 {
		return strings.Join(v.Columns, ", ")
	}
	return constraintFields[v.Constraint]
}
