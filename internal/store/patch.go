package store

import (
	"context"

	"videogame-catalog/internal/errs"
)

// Patch writes only the given columns of the row of kind at key. refs name the rows
// the new values point at, for reporting a missing one.
func (s *Store) Patch(ctx context.Context, kind Kind, key Key, fields map[string]any, refs ...Ref) (int64, error) {
	if len(fields) == 0 {
		return 0, errs.NewValidationError(errs.FieldError{Field: "body", Reason: "at least one field must be provided"})
	}
	res := s.db.WithContext(ctx).
		Model(lookup(kind).model()).
		Where(map[string]any(key)).
		Updates(fields)
	if res.Error != nil {
		return 0, s.translate(ctx, kind, res.Error, refs)
	}
	if res.RowsAffected == 0 {
		return 0, errs.NewNotFound(string(kind))
	}
	return res.RowsAffected, nil
}
