package store

import "context"

// Exists reports whether a row of kind matches key, without loading it.
func (s *Store) Exists(ctx context.Context, kind Kind, key Key) (bool, error) {
	var found []int
	err := s.db.WithContext(ctx).
		Model(lookup(kind).model()).
		Select("1").
		Where(map[string]any(key)).
		Limit(1).
		Scan(&found).Error
	if err != nil {
		return false, s.translate(ctx, kind, err, nil)
	}
	return len(found) > 0, nil
}
