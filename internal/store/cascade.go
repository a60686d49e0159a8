package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"videogame-catalog/internal/errs"
)

// Delete removes the row of kind at key together with every row that depends on it,
// children first, in one transaction. It returns the number of parent rows removed.
func (s *Store) Delete(ctx context.Context, kind Kind, key Key) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.deleteTree(tx, kind, key)
		if err != nil {
			return err
		}
		if n == 0 {
			return errs.NewNotFound(string(kind))
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, s.translate(ctx, kind, err, nil)
	}
	s.logger.Info().Str("kind", string(kind)).Interface("key", key).Msg("deleted")
	return removed, nil
}

func (s *Store) deleteTree(tx *gorm.DB, kind Kind, key Key) (int64, error) {
	e := lookup(kind)
	for _, ed := range e.children {
		parent, ok := key[e.pk[0]]
		if !ok {
			return 0, fmt.Errorf("delete %s: key is missing %s", kind, e.pk[0])
		}
		child := lookup(ed.child)

		if len(child.children) == 0 {
			res := tx.Where(ed.column+" = ?", parent).Delete(child.model())
			if res.Error != nil {
				return 0, res.Error
			}
			s.logger.Debug().Str("kind", string(ed.child)).Str("by", ed.column).Int64("rows", res.RowsAffected).Msg("cascade")
			continue
		}

		var rows []map[string]any
		err := tx.Model(child.model()).
			Select(child.pk).
			Where(ed.column+" = ?", parent).
			Order(child.pk[0]).
			Find(&rows).Error
		if err != nil {
			return 0, err
		}
		for _, row := range rows {
			childKey := Key(row)
			if _, err := s.deleteTree(tx, ed.child, childKey); err != nil {
				return 0, err
			}
			if s.step != nil {
				if err := s.step(ed.child, childKey); err != nil {
					return 0, err
				}
			}
		}
	}

	res := tx.Where(map[string]any(key)).Delete(e.model())
	return res.RowsAffected, res.Error
}
