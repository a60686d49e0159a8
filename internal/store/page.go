package store

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is the page/limit pair accepted by every list endpoint. Zero values mean the
// defaults.
type Page struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (p Page) Number() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

func (p Page) Size() int {
	switch {
	case p.Limit < 1:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	}
	return p.Limit
}

func (p Page) Offset() int {
	return (p.Number() - 1) * p.Size()
}

type List[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// paginate counts and fetches one page of T. filter is applied to both queries.
func paginate[T any](ctx context.Context, s *Store, kind Kind, p Page, order string, filter func(*gorm.DB) *gorm.DB) (List[T], error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(new(T)).Scopes(filter).Count(&total).Error; err != nil {
		return List[T]{}, s.translate(ctx, kind, err, nil)
	}

	items := make([]T, 0, p.Size())
	err := s.db.WithContext(ctx).
		Scopes(filter).
		Order(order).
		Offset(p.Offset()).
		Limit(p.Size()).
		Find(&items).Error
	if err != nil {
		return List[T]{}, s.translate(ctx, kind, err, nil)
	}
	return List[T]{Items: items, Page: p.Number(), Limit: p.Size(), Total: total}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// nameContains matches column case-insensitively against a substring.
func nameContains(db *gorm.DB, column, needle string) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(needle)) + "%"
	return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
}
