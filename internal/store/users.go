package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"videogame-catalog/internal/domain/users"
)

type UserFilter struct {
	Page
	Username *string `query:"username"`
}

func (s *Store) CreateUser(ctx context.Context, u *users.User) error {
	return s.translate(ctx, KindUser, s.db.WithContext(ctx).Create(u).Error, nil)
}

func (s *Store) User(ctx context.Context, id uint) (users.User, error) {
	var u users.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, s.translate(ctx, KindUser, err, nil)
}

// UserByLogin finds a user by username or email.
func (s *Store) UserByLogin(ctx context.Context, login string) (users.User, error) {
	login = strings.TrimSpace(login)
	var u users.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = ?", login, strings.ToLower(login)).
		First(&u).Error
	return u, s.translate(ctx, KindUser, err, nil)
}

// IsAdmin reports whether the user exists and holds the admin flag.
func (s *Store) IsAdmin(ctx context.Context, id uint) (bool, error) {
	return s.Exists(ctx, KindUser, Key{"id": id, "is_admin": true})
}

func (s *Store) Users(ctx context.Context, f UserFilter) (List[users.User], error) {
	return paginate[users.User](ctx, s, KindUser, f.Page, "id", func(db *gorm.DB) *gorm.DB {
		if f.Username != nil && *f.Username != "" {
			db = nameContains(db, "username", *f.Username)
		}
		return db
	})
}
