package store

import (
	"context"

	"gorm.io/gorm"

	"videogame-catalog/internal/domain/library"
)

type GameFilter struct {
	Page
	UserID        *uint `query:"userId"`
	PublicationID *uint `query:"publicationId"`
	IsOwned       *bool `query:"isOwned"`
}

func GameKey(userID, publicationID uint) Key {
	return Key{"user_id": userID, "publication_id": publicationID}
}

func (s *Store) CreateGame(ctx context.Context, g *library.Game) error {
	refs := []Ref{
		{KindUser, Key{"id": g.UserID}},
		{KindPublication, Key{"id": g.PublicationID}},
	}
	return s.translate(ctx, KindGame, s.db.WithContext(ctx).Create(g).Error, refs)
}

func (s *Store) Game(ctx context.Context, userID, publicationID uint) (library.Game, error) {
	var g library.Game
	err := s.db.WithContext(ctx).Where(map[string]any(GameKey(userID, publicationID))).First(&g).Error
	return g, s.translate(ctx, KindGame, err, nil)
}

func (s *Store) Games(ctx context.Context, f GameFilter) (List[library.Game], error) {
	return paginate[library.Game](ctx, s, KindGame, f.Page, "user_id, publication_id", func(db *gorm.DB) *gorm.DB {
		if f.UserID != nil {
			db = db.Where("user_id = ?", *f.UserID)
		}
		if f.PublicationID != nil {
			db = db.Where("publication_id = ?", *f.PublicationID)
		}
		if f.IsOwned != nil {
			db = db.Where("is_owned = ?", *f.IsOwned)
		}
		return db
	})
}
