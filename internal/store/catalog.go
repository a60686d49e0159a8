package store

import (
	"context"

	"gorm.io/gorm"

	"videogame-catalog/internal/domain/catalog"
)

type VideoGameFilter struct {
	Page
	Name *string `query:"name"`
}

type PlatformFilter struct {
	Page
}

type PublicationFilter struct {
	Page
	VideoGameID  *uint   `query:"videoGameId"`
	PlatformCode *string `query:"platformCode"`
}

func (f *PublicationFilter) Normalize() {
	if f.PlatformCode != nil {
		code := catalog.NormalizeCode(*f.PlatformCode)
		f.PlatformCode = &code
	}
}

type GenreFilter struct {
	Page
	Name *string `query:"name"`
}

type CategoryFilter struct {
	Page
	GenreID     *uint `query:"genreId"`
	VideoGameID *uint `query:"videoGameId"`
}

// Release is a video game created together with an optional new platform and an
// optional publication of the game.
type Release struct {
	VideoGame   *catalog.VideoGame
	Platform    *catalog.Platform
	Publication *catalog.Publication
}

func (s *Store) CreateVideoGame(ctx context.Context, g *catalog.VideoGame) error {
	return s.translate(ctx, KindVideoGame, s.db.WithContext(ctx).Create(g).Error, nil)
}

// CreateRelease writes a release atomically. The publication, if any, is linked to
// the new video game.
func (s *Store) CreateRelease(ctx context.Context, r Release) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if r.Platform != nil {
			if err := tx.CreatePlatform(ctx, r.Platform); err != nil {
				return err
			}
		}
		if err := tx.CreateVideoGame(ctx, r.VideoGame); err != nil {
			return err
		}
		if r.Publication != nil {
			r.Publication.VideoGameID = r.VideoGame.ID
			if err := tx.CreatePublication(ctx, r.Publication); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) VideoGame(ctx context.Context, id uint) (catalog.VideoGame, error) {
	var g catalog.VideoGame
	err := s.db.WithContext(ctx).First(&g, "id = ?", id).Error
	return g, s.translate(ctx, KindVideoGame, err, nil)
}

func (s *Store) VideoGames(ctx context.Context, f VideoGameFilter) (List[catalog.VideoGame], error) {
	return paginate[catalog.VideoGame](ctx, s, KindVideoGame, f.Page, "id", func(db *gorm.DB) *gorm.DB {
		if f.Name != nil && *f.Name != "" {
			db = nameContains(db, "name", *f.Name)
		}
		return db
	})
}

func (s *Store) CreatePlatform(ctx context.Context, p *catalog.Platform) error {
	p.Code = catalog.NormalizeCode(p.Code)
	return s.translate(ctx, KindPlatform, s.db.WithContext(ctx).Create(p).Error, nil)
}

func (s *Store) Platform(ctx context.Context, code string) (catalog.Platform, error) {
	var p catalog.Platform
	err := s.db.WithContext(ctx).First(&p, "code = ?", catalog.NormalizeCode(code)).Error
	return p, s.translate(ctx, KindPlatform, err, nil)
}

func (s *Store) Platforms(ctx context.Context, f PlatformFilter) (List[catalog.Platform], error) {
	return paginate[catalog.Platform](ctx, s, KindPlatform, f.Page, "code", func(db *gorm.DB) *gorm.DB { return db })
}

func (s *Store) CreatePublication(ctx context.Context, p *catalog.Publication) error {
	p.PlatformCode = catalog.NormalizeCode(p.PlatformCode)
	refs := []Ref{
		{KindPlatform, Key{"code": p.PlatformCode}},
		{KindVideoGame, Key{"id": p.VideoGameID}},
	}
	return s.translate(ctx, KindPublication, s.db.WithContext(ctx).Create(p).Error, refs)
}

func (s *Store) Publication(ctx context.Context, id uint) (catalog.Publication, error) {
	var p catalog.Publication
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, s.translate(ctx, KindPublication, err, nil)
}

func (s *Store) Publications(ctx context.Context, f PublicationFilter) (List[catalog.Publication], error) {
	return paginate[catalog.Publication](ctx, s, KindPublication, f.Page, "id", func(db *gorm.DB) *gorm.DB {
		if f.VideoGameID != nil {
			db = db.Where("video_game_id = ?", *f.VideoGameID)
		}
		if f.PlatformCode != nil && *f.PlatformCode != "" {
			db = db.Where("platform_code = ?", *f.PlatformCode)
		}
		return db
	})
}

func (s *Store) CreateGenre(ctx context.Context, g *catalog.Genre) error {
	return s.translate(ctx, KindGenre, s.db.WithContext(ctx).Create(g).Error, nil)
}

func (s *Store) Genre(ctx context.Context, id uint) (catalog.Genre, error) {
	var g catalog.Genre
	err := s.db.WithContext(ctx).First(&g, "id = ?", id).Error
	return g, s.translate(ctx, KindGenre, err, nil)
}

func (s *Store) Genres(ctx context.Context, f GenreFilter) (List[catalog.Genre], error) {
	return paginate[catalog.Genre](ctx, s, KindGenre, f.Page, "id", func(db *gorm.DB) *gorm.DB {
		if f.Name != nil && *f.Name != "" {
			db = nameContains(db, "name", *f.Name)
		}
		return db
	})
}

func (s *Store) CreateCategory(ctx context.Context, c *catalog.Category) error {
	refs := []Ref{
		{KindGenre, Key{"id": c.GenreID}},
		{KindVideoGame, Key{"id": c.VideoGameID}},
	}
	return s.translate(ctx, KindCategory, s.db.WithContext(ctx).Create(c).Error, refs)
}

func (s *Store) Category(ctx context.Context, genreID, videoGameID uint) (catalog.Category, error) {
	var c catalog.Category
	err := s.db.WithContext(ctx).First(&c, "genre_id = ? AND video_game_id = ?", genreID, videoGameID).Error
	return c, s.translate(ctx, KindCategory, err, nil)
}

func (s *Store) Categories(ctx context.Context, f CategoryFilter) (List[catalog.Category], error) {
	return paginate[catalog.Category](ctx, s, KindCategory, f.Page, "genre_id, video_game_id", func(db *gorm.DB) *gorm.DB {
		if f.GenreID != nil {
			db = db.Where("genre_id = ?", *f.GenreID)
		}
		if f.VideoGameID != nil {
			db = db.Where("video_game_id = ?", *f.VideoGameID)
		}
		return db
	})
}
