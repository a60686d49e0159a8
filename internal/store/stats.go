package store

import (
	"context"

	"videogame-catalog/internal/domain/catalog"
	"videogame-catalog/internal/domain/library"
	"videogame-catalog/internal/domain/users"
)

type Stats struct {
	Users            int64            `json:"users"`
	Admins           int64            `json:"admins"`
	VideoGames       int64            `json:"video_games"`
	Platforms        int64            `json:"platforms"`
	Publications     int64            `json:"publications"`
	Genres           int64            `json:"genres"`
	Games            int64            `json:"games"`
	OwnedGames       int64            `json:"owned_games"`
	OwnedPerPlatform map[string]int64 `json:"owned_per_platform"`
}

// Stats counts the catalog and libraries.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	db := s.db.WithContext(ctx)
	var st Stats
	counts := []struct {
		model any
		dst   *int64
		where map[string]any
	}{
		{&users.User{}, &st.Users, nil},
		{&users.User{}, &st.Admins, map[string]any{"is_admin": true}},
		{&catalog.VideoGame{}, &st.VideoGames, nil},
		{&catalog.Platform{}, &st.Platforms, nil},
		{&catalog.Publication{}, &st.Publications, nil},
		{&catalog.Genre{}, &st.Genres, nil},
		{&library.Game{}, &st.Games, nil},
		{&library.Game{}, &st.OwnedGames, map[string]any{"is_owned": true}},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != nil {
			q = q.Where(c.where)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return Stats{}, err
		}
	}

	var rows []struct {
		PlatformCode string
		Count        int64
	}
	err := db.Table("games").
		Select("publications.platform_code AS platform_code, COUNT(*) AS count").
		Joins("JOIN publications ON publications.id = games.publication_id").
		Where("games.is_owned = ?", true).
		Group("publications.platform_code").
		Scan(&rows).Error
	if err != nil {
		return Stats{}, err
	}
	st.OwnedPerPlatform = make(map[string]int64, len(rows))
	for _, r := range rows {
		st.OwnedPerPlatform[r.PlatformCode] = r.Count
	}
	return st, nil
}
