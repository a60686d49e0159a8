package catalog

import (
	"time"

	"videogame-catalog/internal/domain/calendar"
)

// Publication is one release of a video game on a platform. A game is published at most
// once per platform.
type Publication struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	PlatformCode string        `gorm:"type:varchar(16);not null;uniqueIndex:idx_publications_platform_video_game,priority:1" json:"platform_code"`
	VideoGameID  uint          `gorm:"not null;uniqueIndex:idx_publications_platform_video_game,priority:2;index" json:"video_game_id"`
	ReleaseDate  calendar.Date `gorm:"not null" json:"release_date"`
	ReleasePrice *float64      `json:"release_price"`
	StorePageURL *string       `gorm:"column:store_page_url;type:varchar(2048)" json:"store_page_url"`

	Platform  *Platform  `gorm:"foreignKey:PlatformCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	VideoGame *VideoGame `gorm:"constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
