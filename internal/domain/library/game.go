// Package library holds per-user ownership and review records.
package library

import (
	"time"

	"videogame-catalog/internal/domain/calendar"
	"videogame-catalog/internal/domain/catalog"
	"videogame-catalog/internal/domain/users"
)

const (
	MinRating = 0
	MaxRating = 5
)

// Game is a user's record for one publication: whether they own it and their review.
type Game struct {
	UserID        uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PublicationID uint `gorm:"primaryKey;autoIncrement:false;index" json:"publication_id"`
	IsOwned       bool `gorm:"not null" json:"is_owned"`

	ReviewRating  *int           `gorm:"check:chk_games_review_rating,review_rating BETWEEN 0 AND 5" json:"review_rating"`
	ReviewComment *string        `gorm:"type:text" json:"review_comment"`
	ReviewDate    *calendar.Date `json:"review_date"`

	User        *users.User          `gorm:"constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Publication *catalog.Publication `gorm:"constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
