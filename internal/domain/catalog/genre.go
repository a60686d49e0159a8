package catalog

import "time"

type Genre struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(128);not null;uniqueIndex:idx_genres_name" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	PictureURL  *string `gorm:"column:picture_url;type:varchar(2048)" json:"picture_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category links a video game to a genre. The pair is the primary key.
type Category struct {
	GenreID     uint `gorm:"primaryKey;autoIncrement:false" json:"genre_id"`
	VideoGameID uint `gorm:"primaryKey;autoIncrement:false;index" json:"video_game_id"`

	Genre     *Genre     `gorm:"constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	VideoGame *VideoGame `gorm:"constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
