package publications

import (
	"videogame-catalog/internal/domain/calendar"
	"videogame-catalog/internal/domain/catalog"
)

// Release is a publication's platform and commercial details, without the video game
// it belongs to.
type Release struct {
	PlatformCode string        `json:"platform_code" validate:"required,platformcode"`
	ReleaseDate  calendar.Date `json:"release_date" validate:"required"`
	ReleasePrice *float64      `json:"release_price" validate:"omitempty,gte=0"`
	StorePageURL *string       `json:"store_page_url" validate:"omitempty,url,max=2048"`
}

func (r *Release) Normalize() {
	r.PlatformCode = catalog.NormalizeCode(r.PlatformCode)
}

func (r *Release) Publication(videoGameID uint) *catalog.Publication {
	return &catalog.Publication{
		PlatformCode: r.PlatformCode,
		VideoGameID:  videoGameID,
		ReleaseDate:  r.ReleaseDate,
		ReleasePrice: r.ReleasePrice,
		StorePageURL: r.StorePageURL,
	}
}

type CreateRequest struct {
	VideoGameID uint `json:"video_game_id" validate:"required"`
	Release
}

type UpdateRequest struct {
	PlatformCode *string        `json:"platform_code" validate:"omitempty,platformcode"`
	VideoGameID  *uint          `json:"video_game_id" validate:"omitempty,gt=0"`
	ReleaseDate  *calendar.Date `json:"release_date"`
	ReleasePrice *float64       `json:"release_price" nullable:"true" validate:"omitempty,gte=0"`
	StorePageURL *string        `json:"store_page_url" nullable:"true" validate:"omitempty,url,max=2048"`
}

func (r *UpdateRequest) Normalize() {
	if r.PlatformCode != nil {
		code := catalog.NormalizeCode(*r.PlatformCode)
		r.PlatformCode = &code
	}
}
