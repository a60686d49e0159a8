package games

import (
	"strings"

	"videogame-catalog/internal/domain/calendar"
	"videogame-catalog/internal/validate"
)

// Review is the ownership flag and review carried by a new game.
type Review struct {
	IsOwned       *validate.Flag `json:"is_owned"`
	ReviewRating  *int           `json:"review_rating" validate:"omitempty,min=0,max=5"`
	ReviewComment *string        `json:"review_comment" validate:"omitempty,max=5000"`
	ReviewDate    *calendar.Date `json:"review_date" validate:"omitempty,notfuture"`
}

func (r *Review) Normalize() {
	if r.ReviewComment != nil {
		s := strings.TrimSpace(*r.ReviewComment)
		r.ReviewComment = &s
	}
}

// CreateOwnRequest adds a publication to the caller's library.
type CreateOwnRequest struct {
	PublicationID uint `json:"publication_id" validate:"required"`
	Review
}

// CreateRequest is the admin form, naming the user explicitly.
type CreateRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	CreateOwnRequest
}

type UpdateRequest struct {
	IsOwned       *validate.Flag `json:"is_owned"`
	ReviewRating  *int           `json:"review_rating" nullable:"true" validate:"omitempty,min=0,max=5"`
	ReviewComment *string        `json:"review_comment" nullable:"true" validate:"omitempty,max=5000"`
	ReviewDate    *calendar.Date `json:"review_date" nullable:"true" validate:"omitempty,notfuture"`
}

func (r *UpdateRequest) Normalize() {
	if r.ReviewComment != nil {
		s := strings.TrimSpace(*r.ReviewComment)
		r.ReviewComment = &s
	}
}
