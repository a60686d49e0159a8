package platforms

import (
	"strings"

	"videogame-catalog/internal/domain/catalog"
)

type CreateRequest struct {
	Code         string  `json:"code" validate:"required,platformcode"`
	Description  string  `json:"description" validate:"required,max=2000"`
	Abbreviation *string `json:"abbreviation" validate:"omitempty,max=16"`
}

func (r *CreateRequest) Normalize() {
	r.Code = catalog.NormalizeCode(r.Code)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateRequest) Platform() *catalog.Platform {
	return &catalog.Platform{Code: r.Code, Description: r.Description, Abbreviation: r.Abbreviation}
}

type UpdateRequest struct {
	Code         *string `json:"code" validate:"omitempty,platformcode"`
	Description  *string `json:"description" validate:"omitempty,min=1,max=2000"`
	Abbreviation *string `json:"abbreviation" nullable:"true" validate:"omitempty,max=16"`
}

func (r *UpdateRequest) Normalize() {
	if r.Code != nil {
		code := catalog.NormalizeCode(*r.Code)
		r.Code = &code
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}
