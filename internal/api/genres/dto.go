package genres

import "strings"

type CreateRequest struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Description string  `json:"description" validate:"required,max=2000"`
	PictureURL  *string `json:"picture_url" validate:"omitempty,url,max=2048"`
}

func (r *CreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

type UpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=128"`
	Description *string `json:"description" validate:"omitempty,min=1,max=2000"`
	PictureURL  *string `json:"picture_url" nullable:"true" validate:"omitempty,url,max=2048"`
}

func (r *UpdateRequest) Normalize() {
	for _, s := range []*string{r.Name, r.Description} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}
