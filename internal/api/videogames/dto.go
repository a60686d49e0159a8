package videogames

import (
	"strings"

	"videogame-catalog/internal/api/platforms"
	"videogame-catalog/internal/api/publications"
	"videogame-catalog/internal/domain/catalog"
)

// CreateRequest may carry a new platform and a first publication, created together with
// the game.
type CreateRequest struct {
	Name        string                   `json:"name" validate:"required,max=255"`
	Description string                   `json:"description" validate:"required,max=5000"`
	Platform    *platforms.CreateRequest `json:"platform"`
	Publication *publications.Release    `json:"publication"`
}

func (r *CreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

type UpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1,max=5000"`
}

func (r *UpdateRequest) Normalize() {
	for _, s := range []*string{r.Name, r.Description} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

type Response struct {
	catalog.VideoGame
	Platform    *catalog.Platform    `json:"platform,omitempty"`
	Publication *catalog.Publication `json:"publication,omitempty"`
}
