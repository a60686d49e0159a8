package users

import (
	"videogame-catalog/internal/domain/access"
	"videogame-catalog/internal/domain/users"
)

type MeResponse struct {
	users.User
	Access AccessDTO `json:"access"`
}

type AccessDTO struct {
	Role         access.Role `json:"role"`
	Capabilities []string    `json:"capabilities"`
}

func buildMe(u users.User) MeResponse {
	id := access.Identity{UserID: u.ID, IsAdmin: u.IsAdmin}
	return MeResponse{
		User: u,
		Access: AccessDTO{
			Role:         id.Role(),
			Capabilities: access.CapabilitiesFor(id),
		},
	}
}
