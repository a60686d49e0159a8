// Package videogames serves the video game catalog.
package videogames

import (
	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/domain/catalog"
	"videogame-catalog/internal/store"
	"videogame-catalog/internal/validate"
)

type Handler struct {
	store   *store.Store
	respond respond.Responder
}

func NewHandler(st *store.Store, r respond.Responder) *Handler {
	return &Handler{store: st, respond: r}
}

// Create writes the game, and the nested platform and publication when given, in one
// transaction.
func (h *Handler) Create(c *gin.Context) {
	var in CreateRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}

	rel := store.Release{VideoGame: &catalog.VideoGame{Name: in.Name, Description: in.Description}}
	if in.Platform != nil {
		rel.Platform = in.Platform.Platform()
	}
	if in.Publication != nil {
		rel.Publication = in.Publication.Publication(0)
	}
	if err := h.store.CreateRelease(c.Request.Context(), rel); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.Created(c, Response{VideoGame: *rel.VideoGame, Platform: rel.Platform, Publication: rel.Publication})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	g, err := h.store.VideoGame(c.Request.Context(), id)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, g)
}

func (h *Handler) List(c *gin.Context) {
	var f store.VideoGameFilter
	if err := request.Query(c, &f); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	list, err := h.store.VideoGames(c.Request.Context(), f)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, list)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	var in UpdateRequest
	present, err := request.DecodePatch(c, &in)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	if _, err := h.store.Patch(ctx, store.KindVideoGame, store.Key{"id": id}, validate.Changes(&in, present)); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	g, err := h.store.VideoGame(ctx, id)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, g)
}

// Delete removes the game with its publications, their games and its categories.
func (h *Handler) Delete(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	if _, err := h.store.Delete(c.Request.Context(), store.KindVideoGame, store.Key{"id": id}); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.NoContent(c)
}
