// Package genres serves the genre list that video games are categorised under.
package genres

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

func (h *Handler) Create(c *gin.Context) {
	var in CreateRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	g := catalog.Genre{Name: in.Name, Description: in.Description, PictureURL: in.PictureURL}
	if err := h.store.CreateGenre(c.Request.Context(), &g); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.Created(c, g)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	g, err := h.store.Genre(c.Request.Context(), id)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, g)
}

func (h *Handler) List(c *gin.Context) {
	var f store.GenreFilter
	if err := request.Query(c, &f); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	list, err := h.store.Genres(c.Request.Context(), f)
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
	if _, err := h.store.Patch(ctx, store.KindGenre, store.Key{"id": id}, validate.Changes(&in, present)); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	g, err := h.store.Genre(ctx, id)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, g)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	if _, err := h.store.Delete(c.Request.Context(), store.KindGenre, store.Key{"id": id}); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.NoContent(c)
}
