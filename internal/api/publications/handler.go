// Package publications serves the releases of video games on platforms.
package publications

import (
	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/errs"
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

// Create answers 404 naming the platform or video game when either is missing, and 409
// when the pair is already published.
func (h *Handler) Create(c *gin.Context) {
	var in CreateRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	p := in.Publication(in.VideoGameID)
	if err := h.store.CreatePublication(c.Request.Context(), p); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.Created(c, p)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	p, err := h.store.Publication(c.Request.Context(), id)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, p)
}

func (h *Handler) List(c *gin.Context) {
	var f store.PublicationFilter
	if err := request.Query(c, &f); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	list, err := h.store.Publications(c.Request.Context(), f)
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

	current, err := h.store.Publication(ctx, id)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	code, gameID := current.PlatformCode, current.VideoGameID
	if in.PlatformCode != nil {
		code = *in.PlatformCode
	}
	if in.VideoGameID != nil {
		gameID = *in.VideoGameID
	}
	if code != current.PlatformCode || gameID != current.VideoGameID {
		taken, err := h.store.Exists(ctx, store.KindPublication, store.Key{"platform_code": code, "video_game_id": gameID})
		if err != nil {
			h.respond.WriteError(c, err)
			return
		}
		if taken {
			h.respond.WriteError(c, errs.NewAlreadyExists(string(store.KindPublication), "platform_code, video_game_id"))
			return
		}
	}

	refs := []store.Ref{
		{Kind: store.KindPlatform, Key: store.Key{"code": code}},
		{Kind: store.KindVideoGame, Key: store.Key{"id": gameID}},
	}
	if _, err := h.store.Patch(ctx, store.KindPublication, store.Key{"id": id}, validate.Changes(&in, present), refs...); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	p, err := h.store.Publication(ctx, id)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, p)
}

// Delete removes the publication and every game that owns it.
func (h *Handler) Delete(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	if _, err := h.store.Delete(c.Request.Context(), store.KindPublication, store.Key{"id": id}); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.NoContent(c)
}
