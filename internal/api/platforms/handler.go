// Package platforms serves the platform catalog. Platforms are addressed by their
// uppercased code.
package platforms

import (
	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/domain/catalog"
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

func pathCode(c *gin.Context) (string, error) {
	code := catalog.NormalizeCode(c.Param("code"))
	if !catalog.ValidCode(code) {
		return "", errs.NewBadRequestError("code must be 1 to 16 letters, digits, '-' or '_'")
	}
	return code, nil
}

func (h *Handler) Create(c *gin.Context) {
	var in CreateRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	p := in.Platform()
	if err := h.store.CreatePlatform(c.Request.Context(), p); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.Created(c, p)
}

func (h *Handler) Get(c *gin.Context) {
	code, err := pathCode(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	p, err := h.store.Platform(c.Request.Context(), code)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, p)
}

func (h *Handler) List(c *gin.Context) {
	var f store.PlatformFilter
	if err := request.Query(c, &f); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	list, err := h.store.Platforms(c.Request.Context(), f)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, list)
}

// Update may rename the code; publications follow the rename.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	code, err := pathCode(c)
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

	next := code
	if in.Code != nil && *in.Code != code {
		next = *in.Code
		taken, err := h.store.Exists(ctx, store.KindPlatform, store.Key{"code": next})
		if err != nil {
			h.respond.WriteError(c, err)
			return
		}
		if taken {
			h.respond.WriteError(c, errs.NewAlreadyExists(string(store.KindPlatform), "code"))
			return
		}
	}

	if _, err := h.store.Patch(ctx, store.KindPlatform, store.Key{"code": code}, validate.Changes(&in, present)); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	p, err := h.store.Platform(ctx, next)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, p)
}

// Delete removes the platform with its publications and the games owning them.
func (h *Handler) Delete(c *gin.Context) {
	code, err := pathCode(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	if _, err := h.store.Delete(c.Request.Context(), store.KindPlatform, store.Key{"code": code}); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.NoContent(c)
}
