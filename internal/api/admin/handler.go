// Package admin serves the admin dashboard figures.
package admin

import (
	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/store"
)

type Handler struct {
	store   *store.Store
	respond respond.Responder
}

func NewHandler(st *store.Store, r respond.Responder) *Handler {
	return &Handler{store: st, respond: r}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, stats)
}
