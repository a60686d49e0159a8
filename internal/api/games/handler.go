// Package games serves users' libraries: which publications they own and how they
// reviewed them.
package games

import (
	"time"

	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/domain/calendar"
	"videogame-catalog/internal/domain/library"
	"videogame-catalog/internal/store"
	"videogame-catalog/internal/validate"
)

type Handler struct {
	store   *store.Store
	respond respond.Responder
	now     func() time.Time
}

func NewHandler(st *store.Store, r respond.Responder) *Handler {
	return &Handler{store: st, respond: r, now: time.Now}
}

func (h *Handler) ListMine(c *gin.Context) {
	id, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	var f store.GameFilter
	if err := request.Query(c, &f); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	f.UserID = &id.UserID
	h.list(c, f)
}

func (h *Handler) List(c *gin.Context) {
	var f store.GameFilter
	if err := request.Query(c, &f); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.list(c, f)
}

func (h *Handler) list(c *gin.Context, f store.GameFilter) {
	list, err := h.store.Games(c.Request.Context(), f)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, list)
}

func (h *Handler) Get(c *gin.Context) {
	userID, err := request.PathID(c, "userId")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	publicationID, err := request.PathID(c, "publicationId")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	g, err := h.store.Game(c.Request.Context(), userID, publicationID)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, g)
}

func (h *Handler) CreateMine(c *gin.Context) {
	id, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	var in CreateOwnRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.create(c, id.UserID, in)
}

func (h *Handler) Create(c *gin.Context) {
	var in CreateRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.create(c, in.UserID, in.CreateOwnRequest)
}

// create answers 409 when the pair is already in the library and 404 naming the user or
// publication when either is missing. A review without a date is dated today.
func (h *Handler) create(c *gin.Context, userID uint, in CreateOwnRequest) {
	g := library.Game{
		UserID:        userID,
		PublicationID: in.PublicationID,
		IsOwned:       in.IsOwned.Bool(),
		ReviewRating:  in.ReviewRating,
		ReviewComment: in.ReviewComment,
		ReviewDate:    in.ReviewDate,
	}
	if g.ReviewDate == nil && (g.ReviewRating != nil || g.ReviewComment != nil) {
		today := calendar.Today(h.now())
		g.ReviewDate = &today
	}
	if err := h.store.CreateGame(c.Request.Context(), &g); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.Created(c, g)
}

func (h *Handler) UpdateMine(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	publicationID, err := request.PathID(c, "publicationId")
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

	changes := validate.Changes(&in, present)
	if _, dated := changes["review_date"]; !dated && (changes["review_rating"] != nil || changes["review_comment"] != nil) {
		changes["review_date"] = calendar.Today(h.now())
	}
	key := store.GameKey(id.UserID, publicationID)
	if _, err := h.store.Patch(ctx, store.KindGame, key, changes); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	g, err := h.store.Game(ctx, id.UserID, publicationID)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, g)
}

func (h *Handler) DeleteMine(c *gin.Context) {
	id, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	publicationID, err := request.PathID(c, "publicationId")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.remove(c, id.UserID, publicationID)
}

func (h *Handler) Delete(c *gin.Context) {
	userID, err := request.PathID(c, "userId")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	publicationID, err := request.PathID(c, "publicationId")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.remove(c, userID, publicationID)
}

func (h *Handler) remove(c *gin.Context, userID, publicationID uint) {
	if _, err := h.store.Delete(c.Request.Context(), store.KindGame, store.GameKey(userID, publicationID)); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.NoContent(c)
}
