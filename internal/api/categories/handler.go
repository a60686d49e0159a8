// Package categories links video games to genres.
package categories

import (
	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/domain/catalog"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/store"
	"videogame-catalog/internal/validate"
)

type CreateRequest struct {
	GenreID     uint `json:"genre_id" validate:"required"`
	VideoGameID uint `json:"video_game_id" validate:"required"`
}

type UpdateRequest struct {
	GenreID     *uint `json:"genre_id" validate:"omitempty,gt=0"`
	VideoGameID *uint `json:"video_game_id" validate:"omitempty,gt=0"`
}

type Handler struct {
	store   *store.Store
	respond respond.Responder
}

func NewHandler(st *store.Store, r respond.Responder) *Handler {
	return &Handler{store: st, respond: r}
}

func pathKey(c *gin.Context) (genreID, videoGameID uint, err error) {
	if genreID, err = request.PathID(c, "genreId"); err != nil {
		return 0, 0, err
	}
	if videoGameID, err = request.PathID(c, "videoGameId"); err != nil {
		return 0, 0, err
	}
	return genreID, videoGameID, nil
}

func key(genreID, videoGameID uint) store.Key {
	return store.Key{"genre_id": genreID, "video_game_id": videoGameID}
}

func (h *Handler) Create(c *gin.Context) {
	var in CreateRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	cat := catalog.Category{GenreID: in.GenreID, VideoGameID: in.VideoGameID}
	if err := h.store.CreateCategory(c.Request.Context(), &cat); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.Created(c, cat)
}

func (h *Handler) List(c *gin.Context) {
	var f store.CategoryFilter
	if err := request.Query(c, &f); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	list, err := h.store.Categories(c.Request.Context(), f)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, list)
}

// Update moves the link to another genre or video game.
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	genreID, videoGameID, err := pathKey(c)
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

	nextGenre, nextGame := genreID, videoGameID
	if in.GenreID != nil {
		nextGenre = *in.GenreID
	}
	if in.VideoGameID != nil {
		nextGame = *in.VideoGameID
	}
	if nextGenre != genreID || nextGame != videoGameID {
		taken, err := h.store.Exists(ctx, store.KindCategory, key(nextGenre, nextGame))
		if err != nil {
			h.respond.WriteError(c, err)
			return
		}
		if taken {
			h.respond.WriteError(c, errs.NewAlreadyExists(string(store.KindCategory), "genre_id, video_game_id"))
			return
		}
	}

	refs := []store.Ref{
		{Kind: store.KindGenre, Key: store.Key{"id": nextGenre}},
		{Kind: store.KindVideoGame, Key: store.Key{"id": nextGame}},
	}
	if _, err := h.store.Patch(ctx, store.KindCategory, key(genreID, videoGameID), validate.Changes(&in, present), refs...); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	cat, err := h.store.Category(ctx, nextGenre, nextGame)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, cat)
}

func (h *Handler) Delete(c *gin.Context) {
	genreID, videoGameID, err := pathKey(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	if _, err := h.store.Delete(c.Request.Context(), store.KindCategory, key(genreID, videoGameID)); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.NoContent(c)
}
