// Package auth exchanges credentials for bearer tokens.
package auth

import (
	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/domain/access"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/security"
	"videogame-catalog/internal/store"
)

type Handler struct {
	store   *store.Store
	tokens  *security.Tokens
	hasher  security.Hasher
	respond respond.Responder
}

func NewHandler(st *store.Store, tokens *security.Tokens, hasher security.Hasher, r respond.Responder) *Handler {
	return &Handler{store: st, tokens: tokens, hasher: hasher, respond: r}
}

// Login answers every credential mismatch with the same 401, whether the account is
// unknown or the password is wrong.
func (h *Handler) Login(c *gin.Context) {
	var in LoginRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}

	u, err := h.store.UserByLogin(c.Request.Context(), in.login())
	if err != nil {
		if errs.IsNotFound(err) {
			h.hasher.Matches(h.hasher.Decoy(), in.Password)
			err = errs.NewUnauthorizedError()
		}
		h.respond.WriteError(c, err)
		return
	}
	if !h.hasher.Matches(u.HashedPassword, in.Password) {
		h.respond.WriteError(c, errs.NewUnauthorizedError())
		return
	}

	token, expires, err := h.tokens.Issue(access.Identity{UserID: u.ID, IsAdmin: u.IsAdmin})
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, LoginResponse{Token: token, TokenType: "Bearer", ExpiresAt: expires, User: u})
}
