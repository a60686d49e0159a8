// Package users serves registration, self-service account routes and admin account
// management.
package users

import (
	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/domain/access"
	"videogame-catalog/internal/domain/users"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/security"
	"videogame-catalog/internal/store"
	"videogame-catalog/internal/validate"
)

type Handler struct {
	store   *store.Store
	hasher  security.Hasher
	respond respond.Responder
}

func NewHandler(st *store.Store, hasher security.Hasher, r respond.Responder) *Handler {
	return &Handler{store: st, hasher: hasher, respond: r}
}

// Register creates a regular account. is_admin in the body is ignored.
func (h *Handler) Register(c *gin.Context) {
	var in RegisterRequest
	if _, err := request.DecodeJSON(c, &in); err != nil {
		h.respond.WriteError(c, err)
		return
	}

	hashed, err := h.hasher.Hash(in.Password)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	u := users.User{
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: hashed,
		Firstname:      in.Firstname,
		Lastname:       in.Lastname,
	}
	if err := h.store.CreateUser(c.Request.Context(), &u); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.Created(c, u)
}

func (h *Handler) Me(c *gin.Context) {
	id, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	u, err := h.store.User(c.Request.Context(), id.UserID)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, buildMe(u))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	u, err := h.store.User(c.Request.Context(), id)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, u)
}

func (h *Handler) List(c *gin.Context) {
	var f store.UserFilter
	if err := request.Query(c, &f); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	list, err := h.store.Users(c.Request.Context(), f)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, list)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	actor, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	var in UpdateMeRequest
	present, err := request.DecodePatch(c, &in)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.update(c, actor, actor.UserID, validate.Changes(&in, present))
}

func (h *Handler) Update(c *gin.Context) {
	actor, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	target, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	var in AdminUpdateRequest
	present, err := request.DecodePatch(c, &in)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.update(c, actor, target, validate.Changes(&in, present))
}

func (h *Handler) update(c *gin.Context, actor access.Identity, target uint, changes map[string]any) {
	ctx := c.Request.Context()
	if err := h.authorize(c, actor, target, access.ActionModify); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	if _, ok := changes["is_admin"]; ok && !access.CanGrantAdmin(actor) {
		h.respond.WriteError(c, errs.NewForbiddenError("only an admin may change is_admin"))
		return
	}
	if pw, ok := changes["password"]; ok {
		delete(changes, "password")
		hashed, err := h.hasher.Hash(pw.(string))
		if err != nil {
			h.respond.WriteError(c, err)
			return
		}
		changes["hashed_password"] = hashed
	}

	if _, err := h.store.Patch(ctx, store.KindUser, store.Key{"id": target}, changes); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	u, err := h.store.User(ctx, target)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.OK(c, u)
}

func (h *Handler) DeleteMe(c *gin.Context) {
	actor, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.remove(c, actor, actor.UserID)
}

func (h *Handler) Delete(c *gin.Context) {
	actor, err := request.MustIdentity(c)
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	target, err := request.PathID(c, "id")
	if err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.remove(c, actor, target)
}

// remove deletes the account and its library.
func (h *Handler) remove(c *gin.Context, actor access.Identity, target uint) {
	if err := h.authorize(c, actor, target, access.ActionDelete); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	if _, err := h.store.Delete(c.Request.Context(), store.KindUser, store.Key{"id": target}); err != nil {
		h.respond.WriteError(c, err)
		return
	}
	h.respond.NoContent(c)
}

func (h *Handler) authorize(c *gin.Context, actor access.Identity, target uint, action access.Action) error {
	targetIsAdmin, err := h.store.IsAdmin(c.Request.Context(), target)
	if err != nil {
		return err
	}
	d := access.DecideAccount(actor, access.Account{UserID: target, IsAdmin: targetIsAdmin}, action)
	if !d.Allowed {
		return errs.NewForbiddenError(d.Reason)
	}
	return nil
}
