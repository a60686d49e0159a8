package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/domain/access"
	"videogame-catalog/internal/domain/users"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/security"
)

// Accounts reloads the account behind a verified token.
type Accounts interface {
	User(ctx context.Context, id uint) (users.User, error)
}

// Authenticate accepts a Bearer token, then reloads the account so a deleted user is
// rejected and admin rights follow the stored flag rather than the token's.
func Authenticate(tokens *security.Tokens, accounts Accounts, r respond.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			r.WriteError(c, errs.NewUnauthorizedError())
			return
		}

		id, err := tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			r.WriteError(c, errs.NewUnauthorizedError())
			return
		}

		u, err := accounts.User(c.Request.Context(), id.UserID)
		if err != nil {
			if errs.IsNotFound(err) {
				err = errs.NewUnauthorizedError()
			}
			r.WriteError(c, err)
			return
		}
		id.IsAdmin = u.IsAdmin

		request.SetIdentity(c, id)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(r respond.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := request.MustIdentity(c)
		if err != nil {
			r.WriteError(c, err)
			return
		}
		if id.Role() != access.RoleAdmin {
			r.WriteError(c, errs.NewForbiddenError("admin role required"))
			return
		}
		c.Next()
	}
}
