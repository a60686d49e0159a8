// Package request reads path parameters, bodies, query strings and the caller's
// identity off a gin context.
package request

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"videogame-catalog/internal/domain/access"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/validate"
)

const (
	identityKey  = "identity"
	maxBodyBytes = 1 << 20
)

func SetIdentity(c *gin.Context, id access.Identity) {
	c.Set(identityKey, id)
}

func Identity(c *gin.Context) (access.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return access.Identity{}, false
	}
	id, ok := v.(access.Identity)
	return id, ok
}

// MustIdentity is for handlers mounted behind authentication.
func MustIdentity(c *gin.Context) (access.Identity, error) {
	id, ok := Identity(c)
	if !ok || id.UserID == 0 {
		return access.Identity{}, errs.NewUnauthorizedError()
	}
	return id, nil
}

// PathID parses a positive integer path parameter.
func PathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError(fmt.Sprintf("%s must be a positive integer", name))
	}
	return uint(id), nil
}

func Body(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errs.NewBadRequestError("request body is too large")
		}
		return nil, errs.NewBadRequestError("request body could not be read")
	}
	return body, nil
}

func DecodeJSON(c *gin.Context, dst any) (validate.Presence, error) {
	body, err := Body(c)
	if err != nil {
		return nil, err
	}
	return validate.Decode(body, dst)
}

// DecodePatch decodes a partial update; an update with no known field is rejected.
func DecodePatch(c *gin.Context, dst any) (validate.Presence, error) {
	body, err := Body(c)
	if err != nil {
		return nil, err
	}
	return validate.DecodePartial(body, dst)
}

func Query(c *gin.Context, dst any) error {
	return validate.Query(c.Request.URL.Query(), dst)
}
