package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/errs"
)

// SanitizeInput strips markup from every string in a JSON body, nested objects and
// arrays included. Password fields are left byte for byte.
func SanitizeInput(r respond.Responder) gin.HandlerFunc {
	policy := strictPolicy()
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		buf, err := request.Body(c)
		if err != nil {
			r.WriteError(c, err)
			return
		}

		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		var body map[string]any
		if err := dec.Decode(&body); err != nil || body == nil {
			r.WriteError(c, errs.NewValidationError(errs.FieldError{Field: "body", Reason: "must be a JSON object"}))
			return
		}

		cleaned, err := json.Marshal(sanitizeValue(policy, "", body))
		if err != nil {
			r.WriteError(c, errs.NewInternalErrorWithCause(err))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(cleaned))
		c.Request.ContentLength = int64(len(cleaned))
		c.Next()
	}
}

func strictPolicy() *bluemonday.Policy {
	return bluemonday.StrictPolicy()
}

func sanitizeValue(policy *bluemonday.Policy, key string, v any) any {
	switch t := v.(type) {
	case string:
		if strings.Contains(strings.ToLower(key), "password") {
			return t
		}
		return sanitizeString(policy, t)
	case map[string]any:
		for k, inner := range t {
			t[k] = sanitizeValue(policy, k, inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = sanitizeValue(policy, key, inner)
		}
		return t
	}
	return v
}

// sanitizeString removes tags. The policy escapes entities as it goes; they are decoded
// again when sanitizing the decoded text changes nothing, so no markup comes back.
func sanitizeString(policy *bluemonday.Policy, s string) string {
	cleaned := policy.Sanitize(s)
	decoded := html.UnescapeString(cleaned)
	if html.UnescapeString(policy.Sanitize(decoded)) == decoded {
		return decoded
	}
	return cleaned
}
