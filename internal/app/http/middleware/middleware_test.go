package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videogame-catalog/internal/api/request"
	"videogame-catalog/internal/api/respond"
	"videogame-catalog/internal/domain/access"
	"videogame-catalog/internal/domain/users"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/security"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var responder = respond.NewResponder(zerolog.Nop())

func serve(t *testing.T, r *gin.Engine, method, path, body string, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestTimeoutMapsTo408(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
		responder.WriteError(c, c.Request.Context().Err())
	})

	rec, body := serve(t, r, http.MethodGet, "/slow", "", nil)
	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
	assert.Equal(t, "timeout", body["code"])
}

func echo(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		responder.WriteError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func TestSanitizeInput(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInput(responder))
	r.POST("/echo", echo)
	r.GET("/echo", echo)

	rec, body := serve(t, r, http.MethodPost, "/echo", `{
		"name": "<script>alert(1)</script>Halo",
		"password": "<b>p@ss</b>1",
		"price": 19.990,
		"platform": {"description": "<i>Xbox</i> & friends"},
		"tags": ["<b>a</b>", 2]
	}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Halo", body["name"])
	assert.Equal(t, "<b>p@ss</b>1", body["password"])
	assert.Equal(t, 19.99, body["price"])
	assert.Equal(t, "Xbox & friends", body["platform"].(map[string]any)["description"])
	assert.Equal(t, []any{"a", float64(2)}, body["tags"])

	rec, body = serve(t, r, http.MethodPost, "/echo", `"just a string"`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", body["code"])

	rec, _ = serve(t, r, http.MethodGet, "/echo", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSanitizeStringKeepsEscapedMarkupEscaped(t *testing.T) {
	assert.Equal(t, "Ratchet & Clank", sanitizeString(strictPolicy(), "Ratchet & Clank"))
	assert.NotContains(t, sanitizeString(strictPolicy(), "&lt;script&gt;"), "<script>")
	assert.NotContains(t, sanitizeString(strictPolicy(), "&lt;b&gt;bold"), "<b>")
}

func TestSanitizeStringKeepsPlainComparisons(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"5 > 3 & <i>x</i>", "5 > 3 & x"},
		{"a < b", "a < b"},
		{"<b>Tom</b> & Jerry", "Tom & Jerry"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeString(strictPolicy(), tt.in))
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(respond.RequestIDKey)})
	})

	rec, body := serve(t, r, http.MethodGet, "/", "", nil)
	generated := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, body["id"])

	incoming := uuid.NewString()
	rec, body = serve(t, r, http.MethodGet, "/", "", http.Header{RequestIDHeader: {incoming}})
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, incoming, body["id"])

	rec, _ = serve(t, r, http.MethodGet, "/", "", http.Header{RequestIDHeader: {"not-a-uuid"}})
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	r := gin.New()
	r.Use(Recover(zerolog.Nop(), responder))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec, body := serve(t, r, http.MethodGet, "/boom", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"code": "internal_error", "message": "an unexpected error occurred"}, body)
}

type fakeAccounts map[uint]users.User

func (f fakeAccounts) User(_ context.Context, id uint) (users.User, error) {
	u, ok := f[id]
	if !ok {
		return users.User{}, errs.NewNotFound("user")
	}
	return u, nil
}

func TestAuthenticate(t *testing.T) {
	tokens := security.NewTokens("k", time.Hour)
	accounts := fakeAccounts{
		1: {ID: 1, Username: "ana"},
		2: {ID: 2, Username: "root", IsAdmin: true},
	}

	r := gin.New()
	authed := r.Group("/", Authenticate(tokens, accounts, responder))
	authed.GET("/whoami", func(c *gin.Context) {
		id, _ := request.Identity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "role": id.Role()})
	})
	authed.GET("/admin", RequireAdmin(responder), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	bearer := func(id access.Identity) http.Header {
		tok, _, err := tokens.Issue(id)
		require.NoError(t, err)
		return http.Header{"Authorization": {"Bearer " + tok}}
	}

	rec, body := serve(t, r, http.MethodGet, "/whoami", "", bearer(access.Identity{UserID: 1}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user", body["role"])

	rec, _ = serve(t, r, http.MethodGet, "/admin", "", bearer(access.Identity{UserID: 1, IsAdmin: true}))
	assert.Equal(t, http.StatusForbidden, rec.Code, "a stale admin claim is not trusted")

	rec, body = serve(t, r, http.MethodGet, "/whoami", "", bearer(access.Identity{UserID: 2}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", body["role"])

	rec, _ = serve(t, r, http.MethodGet, "/admin", "", bearer(access.Identity{UserID: 2}))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, body = serve(t, r, http.MethodGet, "/whoami", "", bearer(access.Identity{UserID: 9}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication required", body["message"])

	rec, _ = serve(t, r, http.MethodGet, "/whoami", "", http.Header{"Authorization": {"Basic YTpi"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
