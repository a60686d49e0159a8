package validate

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videogame-catalog/internal/domain/calendar"
	"videogame-catalog/internal/errs"
)

type reviewInput struct {
	PublicationID uint           `json:"publication_id" validate:"required"`
	IsOwned       *Flag          `json:"is_owned"`
	Rating        *int           `json:"review_rating" validate:"omitempty,min=0,max=5"`
	Comment       *string        `json:"review_comment" nullable:"true" validate:"omitempty,max=20"`
	ReviewDate    *calendar.Date `json:"review_date" nullable:"true" validate:"omitempty,notfuture"`
}

type reviewPatch struct {
	IsOwned    *Flag          `json:"is_owned"`
	Rating     *int           `json:"review_rating" validate:"omitempty,min=0,max=5"`
	Comment    *string        `json:"review_comment" nullable:"true" validate:"omitempty,max=20"`
	ReviewDate *calendar.Date `json:"review_date" nullable:"true" validate:"omitempty,notfuture"`
}

type platformInput struct {
	Code        string `json:"code" validate:"required,platformcode"`
	Description string `json:"description" validate:"required"`
}

func (p *platformInput) Normalize() {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
}

type releaseInput struct {
	Name     string         `json:"name" validate:"required,max=255"`
	Platform *platformInput `json:"platform"`
}

type Paging struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type listQuery struct {
	Paging
	Name    *string `query:"name"`
	IsOwned *Flag   `query:"isOwned"`
	UserID  *uint   `query:"userId"`
}

func newTestValidator() *Validator {
	return New(WithClock(func() time.Time { return time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC) }))
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var apiErr *errs.ApiErr
	require.True(t, errors.As(err, &apiErr), "expected an ApiErr, got %v", err)
	require.True(t, errs.IsValidation(err))
	out := make(map[string]string, len(apiErr.Fields))
	for _, fe := range apiErr.Fields {
		out[fe.Field] = fe.Reason
	}
	return out
}

func TestDecodeValid(t *testing.T) {
	v := newTestValidator()
	var in reviewInput
	present, err := v.Decode([]byte(`{"publication_id": 3, "is_owned": true, "review_rating": 4, "review_date": "2024-05-31", "extra": "ignored"}`), &in)
	require.NoError(t, err)

	assert.Equal(t, uint(3), in.PublicationID)
	assert.True(t, in.IsOwned.Bool())
	assert.Equal(t, 4, *in.Rating)
	assert.Nil(t, in.Comment)
	assert.Equal(t, calendar.NewDate(2024, time.May, 31), *in.ReviewDate)

	assert.Equal(t, map[string]any{
		"publication_id": uint(3),
		"is_owned":       true,
		"review_rating":  4,
		"review_date":    calendar.NewDate(2024, time.May, 31),
	}, Changes(&in, present))
}

func TestDecodeMissingRequiredNamesField(t *testing.T) {
	var in reviewInput
	_, err := newTestValidator().Decode([]byte(`{"is_owned": false}`), &in)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"publication_id": "is required"}, fieldErrors(t, err))
}

func TestDecodeEnumeratesEveryFailure(t *testing.T) {
	var in reviewInput
	_, err := newTestValidator().Decode([]byte(`{
		"publication_id": "three",
		"is_owned": "yes",
		"review_rating": 9,
		"review_comment": "this comment is far too long to keep",
		"review_date": "2024-06-02"
	}`), &in)
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"publication_id": "must be a non-negative integer",
		"is_owned":       "must be a boolean or 0/1",
		"review_rating":  "must be at most 5",
		"review_comment": "must be at most 20 characters long",
		"review_date":    "must not be in the future",
	}, fieldErrors(t, err))
}

func TestDecodeFalsyValuesArePresent(t *testing.T) {
	var in reviewPatch
	present, err := newTestValidator().DecodePartial([]byte(`{"is_owned": 0, "review_rating": 0, "review_comment": ""}`), &in)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"is_owned":       false,
		"review_rating":  0,
		"review_comment": "",
	}, Changes(&in, present))
}

func TestDecodePartialRequiresAField(t *testing.T) {
	for _, body := range []string{`{}`, `{"unknown": 1}`} {
		var in struct {
			Name *string `json:"name"`
			Bio  *string `json:"bio"`
		}
		_, err := newTestValidator().DecodePartial([]byte(body), &in)
		require.Error(t, err, body)
		assert.Equal(t, map[string]string{"body": "at least one of name, bio must be provided"}, fieldErrors(t, err))
	}
}

func TestDecodeNulls(t *testing.T) {
	var in reviewPatch
	present, err := newTestValidator().DecodePartial([]byte(`{"review_comment": null, "review_date": null}`), &in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"review_comment": nil, "review_date": nil}, Changes(&in, present))

	_, err = newTestValidator().DecodePartial([]byte(`{"review_rating": null}`), &in)
	assert.Equal(t, map[string]string{"review_rating": "must not be null"}, fieldErrors(t, err))
}

func TestDecodeRejectsNonObjects(t *testing.T) {
	for _, body := range []string{``, `[]`, `null`, `"text"`, `{"a":`} {
		var in reviewInput
		_, err := newTestValidator().Decode([]byte(body), &in)
		assert.Equal(t, map[string]string{"body": "must be a JSON object"}, fieldErrors(t, err), body)
	}
}

func TestDecodeNormalizesAndValidatesNested(t *testing.T) {
	var in releaseInput
	_, err := newTestValidator().Decode([]byte(`{"name": "Celeste", "platform": {"code": " switch "}}`), &in)
	require.Error(t, err)
	assert.Equal(t, "SWITCH", in.Platform.Code)
	assert.Equal(t, map[string]string{"platform.description": "is required"}, fieldErrors(t, err))

	var bad releaseInput
	_, err = newTestValidator().Decode([]byte(`{"name": "", "platform": {"code": "PS 5", "description": 7}}`), &bad)
	assert.Equal(t, map[string]string{
		"name":                 "must not be empty",
		"platform.code":        "must be 1 to 16 letters, digits, '-' or '_'",
		"platform.description": "must be a string",
	}, fieldErrors(t, err))
}

func TestQueryCoercion(t *testing.T) {
	v := newTestValidator()

	var q listQuery
	require.NoError(t, v.Query(url.Values{"page": {"2"}, "limit": {"50"}, "name": {"zelda"}, "isOwned": {"1"}, "userId": {"9"}}, &q))
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, "zelda", *q.Name)
	assert.True(t, q.IsOwned.Bool())
	assert.Equal(t, uint(9), *q.UserID)

	var empty listQuery
	require.NoError(t, v.Query(url.Values{}, &empty))
	assert.Nil(t, empty.Name)
	assert.Zero(t, empty.Page)

	var bad listQuery
	err := v.Query(url.Values{"page": {"-1"}, "limit": {"500"}, "userId": {"abc"}}, &bad)
	assert.Equal(t, map[string]string{
		"page":   "must be at least 1",
		"limit":  "must be at most 100",
		"userId": "must be a non-negative integer",
	}, fieldErrors(t, err))
}

func TestFlagUnion(t *testing.T) {
	for body, want := range map[string]bool{`true`: true, `1`: true, `false`: false, `0`: false} {
		var f Flag
		require.NoError(t, f.UnmarshalJSON([]byte(body)))
		assert.Equal(t, want, f.Bool(), body)
	}
	var f Flag
	assert.Error(t, f.UnmarshalJSON([]byte(`2`)))
	assert.Error(t, f.UnmarshalJSON([]byte(`"true"`)))
}
