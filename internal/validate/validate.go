// Package validate decodes request bodies and query strings into DTO structs and
// reports every offending field at once.
//
// Presence is tracked by key: a field sent as 0, false or "" is present. Optional
// fields are pointers so a zero value can be told apart from an absent one.
package validate

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"videogame-catalog/internal/domain/calendar"
	"videogame-catalog/internal/domain/catalog"
	"videogame-catalog/internal/errs"
	"videogame-catalog/internal/security"
)

// Normalizer is implemented by DTOs that clean up their values (trim, case) after
// decoding and before rules are checked.
type Normalizer interface {
	Normalize()
}

// Presence records which fields a request actually supplied, by JSON path.
type Presence map[string]struct{}

func (p Presence) Has(name string) bool {
	_, ok := p[name]
	return ok
}

type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*Validator)

// WithClock fixes the reference time used by the notfuture rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(fieldName)
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(calendar.Date); ok {
			return d.Time
		}
		return nil
	}, calendar.Date{})

	_ = v.validate.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !t.After(calendar.Today(v.now()).Time)
	})
	_ = v.validate.RegisterValidation("platformcode", func(fl validator.FieldLevel) bool {
		return catalog.ValidCode(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return security.IsPasswordStrong(fl.Field().String())
	})
	return v
}

// Decode fills dst from a JSON object body.
func (v *Validator) Decode(body []byte, dst any) (Presence, error) {
	return v.decode(body, dst, false)
}

// DecodePartial is Decode for update bodies: at least one declared field must be present.
func (v *Validator) DecodePartial(body []byte, dst any) (Presence, error) {
	return v.decode(body, dst, true)
}

func (v *Validator) decode(body []byte, dst any, partial bool) (Presence, error) {
	target := structTarget(dst)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return nil, errs.NewValidationError(errs.FieldError{Field: "body", Reason: "must be a JSON object"})
	}

	present := Presence{}
	var problems problemList
	decodeObject(obj, target, "", present, &problems)

	if partial && len(present) == 0 {
		names := make([]string, 0)
		for _, f := range fieldsOf(target.Type()) {
			names = append(names, f.name)
		}
		return present, errs.NewValidationError(errs.FieldError{
			Field:  "body",
			Reason: "at least one of " + strings.Join(names, ", ") + " must be provided",
		})
	}

	if err := v.check(dst, present, &problems); err != nil {
		return present, err
	}
	if len(problems) > 0 {
		return present, errs.NewValidationError(problems...)
	}
	return present, nil
}

// Query coerces query parameters into dst's fields. Parameters that are absent keep
// their zero value.
func (v *Validator) Query(values url.Values, dst any) error {
	target := structTarget(dst)

	present := Presence{}
	var problems problemList
	for _, f := range fieldsOf(target.Type()) {
		if !values.Has(f.name) {
			continue
		}
		present[f.name] = struct{}{}
		if err := setFromString(target.FieldByIndex(f.index), values.Get(f.name)); err != nil {
			problems.add(f.name, typeReason(f.typ))
		}
	}

	if err := v.check(dst, present, &problems); err != nil {
		return err
	}
	if len(problems) > 0 {
		return errs.NewValidationError(problems...)
	}
	return nil
}

func (v *Validator) check(dst any, present Presence, problems *problemList) error {
	normalize(structTarget(dst))

	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return errs.NewInternalErrorWithCause(err)
	}
	for _, fe := range failures {
		path := fieldPath(fe.Namespace())
		if problems.has(path) {
			continue
		}
		problems.add(path, reason(fe, present.Has(path)))
	}
	return nil
}

func structTarget(dst any) reflect.Value {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		panic("validate: destination must be a pointer to a struct")
	}
	return rv.Elem()
}

// fieldPath drops the root type name from a validator namespace. Embedded structs show
// up under their Go name, which is capitalised, and are dropped too.
func fieldPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	out := segments[:0]
	for _, s := range segments[1:] {
		if s != "" && s[0] >= 'A' && s[0] <= 'Z' {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, ".")
}

type problemList []errs.FieldError

func (p *problemList) add(field, reason string) {
	*p = append(*p, errs.FieldError{Field: field, Reason: reason})
}

func (p problemList) has(field string) bool {
	for _, fe := range p {
		if fe.Field == field {
			return true
		}
	}
	return false
}

var std = New()

func Decode(body []byte, dst any) (Presence, error)        { return std.Decode(body, dst) }
func DecodePartial(body []byte, dst any) (Presence, error) { return std.DecodePartial(body, dst) }
func Query(values url.Values, dst any) error               { return std.Query(values, dst) }
