package validate

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"videogame-catalog/internal/domain/calendar"
)

type field struct {
	index    []int
	name     string
	typ      reflect.Type
	nullable bool
	nested   bool
}

var (
	fieldCache      sync.Map // reflect.Type -> []field
	unmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	timeType        = reflect.TypeFor[time.Time]()
	dateType        = reflect.TypeFor[calendar.Date]()
	flagType        = reflect.TypeFor[Flag]()
)

// fieldName is the external name of a struct field: its json name, else its query name.
func fieldName(sf reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		name, _, _ := strings.Cut(sf.Tag.Get(key), ",")
		if name == "-" {
			return "-"
		}
		if name != "" {
			return name
		}
	}
	return ""
}

func fieldsOf(t reflect.Type) []field {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]field)
	}
	var out []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			for _, inner := range fieldsOf(sf.Type) {
				inner.index = append([]int{i}, inner.index...)
				out = append(out, inner)
			}
			continue
		}
		name := fieldName(sf)
		if !sf.IsExported() || name == "" || name == "-" {
			continue
		}
		out = append(out, field{
			index:    []int{i},
			name:     name,
			typ:      sf.Type,
			nullable: sf.Tag.Get("nullable") == "true",
			nested:   isNestedObject(sf.Type),
		})
	}
	fieldCache.Store(t, out)
	return out
}

func isNestedObject(t reflect.Type) bool {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct || base == timeType {
		return false
	}
	return !reflect.PointerTo(base).Implements(unmarshalerType)
}

func decodeObject(obj map[string]json.RawMessage, target reflect.Value, prefix string, present Presence, problems *problemList) {
	for _, f := range fieldsOf(target.Type()) {
		raw, ok := obj[f.name]
		if !ok {
			continue
		}
		path := prefix + f.name
		present[path] = struct{}{}
		fv := target.FieldByIndex(f.index)

		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			if f.typ.Kind() == reflect.Pointer && f.nullable {
				fv.Set(reflect.Zero(f.typ))
				continue
			}
			problems.add(path, "must not be null")
			continue
		}

		if f.nested {
			var inner map[string]json.RawMessage
			if err := json.Unmarshal(raw, &inner); err != nil {
				problems.add(path, "must be an object")
				continue
			}
			dst := fv
			if f.typ.Kind() == reflect.Pointer {
				fv.Set(reflect.New(f.typ.Elem()))
				dst = fv.Elem()
			}
			decodeObject(inner, dst, path+".", present, problems)
			continue
		}

		holder := reflect.New(f.typ)
		if err := json.Unmarshal(raw, holder.Interface()); err != nil {
			problems.add(path, typeReason(f.typ))
			continue
		}
		fv.Set(holder.Elem())
	}
}

// normalize runs Normalize on nested objects first, then on the value itself.
func normalize(target reflect.Value) {
	for _, f := range fieldsOf(target.Type()) {
		if !f.nested {
			continue
		}
		fv := target.FieldByIndex(f.index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		normalize(fv)
	}
	if target.CanAddr() {
		if n, ok := target.Addr().Interface().(Normalizer); ok {
			n.Normalize()
		}
	}
}

func setFromString(fv reflect.Value, s string) error {
	if fv.Kind() == reflect.Pointer {
		holder := reflect.New(fv.Type().Elem())
		if err := setFromString(holder.Elem(), s); err != nil {
			return err
		}
		fv.Set(holder)
		return nil
	}

	s = strings.TrimSpace(s)
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
	default:
		if fv.Type() == dateType {
			d, err := calendar.Parse(s)
			if err != nil {
				return err
			}
			fv.Set(reflect.ValueOf(d))
			return nil
		}
		return strconv.ErrSyntax
	}
	return nil
}

func typeReason(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case t == dateType:
		return "must be a date in the YYYY-MM-DD format"
	case t == flagType:
		return "must be a boolean or 0/1"
	}
	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "must be an integer"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be a non-negative integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Slice, reflect.Array:
		return "must be an array"
	}
	return "has an invalid type"
}
