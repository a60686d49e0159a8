package validate

import (
	"bytes"
	"errors"
	"reflect"
)

// Flag is a boolean that also accepts the numbers 0 and 1.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return errors.New("flag must be a boolean or 0/1")
	}
	return nil
}

func (f *Flag) Bool() bool {
	return f != nil && bool(*f)
}

// Changes returns the supplied top-level fields of a decoded DTO keyed by their JSON
// name, which is also the column name. Explicit nulls map to nil. Nested objects are
// left out.
func Changes(dto any, present Presence) map[string]any {
	rv := structTarget(dto)
	out := make(map[string]any)
	for _, f := range fieldsOf(rv.Type()) {
		if f.nested || !present.Has(f.name) {
			continue
		}
		fv := rv.FieldByIndex(f.index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				out[f.name] = nil
				continue
			}
			fv = fv.Elem()
		}
		if fv.Type() == flagType {
			out[f.name] = fv.Bool()
			continue
		}
		out[f.name] = fv.Interface()
	}
	return out
}
