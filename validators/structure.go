package validators

import (
	"fmt"
	"reflect"
	"strings"
)

// RequireFields checks that each named field of a payload struct is present
// (not the zero value). Names refer to json tags. The first missing field is
// reported and checking stops there.
func RequireFields(payload interface{}, fields ...string) error {
	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return fmt.Errorf("payload is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("payload must be a struct, got %s", v.Kind())
	}

	for _, name := range fields {
		fv, ok := fieldByJSONTag(v, name)
		if !ok {
			return fmt.Errorf("missing required field %q", name)
		}
		if fv.IsZero() {
			return fmt.Errorf("missing required field %q", name)
		}
	}
	return nil
}

func fieldByJSONTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		tagName := strings.Split(tag, ",")[0]
		if tagName == "" {
			tagName = t.Field(i).Name
		}
		if tagName == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// RequireNonEmptyList checks that a returned collection has between 1 and max
// elements, matching the bounds of the fixture dataset.
func RequireNonEmptyList[T any](items []T, max int) error {
	if len(items) == 0 {
		return fmt.Errorf("expected a non-empty list")
	}
	if max > 0 && len(items) > max {
		return fmt.Errorf("expected at most %d elements, got %d", max, len(items))
	}
	return nil
}
