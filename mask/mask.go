// Package mask renders command payloads for logging with sensitive values hidden.
package mask

import (
	"fmt"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	tagName = "mask"

	// maxDepth stops expansion of self referencing payloads.
	maxDepth = 8
)

// Fields returns the exported fields of v in declaration order, keyed by their json, yaml or Go name.
// Nested structs are flattened with dotted keys and embedded structs are flattened without a prefix.
// Values of fields tagged `mask:"true"` are replaced by a placeholder naming their kind.
// Non-struct values are returned under the "value" key.
func Fields(v any) *orderedmap.OrderedMap[string, any] {
	if v == nil {
		return nil
	}

	om := orderedmap.New[string, any]()
	val := reflect.ValueOf(v)
	if !isExpandable(val) {
		om.Set("value", v)
		return om
	}

	collect(om, val, "", 0)
	return om
}

func collect(om *orderedmap.OrderedMap[string, any], val reflect.Value, prefix string, depth int) {
	val = reflect.Indirect(val)
	typ := val.Type()

	for i := range typ.NumField() {
		sf := typ.Field(i)
		fv := val.Field(i)

		if sf.Anonymous && isExpandable(fv) && depth < maxDepth {
			collect(om, fv, prefix, depth+1)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		name, skip := fieldName(sf)
		if skip {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		switch {
		case strings.EqualFold(sf.Tag.Get(tagName), "true"):
			om.Set(name, hide(fv))
		case isExpandable(fv) && depth < maxDepth:
			collect(om, fv, name, depth+1)
		default:
			om.Set(name, fv.Interface())
		}
	}
}

func isExpandable(val reflect.Value) bool {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return false
		}
		val = val.Elem()
	}
	return val.Kind() == reflect.Struct
}

func hide(val reflect.Value) any {
	if val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	// zero values carry nothing worth hiding
	if val.IsZero() {
		return val.Interface()
	}

	switch val.Kind() { //nolint:exhaustive // grouped kinds
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "***masked-int***"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "***masked-uint***"
	case reflect.Float32, reflect.Float64:
		return "***masked-float***"
	case reflect.Array:
		return "***masked-slice***"
	default:
		return fmt.Sprintf("***masked-%s***", val.Kind())
	}
}

// fieldName picks the json tag name, then the yaml tag name, then the Go field name.
// A "-" tag excludes the field.
func fieldName(sf reflect.StructField) (string, bool) {
	for _, key := range []string{"json", "yaml"} {
		tag, ok := sf.Tag.Lookup(key)
		if !ok {
			continue
		}
		if tag == "-" {
			return "", true
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name, false
		}
	}
	return sf.Name, false
}
