package formenc

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Field is one multipart form field: a bracketed path name and its encoded
// contents. Field names may repeat (the append form depends on it), so the
// result of flattening is a slice, not a map.
type Field struct {
	Name     string
	Contents string
}

// Flatten walks v depth-first and emits one Field per non-nil leaf, naming
// each by its bracket path under root. Nil values, nil pointers and empty
// containers emit nothing.
//
// Mappings recurse as root[key]. *Values iterates in insertion order;
// builtin maps iterate in sorted key order (numeric-aware, so "9" sorts
// before "20") because Go randomizes their iteration.
//
// Sequences containing only scalars use the append form: every element is
// emitted under the same name root[]. A sequence containing any nested
// container instead indexes every element explicitly as root[0], root[1].
func Flatten(root string, v any, mode BoolMode) []Field {
	var out []Field
	flattenInto(&out, root, v, mode)
	return out
}

func flattenInto(out *[]Field, path string, v any, mode BoolMode) {
	v = indirect(v)
	if v == nil {
		return
	}

	switch x := v.(type) {
	case *Values:
		for _, k := range x.keys {
			flattenInto(out, path+"["+k+"]", x.m[k], mode)
		}
		return
	case time.Time:
		*out = append(*out, Field{path, EncodeScalar(x, mode)})
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		for _, k := range sortedMapKeys(rv) {
			flattenInto(out, path+"["+k.name+"]", rv.MapIndex(k.value).Interface(), mode)
		}
	case reflect.Slice, reflect.Array:
		flattenSequence(out, path, rv, mode)
	default:
		*out = append(*out, Field{path, EncodeScalar(v, mode)})
	}
}

func flattenSequence(out *[]Field, path string, rv reflect.Value, mode BoolMode) {
	n := rv.Len()
	if n == 0 {
		return
	}

	if sequenceOfScalars(rv) {
		for i := 0; i < n; i++ {
			el := indirect(rv.Index(i).Interface())
			if el == nil {
				continue
			}
			*out = append(*out, Field{path + "[]", EncodeScalar(el, mode)})
		}
		return
	}

	for i := 0; i < n; i++ {
		flattenInto(out, path+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface(), mode)
	}
}

// sequenceOfScalars reports whether every non-nil element of rv is a leaf.
// Any nested mapping or sequence forces the indexed form for the whole
// sequence.
func sequenceOfScalars(rv reflect.Value) bool {
	for i := 0; i < rv.Len(); i++ {
		el := indirect(rv.Index(i).Interface())
		if el == nil {
			continue
		}
		if isContainer(el) {
			return false
		}
	}
	return true
}

func isContainer(v any) bool {
	switch v.(type) {
	case *Values:
		return true
	case time.Time:
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// indirect unwraps interfaces and pointers, mapping nil at any level to a
// plain nil. *Values stays a *Values so the ordered-map path recognizes it.
func indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		if pv, ok := rv.Interface().(*Values); ok {
			return pv
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

type mapKey struct {
	name  string
	value reflect.Value
}

// sortedMapKeys stringifies a builtin map's keys and orders them, comparing
// numerically when both keys parse as integers. Canvas payloads keyed by
// numeric IDs ("9" vs "134") read more naturally that way.
func sortedMapKeys(rv reflect.Value) []mapKey {
	keys := make([]mapKey, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, mapKey{name: stringifyKey(k), value: k})
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.ParseInt(keys[i].name, 10, 64)
		b, berr := strconv.ParseInt(keys[j].name, 10, 64)
		if aerr == nil && berr == nil {
			return a < b
		}
		return keys[i].name < keys[j].name
	})
	return keys
}

func stringifyKey(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10)
	}
	return fmt.Sprint(k.Interface())
}
