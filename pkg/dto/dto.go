// Package dto holds the request payload builders for Canvas write
// endpoints. Each DTO is a bag of optional properties constructed either
// directly or from a loosely-typed mapping, and serializes itself into the
// ordered multipart fields Canvas expects via pkg/formenc.
//
// Two serializations exist per DTO: Fields emits every set property under
// its own snake_case name, and APIFields additionally wraps names in the
// DTO's root key (rubric[title], quiz_submission[preview]). A handful of
// properties bypass the root prefix because Canvas reads them at top level
// (provisional, final, graded_anonymously, rubric_association_id); that
// inconsistency is Canvas's, preserved here property by property.
package dto

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"

	"github.com/edukit/go-canvas/pkg/formenc"
)

// decode hydrates a DTO struct from an input mapping whose keys may use
// snake_case or camelCase interchangeably. Matching snake-cases both the
// input key and the field's wire name, so digit-bearing names like
// brand_config_md5 line up regardless of the caller's casing. Unknown
// keys are ignored.
func decode(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
		MatchName:        matchSnakeFold,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

// matchSnakeFold compares an input key to a field's wire name with both
// sides run through the same snake_case conversion.
func matchSnakeFold(mapKey, fieldName string) bool {
	return strcase.ToSnake(mapKey) == strcase.ToSnake(fieldName)
}

// wrap prefixes every field name with the DTO root key, turning "title"
// into "rubric[title]" and "criteria[x][points]" into
// "rubric[criteria][x][points]".
func wrap(root string, fields []formenc.Field) []formenc.Field {
	out := make([]formenc.Field, len(fields))
	for i, f := range fields {
		name := f.Name
		rest := ""
		if idx := strings.IndexByte(name, '['); idx >= 0 {
			name, rest = f.Name[:idx], f.Name[idx:]
		}
		out[i] = formenc.Field{
			Name:     root + "[" + name + "]" + rest,
			Contents: f.Contents,
		}
	}
	return out
}

// String returns a pointer to v, for setting optional DTO properties.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int64) *int64 { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
