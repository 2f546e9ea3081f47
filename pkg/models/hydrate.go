package models

import (
	"fmt"
	"reflect"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
)

// Hydrate populates a model struct from a decoded JSON object. Input keys
// may use snake_case or camelCase; matching snake-cases both the key and
// the struct's json tag, so digit-bearing names like brand_config_md5
// line up either way. Unknown keys are ignored, and malformed datetime
// strings hydrate to nil with a logged warning instead of failing the
// whole object.
func Hydrate(log hclog.Logger, in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
		DecodeHook:       lenientTimeHook(log),
		MatchName: func(mapKey, fieldName string) bool {
			return strcase.ToSnake(mapKey) == strcase.ToSnake(fieldName)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("failed to hydrate %T: %w", out, err)
	}
	return nil
}

// ParseOptionalTime parses a datetime string leniently. Empty or
// unparseable input yields nil; a parse failure logs a warning but never
// propagates an error into model construction.
func ParseOptionalTime(log hclog.Logger, s string) *time.Time {
	if s == "" {
		return nil
	}
	ts, err := dateparse.ParseAny(s)
	if err != nil {
		if log != nil {
			log.Warn("failed to parse timestamp, treating as unset",
				"value", s, "error", err)
		}
		return nil
	}
	return &ts
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.TypeOf(&time.Time{})
)

// lenientTimeHook converts datetime strings during hydration. Optional
// (*time.Time) fields become nil when the string does not parse; required
// (time.Time) fields fall back to the zero time.
func lenientTimeHook(log hclog.Logger) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}

		switch to {
		case timeType:
			if ts := ParseOptionalTime(log, s); ts != nil {
				return *ts, nil
			}
			return time.Time{}, nil
		case timePtrType:
			ts := ParseOptionalTime(log, s)
			if ts == nil {
				// Untyped nil so the decoder leaves the field unset.
				return nil, nil
			}
			return ts, nil
		}
		return data, nil
	}
}
