package flaget

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeTag is the struct tag read by Decode.
const DecodeTag = "flag"

// Decode copies the parsed flags and named positionals into out, which
// must be a non-nil pointer to a struct (or a map). Fields are matched by
// their `flag:"name"` tag, or case-insensitively by field name. Inputs are
// weakly typed: a number fills a string field, "8080" fills an int field,
// "5s" fills a time.Duration and "a,b" fills a []string.
//
// A named positional is decoded only when no flag of the same name exists.
func (r *Result) Decode(out any) error {
	if out == nil {
		return NewDecodeError(ErrorTypeInvalidTarget, "", ErrNilTarget)
	}
	target := fmt.Sprintf("%T", out)
	if rv := reflect.ValueOf(out); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return NewDecodeError(ErrorTypeInvalidTarget, target, fmt.Errorf("expected a non-nil pointer"))
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          DecodeTag,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return NewDecodeError(ErrorTypeInvalidTarget, target, err)
	}

	if err := dec.Decode(r.decodeInput()); err != nil {
		return NewDecodeError(ErrorTypeDecode, target, err)
	}
	return nil
}

func (r *Result) decodeInput() map[string]any {
	input := r.Flags.Native()
	for name, arg := range r.Args {
		if _, exists := input[name]; exists {
			continue
		}
		if v := arg.Interface(); v != nil {
			input[name] = v
		}
	}
	return input
}
