package design

import (
	"encoding/json"
	"errors"
	"strings"

	errs "github.com/matzehuels/glassblock/pkg/errors"
)

// fieldLabels maps wire field names to the names used in error messages,
// so a decoded value fails with the same message its setter would produce.
var fieldLabels = map[string]string{
	"width":       "width",
	"height":      "height",
	"numWindows":  "number of windows",
	"numColors":   "number of colors",
	"blockCounts": "block count",
}

// decode unmarshals text into v.
//
// Syntax errors, and documents whose root is not an object, are parse errors.
// A well-formed document holding a value of the wrong type in a known field
// is a validation error naming that field.
func decode(text []byte, v any, what string) error {
	err := json.Unmarshal(text, v)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fieldTypeError(typeErr.Field)
	}
	return errs.Wrap(errs.ErrCodeParse, err, "malformed %s JSON", what)
}

// fieldTypeError converts a dotted decoder field path such as
// "blockSupply.numColors" into the matching validation error.
func fieldTypeError(path string) error {
	parts := strings.Split(path, ".")
	name := parts[len(parts)-1]
	if name == "colors" {
		return errs.New(errs.ErrCodeInvalidValue, "color must be a valid hex color (e.g., #ff0000)")
	}
	if label, ok := fieldLabels[name]; ok {
		return errs.NotInteger(label)
	}
	return errs.New(errs.ErrCodeInvalidValue, "%s has the wrong type", name)
}

func marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode design")
	}
	return b, nil
}
