package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateRange checks that v lies in [min, max].
// The error message names the field so callers can surface it directly,
// e.g. "width must be between 1 and 100".
func ValidateRange(field string, v, min, max int) error {
	if v < min || v > max {
		return New(ErrCodeInvalidValue, "%s must be between %d and %d", field, min, max)
	}
	return nil
}

// ValidateNonNegative checks that v is zero or greater.
func ValidateNonNegative(field string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidValue, "%s must be a non-negative integer", field)
	}
	return nil
}

// NotInteger reports that field held a value that is not an integer.
// Go setters take int, so this only arises when decoding serialized data.
func NotInteger(field string) error {
	return New(ErrCodeInvalidValue, "%s must be an integer", field)
}

// ValidateIndex checks that i addresses one of n slots.
// The message names the bad index and the valid bound:
// "color index 5 is out of range (0 to 2)".
func ValidateIndex(kind string, i, n int) error {
	if i < 0 || i >= n {
		return New(ErrCodeIndexRange, "%s index %d is out of range (0 to %d)", kind, i, n-1)
	}
	return nil
}

// hexColorRegex matches "#" followed by exactly six hex digits.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexColor checks that s is a six-digit hex color such as "#ff0000".
// Input is matched case-insensitively; callers store the lowercased form.
func ValidateHexColor(s string) error {
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidValue, "color must be a valid hex color (e.g., #ff0000), got %q", s)
	}
	return nil
}

// ValidatePath validates a design file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty or only whitespace
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
