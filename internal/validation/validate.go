// Package validation rejects malformed entity payloads before they reach
// storage. Each entry point is a pure function from an untyped input record
// to a normalized domain record, or to a ValidationError enumerating every
// violated field. Cross-field rules run only after all per-field rules pass.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
)

var (
	// codePattern covers SKUs and asset codes after normalization.
	codePattern  = regexp.MustCompile(`^[A-Z0-9_-]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// NormalizeCode uppercases and trims a SKU or asset code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func checkRequired(ve *apperr.ValidationError, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, "validation.required",
			fmt.Sprintf("%s is required", field),
			map[string]any{"Field": field})
		return false
	}
	return true
}

func checkLength(ve *apperr.ValidationError, field, value string, min, max int) {
	n := len([]rune(value))
	if n < min {
		ve.Add(field, "validation.min_length",
			fmt.Sprintf("%s must be at least %d characters", field, min),
			map[string]any{"Field": field, "Min": min})
		return
	}
	if max > 0 && n > max {
		ve.Add(field, "validation.max_length",
			fmt.Sprintf("%s must be at most %d characters", field, max),
			map[string]any{"Field": field, "Max": max})
	}
}

func checkCode(ve *apperr.ValidationError, field, normalized string) {
	if !codePattern.MatchString(normalized) {
		ve.Add(field, "validation.invalid_code",
			fmt.Sprintf("%s may only contain uppercase letters, digits, hyphen and underscore", field),
			map[string]any{"Field": field})
	}
}

func checkEmail(ve *apperr.ValidationError, field, value string) {
	if !emailPattern.MatchString(value) {
		ve.Add(field, "validation.invalid_email",
			fmt.Sprintf("%s is not a valid email address", field),
			map[string]any{"Field": field})
	}
}

func checkNonNegative(ve *apperr.ValidationError, field string, value float64) {
	if value < 0 {
		ve.Add(field, "validation.negative",
			fmt.Sprintf("%s must not be negative", field),
			map[string]any{"Field": field})
	}
}

func checkNonNegativeInt(ve *apperr.ValidationError, field string, value int32) {
	if value < 0 {
		ve.Add(field, "validation.negative",
			fmt.Sprintf("%s must not be negative", field),
			map[string]any{"Field": field})
	}
}

func addInvalidEnum(ve *apperr.ValidationError, field, value string, allowed []string) {
	ve.Add(field, "validation.invalid_enum",
		fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
		map[string]any{"Field": field, "Value": value, "Allowed": strings.Join(allowed, ", ")})
}
