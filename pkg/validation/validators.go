package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, digits, spaces, and the punctuation people put in names
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// Instagram / LinkedIn handles or profile URLs
	handleRegex = regexp.MustCompile(`^@?[A-Za-z0-9._/:-]{1,100}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("tag", Tag)
	_ = v.RegisterValidation("social_handle", SocialHandle)
}

// RegisterVocabulary registers tag as a validator that accepts only values.
// Works on strings and on slices of strings (each element is checked).
func RegisterVocabulary(v *validator.Validate, tag string, values []string) {
	allowed := make(map[string]struct{}, len(values))
	for _, val := range values {
		allowed[val] = struct{}{}
	}
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return inVocabulary(fl.Field(), allowed)
	})
}

func inVocabulary(field reflect.Value, allowed map[string]struct{}) bool {
	switch field.Kind() {
	case reflect.String:
		if field.String() == "" {
			return true // use required if needed
		}
		_, ok := allowed[field.String()]
		return ok
	case reflect.Slice, reflect.Array:
		for i := 0; i < field.Len(); i++ {
			el := field.Index(i)
			if el.Kind() != reflect.String {
				return false
			}
			if _, ok := allowed[el.String()]; !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// Tag accepts a short free-form interest label without emoji or control characters.
func Tag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if strings.TrimSpace(val) == "" || len([]rune(val)) > 40 {
		return false
	}
	return noEmoji(val) && !strings.ContainsFunc(val, unicode.IsControl)
}

// SocialHandle validates an optional social profile handle or URL.
func SocialHandle(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return handleRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	return noEmoji(fl.Field().String())
}

func noEmoji(val string) bool {
	for _, r := range val {
		// Supplementary planes are mostly emoji and pictographs
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
