package validator

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slug", isSlugFL)
	}
}

// isSlug checks that the string is a URL-safe slug: lowercase letters,
// digits and single hyphens, never leading or trailing.
func isSlug(s string) bool {
	if s == "" {
		return false
	}
	prevHyphen := true
	for _, char := range s {
		switch {
		case unicode.IsLower(char) || unicode.IsDigit(char):
			prevHyphen = false
		case char == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		default:
			return false
		}
	}
	return !prevHyphen
}

func isSlugFL(fl validator.FieldLevel) bool {
	return isSlug(fl.Field().String())
}
