// AngelaMos | 2026
// validation.go

package core

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern  = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	slugPattern   = regexp.MustCompile(`^[a-z0-9-]+$`)
	mapsPattern   = regexp.MustCompile(`(?i)^https://(www\.)?google\.com/maps/.+`)
)

const earliestHistoryYear = 1900

// NewValidator returns a validator that reports fields by their json
// names and knows the site-specific formats: contact_email, mobile, slug,
// history_year, google_maps and social=<domain>.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "social", func(fl validator.FieldLevel) bool {
		return socialURL(fl.Param()).MatchString(fl.Field().String())
	})
	mustRegister(v, "google_maps", func(fl validator.FieldLevel) bool {
		return mapsPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "history_year", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= earliestHistoryYear &&
			year <= int64(time.Now().Year()+10)
	})

	return v
}

var (
	socialMu       sync.Mutex
	socialPatterns = map[string]*regexp.Regexp{}
)

// socialURL matches an optional scheme and www. prefix, the domain, and a
// non-empty path.
func socialURL(domain string) *regexp.Regexp {
	socialMu.Lock()
	defer socialMu.Unlock()

	re, ok := socialPatterns[domain]
	if !ok {
		re = regexp.MustCompile(
			`(?i)^(https?://)?(www\.)?` + regexp.QuoteMeta(domain) + `/.+`,
		)
		socialPatterns[domain] = re
	}
	return re
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// ValidateStruct runs v over s and converts failures into a
// ValidationFailed error.
func ValidateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fields := FormatValidationError(err)
	if len(fields) == 0 {
		return fmt.Errorf("validate: %w", err)
	}

	return ValidationError(fields)
}

func FormatValidationError(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		out = append(out, FieldError{
			Field:   field,
			Message: fieldMessage(fe),
		})
	}

	return out
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	isList := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array

	switch fe.Tag() {
	case "required", "required_with", "required_without":
		return name + " is required"
	case "min":
		if isList {
			return fmt.Sprintf("%s must have at least %s items", name, fe.Param())
		}
		if isNumber(fe.Kind()) {
			return fmt.Sprintf("%s must be at least %s", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		if isList {
			return fmt.Sprintf("%s cannot have more than %s items", name, fe.Param())
		}
		if isNumber(fe.Kind()) {
			return fmt.Sprintf("%s cannot exceed %s", name, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s characters", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot exceed %s", name, fe.Param())
	case "unique":
		if fe.Param() != "" {
			return fmt.Sprintf("%s must have unique %s values", name, fe.Param())
		}
		return name + " must contain unique values"
	case "email", "contact_email":
		return "Please provide a valid email address"
	case "mobile":
		return "Please provide a valid 10-digit phone number"
	case "slug":
		return "Slug can only contain lowercase letters, numbers, and hyphens"
	case "social":
		return "Please provide a valid " + fe.Field() + " URL"
	case "google_maps":
		return "Please provide a valid Google Maps link"
	case "history_year":
		return fmt.Sprintf(
			"Year must be between %d and %d",
			earliestHistoryYear,
			time.Now().Year()+10,
		)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "uuid", "uuid4":
		return name + " must be a valid id"
	case "numeric", "len":
		return name + " is invalid"
	}

	return name + " is invalid"
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
