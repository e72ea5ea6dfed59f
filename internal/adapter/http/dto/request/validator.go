package request

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var cuilCuitPattern = regexp.MustCompile(`^\d{2}-\d{8}-\d$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths with their wire names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	if err := v.RegisterValidation("cuilcuit", func(fl validator.FieldLevel) bool {
		return cuilCuitPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	v.RegisterStructValidation(contactInfoStructLevel, ContactInfoRequest{})

	return v
}

// contactInfoStructLevel enforces the email-or-phone invariant: a contact
// block with neither field is rejected wherever it appears.
func contactInfoStructLevel(sl validator.StructLevel) {
	ci := sl.Current().Interface().(ContactInfoRequest)
	if ci.Email == nil && ci.PhoneNumber == nil {
		sl.ReportError(ci.Email, "email", "Email", "contact_required", "")
	}
}

// aggregate collects every rule violation into one "field: reason" list so a
// single 400 reports all problems at once.
func aggregate(prefix string, err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %v", prefix, err)
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fieldPath(fe), describeRule(fe)))
	}
	return fmt.Errorf("%s: %s", prefix, strings.Join(parts, ", "))
}

// fieldPath strips the root struct name from the namespace, leaving the
// dotted wire path (e.g. "contactInfo.email").
func fieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	// The contact invariant belongs to the contactInfo object, not to the
	// field the struct-level check happened to report on.
	if fe.Tag() == "contact_required" && len(segments) > 1 {
		segments = segments[:len(segments)-1]
	}
	return strings.Join(segments, ".")
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email format"
	case "url":
		return "invalid URL format"
	case "cuilcuit":
		return "must be in format XX-XXXXXXXX-X"
	case "contact_required":
		return "at least email or phone number must be provided"
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "datetime":
		return "invalid date format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return "must be a positive integer"
		}
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("cannot exceed %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
