// Package validation wraps the shared go-playground validator used for
// content files, application config and the contact form.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the shared validator. Field names in errors follow the
// yaml (or koanf) tag of each field.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(tagName)

		_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
			return isLink(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and returns every failing field as
// folioerrors.ValidationErrors.
func Struct(s any) error {
	if err := Instance().Struct(s); err != nil {
		return Convert(err)
	}
	return nil
}

// Convert normalizes validator errors into folio validation errors.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return folioerrors.NewValidationError("", err.Error(), err)
	}

	out := make(folioerrors.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, &folioerrors.ValidationError{
			Field:   fieldPath(fe),
			Message: message(fe),
			Err:     fe,
		})
	}
	return out
}

func tagName(field reflect.StructField) string {
	for _, key := range []string{"yaml", "koanf", "form"} {
		tag := field.Tag.Get(key)
		if tag == "" {
			continue
		}
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return strings.ToLower(field.Name)
}

// fieldPath drops the root struct name: "Content.projects[1].title" becomes
// "projects[1].title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "link":
		return "must be a URL or an absolute path"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func isLink(value string) bool {
	if value == "" {
		return false
	}
	if strings.HasPrefix(value, "/") {
		return true
	}
	u, err := url.Parse(value)
	return err == nil && u.Scheme != "" && u.Host != ""
}
