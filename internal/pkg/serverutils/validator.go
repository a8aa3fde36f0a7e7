package serverutils

import (
	"errors"
	"reflect"
	"strings"

	"ai-comicstory-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidationMessages maps a json field and failed tag to a client message.
// Fields without an entry fall back to a generic message.
type ValidationMessages map[string]string

// ValidateRequest runs struct tags and converts the first failure into a validation error.
func ValidateRequest(req interface{}, messages ValidationMessages) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Wrap(apperror.ErrValidation, "Invalid request", err)
	}

	first := verrs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return apperror.Wrap(apperror.ErrValidation, msg, err)
	}
	if msg, ok := messages[first.Field()]; ok {
		return apperror.Wrap(apperror.ErrValidation, msg, err)
	}
	return apperror.Wrap(apperror.ErrValidation, "Invalid field: "+first.Field(), err)
}
