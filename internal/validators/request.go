package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-medcare/models"
	"github.com/go-playground/validator/v10"
)

// TagLabel is the custom tag accepting only the persisted severity bands.
const TagLabel = "label"

// RequestValidator implements [Validator] for the tagged request models in
// package models. It is safe for concurrent use.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a validator with the custom tags registered.
// Field names in errors are taken from the json tags.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation(TagLabel, func(fl validator.FieldLevel) bool {
		return models.Label(fl.Field().String()).IsValid()
	})

	return &RequestValidator{validate: v}
}

// Validate checks value, which must be a struct or a pointer to one. When
// fields are given only those struct fields (by Go name) are checked.
func (r *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	t := reflect.TypeOf(value)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = r.validate.StructCtx(ctx, value)
	}

	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "gte":
		return fe.Field() + " must be >= " + fe.Param()
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case TagLabel:
		return fe.Field() + " must be one of Low, Medium, High"
	}
	return fe.Field() + " failed " + fe.Tag()
}
