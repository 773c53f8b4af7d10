package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// messageTag is the struct tag holding the client-facing text of a failed rule.
const messageTag = "message"

// RequestValidator validates request structs using `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks obj, a struct or pointer to struct. When fields are given,
// only those top-level struct fields are checked.
//
// Fields are visited in declaration order, so the returned *ValidationError
// always names the first failing one.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	structType, ok := structTypeOf(obj)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	first := validationErrors[0]
	return &ValidationError{
		Field:   first.Field(),
		Tag:     first.Tag(),
		Message: messageFor(structType, first),
	}
}

func structTypeOf(obj any) (reflect.Type, bool) {
	if obj == nil {
		return nil, false
	}
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, false
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, false
	}
	return value.Type(), true
}

func messageFor(structType reflect.Type, fe validator.FieldError) string {
	if field, ok := structType.FieldByName(fe.StructField()); ok {
		if message := field.Tag.Get(messageTag); message != "" {
			return message
		}
	}
	return fmt.Sprintf("field '%s' failed on '%s' validation", fe.Field(), fe.Tag())
}
