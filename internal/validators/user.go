// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/footy-tipping/models"
	"github.com/go-playground/validator/v10"
)

// UserValidator implements [Validator] for the account request DTOs and
// user identifiers. Struct rules are declared with `validate` tags on the
// models and enforced by go-playground/validator.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator returns a [Validator] for account requests. Error
// messages name fields by their JSON names.
func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &UserValidator{validate: v}
}

// Validate checks obj against its rules. When fields are given, only
// violations of those struct fields (Go names, e.g. "Username") are reported.
//
// Supported values: models.AuthenticateRequest, models.RegisterRequest,
// models.UpdateRequest (or pointers to them) and int64 user ids.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case int64:
		return validateUserID(value)
	case models.AuthenticateRequest, models.RegisterRequest, models.UpdateRequest:
		return v.validateStruct(ctx, value, fields)
	case *models.AuthenticateRequest:
		return v.validatePointer(ctx, value, fields)
	case *models.RegisterRequest:
		return v.validatePointer(ctx, value, fields)
	case *models.UpdateRequest:
		return v.validatePointer(ctx, value, fields)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validatePointer(ctx context.Context, obj any, fields []string) error {
	if reflect.ValueOf(obj).IsNil() {
		return ErrUnsupportedType
	}
	return v.validateStruct(ctx, obj, fields)
}

func (v *UserValidator) validateStruct(ctx context.Context, obj any, fields []string) error {
	if err := checkFields(obj, fields); err != nil {
		return err
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	for _, fe := range validationErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.StructField()) {
			continue
		}
		return fieldError(fe)
	}

	return nil
}

func validateUserID(id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

// checkFields rejects scoping by a field obj does not have.
func checkFields(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s: %w", fe.Field(), ErrRequiredField)
	case "max":
		return fmt.Errorf("%s: %w (max %s)", fe.Field(), ErrFieldTooLong, fe.Param())
	default:
		return fmt.Errorf("%s: %w (%s)", fe.Field(), ErrInvalidField, fe.Tag())
	}
}
