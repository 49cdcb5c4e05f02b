// SPDX-License-Identifier: Apache-2.0

// Package validators provides input validation for the authentication
// payloads. Validation is result-value based: each validator returns either
// the parsed record or a field-error map, never a panic, so that callers can
// branch on the outcome and surface every violation in one response.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/fitstack/workout-server/models"
	"github.com/go-playground/validator/v10"
)

// Validation messages keyed by constraint. The wording follows the shape
// clients already parse from the details map.
const (
	msgRequired      = "Missing data for required field."
	msgEmail         = "Not a valid email address."
	msgInvalidDate   = "Not a valid date."
	msgFutureDate    = "Date of birth cannot be in the future."
	msgInvalidChoice = "Must be one of: male, female, other."
)

// UserValidator checks registration and login payloads against the schema
// constraints declared as struct tags on the request models, plus the
// date-of-birth rules that cannot be expressed as tags.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a ready-to-use UserValidator. Field names in
// the returned error maps follow the JSON tags of the request structs.
func NewUserValidator() *UserValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &UserValidator{validate: v}
}

// ValidateRegister checks a registration payload. On success it returns the
// parsed date of birth; otherwise a *ValidationError whose Fields map names
// every violated constraint.
func (v *UserValidator) ValidateRegister(req models.RegisterRequest) (models.Date, *ValidationError) {
	fields := FieldErrors{}

	if err := v.validate.Struct(req); err != nil {
		var violations validator.ValidationErrors
		if errors.As(err, &violations) {
			for _, fe := range violations {
				fields.add(fe.Field(), messageFor(fe))
			}
		} else {
			fields.add("_schema", err.Error())
		}
	}

	var dob models.Date
	if req.DateOfBirth != "" {
		parsed, err := models.ParseDate(req.DateOfBirth)
		switch {
		case err != nil:
			fields.add("date_of_birth", msgInvalidDate)
		case parsed.After(time.Now().UTC()):
			fields.add("date_of_birth", msgFutureDate)
		default:
			dob = parsed
		}
	}

	if len(fields) > 0 {
		return models.Date{}, &ValidationError{Fields: fields}
	}

	return dob, nil
}

// ValidateLogin checks a login payload: both email and password are
// required, and the email must parse as an address.
func (v *UserValidator) ValidateLogin(req models.LoginRequest) *ValidationError {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	fields := FieldErrors{}
	var violations validator.ValidationErrors
	if errors.As(err, &violations) {
		for _, fe := range violations {
			fields.add(fe.Field(), messageFor(fe))
		}
	} else {
		fields.add("_schema", err.Error())
	}

	return &ValidationError{Fields: fields}
}

// messageFor translates a single constraint violation into its wire message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "email":
		return msgEmail
	case "oneof":
		return msgInvalidChoice
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for constraint %q.", fe.Tag())
	}
}
