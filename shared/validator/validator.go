package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"

	val "github.com/go-playground/validator/v10"

	"slotkeeper/shared/failure"
)

const dateLayout = "2006-01-02"

var (
	validate *val.Validate

	timeOfDayPattern = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$|^24:00$`)
)

// registerTimeOfDayValidation accepts "HH:MM" between 00:00 and 24:00.
func registerTimeOfDayValidation(field val.FieldLevel) bool {
	return timeOfDayPattern.MatchString(field.Field().String())
}

func registerTimezoneValidation(field val.FieldLevel) bool {
	name := field.Field().String()
	if name == "" || name == "Local" {
		return false
	}

	_, err := time.LoadLocation(name)

	return err == nil
}

func registerDateValidation(field val.FieldLevel) bool {
	_, err := time.Parse(dateLayout, field.Field().String())

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("timeofday", registerTimeOfDayValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("iana_tz", registerTimezoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
