package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// validate checks the struct tags on create requests. Fields are reported
// by their JSON name.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// validateStruct returns the first failed rule as a client-facing message.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return required(fe.Field())
	case "gt":
		return fmt.Errorf("%s must be positive", fe.Field())
	case "gte":
		return fmt.Errorf("%s must not be negative", fe.Field())
	case "min":
		return fmt.Errorf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

func required(field string) error {
	return errors.New(field + " is required")
}

func notNull(field string) error {
	return errors.New(field + " cannot be null")
}

// Validate checks a stage creation request.
func (r CreateStageRequest) Validate() error {
	return validateStruct(r)
}

func (r CreateStableRequest) Validate() error {
	return validateStruct(r)
}

func (r CreateResultRequest) Validate() error {
	return validateStruct(r)
}

func (r UpdateStageRequest) Validate() error {
	if err := requiredText("name", r.Name); err != nil {
		return err
	}
	if err := requiredText("country", r.Country); err != nil {
		return err
	}
	if r.Date.Null {
		return notNull("date")
	}
	if r.LapLength.Null {
		return notNull("lap_length")
	}
	if r.LapLength.Set && r.LapLength.Value <= 0 {
		return errors.New("lap_length must be positive")
	}
	if r.Attendance.Set && !r.Attendance.Null && r.Attendance.Value < 0 {
		return errors.New("attendance must not be negative")
	}
	return nil
}

func (r UpdateStableRequest) Validate() error {
	if err := requiredText("name", r.Name); err != nil {
		return err
	}
	return requiredText("country", r.Country)
}

func (r UpdateResultRequest) Validate() error {
	if r.StageID.Null {
		return notNull("stage_id")
	}
	if r.StableID.Null {
		return notNull("stable_id")
	}
	if err := requiredText("driver_name", r.DriverName); err != nil {
		return err
	}
	if r.RaceTime.Null {
		return notNull("race_time")
	}
	if r.RaceTime.Set && r.RaceTime.Value <= 0 {
		return errors.New("race_time must be positive")
	}
	if r.Laps.Null {
		return notNull("laps")
	}
	if r.Laps.Set && r.Laps.Value < 0 {
		return errors.New("laps must not be negative")
	}
	if r.PitStops.Set && !r.PitStops.Null && r.PitStops.Value < 0 {
		return errors.New("pit_stops must not be negative")
	}
	if r.Position.Set && !r.Position.Null && r.Position.Value < 1 {
		return errors.New("position must be at least 1")
	}
	return nil
}

// requiredText rejects a present-but-empty value for a NOT NULL text column.
func requiredText(field string, o Optional[string]) error {
	if o.Null {
		return notNull(field)
	}
	if o.Set && strings.TrimSpace(o.Value) == "" {
		return errors.New(field + " must not be empty")
	}
	return nil
}
