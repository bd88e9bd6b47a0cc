package validation

import (
	"math"
	"reflect"
	"strings"

	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Sleep amounts move in quarter-hour steps
	validate.RegisterValidation("quarterstep", func(fl validator.FieldLevel) bool {
		return IsQuarterStep(fl.Field().Float())
	})
}

// IsQuarterStep reports whether v is a whole multiple of domain.SleepHoursStep.
func IsQuarterStep(v float64) bool {
	steps := v / domain.SleepHoursStep
	return math.Abs(steps-math.Round(steps)) < 1e-9
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   err.Field(),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "quarterstep":
		return "must be a multiple of 0.25"
	default:
		return "is invalid"
	}
}
