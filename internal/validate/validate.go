// Package validate wraps go-playground/validator with the project's custom
// tags and converts its errors into *domain.ValidationError.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/pkg/reportid"
)

// Validator checks tagged input structs.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the report_id, urgency, category and
// report_status tags registered. Field names in errors follow json tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	_ = v.RegisterValidation("report_id", func(fl validator.FieldLevel) bool {
		return reportid.Valid(fl.Field().String())
	})
	_ = v.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		return domain.Urgency(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("report_status", func(fl validator.FieldLevel) bool {
		return domain.ReportStatus(fl.Field().String()).IsValid()
	})

	return &Validator{v: v}
}

// Struct validates s. Tag failures come back as *domain.ValidationError;
// anything else (e.g. a non-struct argument) is returned wrapped.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return domain.NewValidationErrors(fields)
}

var defaultValidator = sync.OnceValue(New)

// Struct validates s with a shared Validator.
func Struct(s any) error {
	return defaultValidator().Struct(s)
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without", "required_with":
		return "required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "latitude":
		return "must be between -90 and 90"
	case "longitude":
		return "must be between -180 and 180"
	case "report_id":
		return "must be 16 lowercase hex characters"
	case "urgency":
		return "must be EMERGENCY or NON_EMERGENCY"
	case "category":
		return "unknown category"
	case "report_status":
		return "must be one of PENDING, IN_PROGRESS, RESOLVED, DISMISSED"
	case "excluded_with":
		return "cannot be combined with " + strings.ToLower(fe.Param())
	}
	return "failed " + fe.Tag() + " check"
}
