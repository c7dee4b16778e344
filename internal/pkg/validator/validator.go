package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	playground "github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

var (
	structValidator *playground.Validate
	structOnce      sync.Once
)

// engine lazily builds the shared tag validator. Field names are reported by
// their json tag so messages match the request body.
func engine() *playground.Validate {
	structOnce.Do(func() {
		v := playground.New(playground.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("staffid", func(fl playground.FieldLevel) bool {
			return IsValidStaffID(fl.Field().String())
		})
		_ = v.RegisterValidation("pin", func(fl playground.FieldLevel) bool {
			return IsValidPIN(fl.Field().String())
		})
		structValidator = v
	})
	return structValidator
}

// Struct validates s against its `validate` tags and converts failures into
// ValidationErrors.
func Struct(s interface{}) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: tagMessage(fe),
		})
	}
	return errs
}

func tagMessage(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "staffid":
		return fe.Field() + " must look like staff001"
	case "pin":
		return fe.Field() + " must be 4 to 8 digits"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Temp card codes are printed as six uppercase alphanumerics, e.g. A1B2C3.
var cardCodeRegex = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// IsValidCardCode reports whether code is a well-formed temp card code. Input
// is normalized before matching. Only registry seeding enforces it; kiosk input
// is looked up as typed so an unknown code reaches the registry.
func IsValidCardCode(code string) bool {
	return cardCodeRegex.MatchString(NormalizeCardCode(code))
}

// NormalizeCardCode trims and uppercases a card code as typed on the kiosk.
func NormalizeCardCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var staffIDRegex = regexp.MustCompile(`^staff[0-9]{3,}$`)

func IsValidStaffID(id string) bool {
	return staffIDRegex.MatchString(id)
}

func IsValidPIN(pin string) bool {
	return len(pin) >= 4 && len(pin) <= 8 && IsNumeric(pin)
}

// IsValidMonth parses a "YYYY-MM" string.
func IsValidMonth(monthStr string) (time.Time, bool) {
	month, err := time.Parse("2006-01", monthStr)
	return month, err == nil
}
