package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"skyward/reservations/internal/constants"
	"skyward/reservations/internal/models/dtos"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names by their json tag so fieldErrors keys match the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// LocalDateTime fields validate as their underlying time.Time.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ldt, ok := field.Interface().(dtos.LocalDateTime); ok {
			return ldt.Time()
		}
		return nil
	}, dtos.LocalDateTime{})

	_ = validate.RegisterValidation("future", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && t.After(time.Now())
	})

	_ = validate.RegisterValidation("flightstatus", func(fl validator.FieldLevel) bool {
		_, err := constants.ParseFlightStatus(fl.Field().String())
		return err == nil
	})
}

// ValidateFlight runs struct validation on a flight payload and returns
// per-field messages keyed by json field name. An empty map means valid.
func ValidateFlight(dto *dtos.FlightDTO) map[string]string {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fieldErrors[fe.Field()] = messageFor(fe)
	}
	return fieldErrors
}

// messageFor keeps the wording the API has always used for each field/rule.
func messageFor(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " cannot be blank"
	case "min", "max":
		return fmt.Sprintf("%s must be between %s and %s characters", label, minFor(fe.Field()), maxFor(fe.Field()))
	case "gte":
		return "Price must be greater than 0"
	case "lte":
		return "Price cannot exceed 999999.99"
	case "future":
		return label + " must be in the future"
	case "email":
		return "Email should be valid"
	case "url":
		return "Image URL must be a valid URL"
	case "flightstatus":
		return "Invalid flight status: " + fe.Value().(string)
	default:
		return fmt.Sprintf("%s failed validation on %s", label, fe.Tag())
	}
}

var fieldLabels = map[string]string{
	"airline":            "Airline name",
	"type":               "Flight type",
	"price":              "Price",
	"departure_city":     "Departure city",
	"arrival_city":       "Arrival city",
	"departure_datetime": "Departure date/time",
	"arrival_datetime":   "Arrival date/time",
	"status":             "Status",
	"email":              "Admin email",
	"image_url":          "Image URL",
}

var fieldBounds = map[string][2]string{
	"airline":        {"2", "100"},
	"type":           {"1", "50"},
	"departure_city": {"2", "100"},
	"arrival_city":   {"2", "100"},
}

func minFor(field string) string { return fieldBounds[field][0] }
func maxFor(field string) string { return fieldBounds[field][1] }
