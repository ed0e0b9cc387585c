package transport

import (
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"negociosHorarios/internal/modules/hours/domain"
)

// RequestValidator plugs go-playground/validator into echo with the hours tags registered:
// "localtime" accepts "" or a 24-hour "H:MM"/"HH:MM" value, "dayname" accepts any Spanish or
// English day name and "distinctdays" rejects a map whose keys name the same day twice.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	_ = v.RegisterValidation("localtime", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || domain.IsValidLocalTime(value)
	})
	_ = v.RegisterValidation("dayname", func(fl validator.FieldLevel) bool {
		_, ok := domain.ResolveDay(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("distinctdays", distinctDays)
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	if err := rv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func distinctDays(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Map {
		return false
	}
	seen := make(map[domain.Day]struct{}, field.Len())
	iter := field.MapRange()
	for iter.Next() {
		day, ok := domain.ResolveDay(iter.Key().String())
		if !ok {
			continue
		}
		if _, dup := seen[day]; dup {
			return false
		}
		seen[day] = struct{}{}
	}
	return true
}
