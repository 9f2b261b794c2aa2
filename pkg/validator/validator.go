package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires the salon-specific field rules into gin's
// binding validator. Call once at startup before the router handles requests.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("dateonly", validDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("hhmm", validClockTime); err != nil {
		return err
	}
	return nil
}

// validDate accepts YYYY-MM-DD calendar dates.
func validDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validClockTime accepts zero-padded 24-hour HH:MM strings.
func validClockTime(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}
