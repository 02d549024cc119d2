package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/lifedash/internal/error_values"
	"github.com/limbo/lifedash/pkg/dateutil"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Calendar date, yyyy-MM-dd
		validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := dateutil.ParseDate(fl.Field().String(), time.UTC)
			return err == nil
		})
		// Time of day, HH:MM on a 24 hour clock
		validate.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("15:04", fl.Field().String())
			return err == nil
		})
	})
}

func validateStruct(v any) error {
	InitValidator()
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
	}
	return nil
}
