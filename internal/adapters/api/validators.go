package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdata.app/internal/core/telemetry"
	"weatherdata.app/pkg/errors"
	"weatherdata.app/pkg/validation"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the "metric" and "device" tags on gin's validator
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.NewConfigurationError("gin validator engine is not validator/v10", nil)
			return
		}
		if err := v.RegisterValidation("metric", validateMetric); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("device", validateDevice)
	})
	return registerErr
}

func validateMetric(fl validator.FieldLevel) bool {
	_, err := telemetry.ParseMetricKind(fl.Field().String())
	return err == nil
}

func validateDevice(fl validator.FieldLevel) bool {
	return validation.IsSafePathSegment(fl.Field().String())
}
