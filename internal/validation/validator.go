// Package validation provides custom validators for the application
package validation

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Initialize registers all custom validators
func Initialize() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("iana_zone", validateIANAZone)
		if err != nil {
			panic(err)
		}
	}
}

// validateIANAZone checks that a string names a zone the runtime's time
// zone database can load. Well-formedness beyond that is delegated to the
// database itself.
func validateIANAZone(fl validator.FieldLevel) bool {
	_, err := time.LoadLocation(fl.Field().String())
	return err == nil
}
