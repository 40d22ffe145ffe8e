package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Aishwariya/at-registrierkassen-mustercode/pkg/turnover"
)

// registerAlgorithms adds custom validators ensuring the configured cipher
// mode and hash algorithm are members of the closed sets supported by the
// turnover package, so unsupported names fail before any key material is
// touched.
func registerAlgorithms(validate *validator.Validate) error {
	if err := validate.RegisterValidation("ciphermode", validateMode); err != nil {
		return fmt.Errorf("registering ciphermode validation: %w", err)
	}

	if err := validate.RegisterValidation("hashalg", validateHash); err != nil {
		return fmt.Errorf("registering hashalg validation: %w", err)
	}

	return nil
}

// validateMode checks that the field names a supported cipher mode variant.
func validateMode(fl validator.FieldLevel) bool {
	_, err := turnover.ParseMode(fl.Field().String())

	return err == nil
}

// validateHash checks that the field names a supported digest algorithm.
func validateHash(fl validator.FieldLevel) bool {
	_, err := turnover.ParseHash(fl.Field().String())

	return err == nil
}
