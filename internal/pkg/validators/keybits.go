package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeyBitsValidation validates an RSA modulus bit length. 512 is accepted
// for test fixtures; production keys are 1024 bits and up.
func KeyBitsValidation(fl validator.FieldLevel) bool {
	bits := fl.Field().Uint()

	switch bits {
	case 512, 1024, 2048, 3072, 4096:
		return true
	default:
		return false
	}
}
