// Package validators holds custom validator/v10 rules for the settings structs.
package validators

import (
	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// ModulusBitsValidation accepts modulus sizes key generation supports.
func ModulusBitsValidation(fl validator.FieldLevel) bool {
	bits := fl.Field().Int()
	return bits >= cryptoDomain.MinModulusBits && bits <= cryptoDomain.MaxModulusBits
}
