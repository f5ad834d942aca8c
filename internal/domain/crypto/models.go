package crypto

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/go-playground/validator/v10"
)

// PublicKey is the shareable half of an RSA key pair together with a self-signature binding it to an identity.
// N is the modulus, E the public exponent and S the signature of Identity under the matching private exponent.
type PublicKey struct {
	N        *big.Int `validate:"required"`
	E        *big.Int `validate:"required"`
	S        *big.Int `validate:"required"`
	Identity string   `validate:"required,max=1024"`
}

// Validate for validating PublicKey struct
func (k *PublicKey) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}
	if k.N.Sign() <= 0 || k.E.Sign() <= 0 || k.S.Sign() < 0 {
		return fmt.Errorf("validation failed: modulus and exponent must be positive, signature non-negative")
	}
	return nil
}

// PrivateKey is the secret half of an RSA key pair: the modulus N and the private exponent D.
type PrivateKey struct {
	N *big.Int `validate:"required"`
	D *big.Int `validate:"required"`
}

// Validate for validating PrivateKey struct
func (k *PrivateKey) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}
	if k.N.Sign() <= 0 || k.D.Sign() <= 0 {
		return fmt.Errorf("validation failed: modulus and private exponent must be positive")
	}
	return nil
}

// KeyPair holds everything produced by one key generation.
// P and Q are the prime factors of the modulus; they are never written to a key file.
type KeyPair struct {
	P       *big.Int
	Q       *big.Int
	Public  *PublicKey
	Private *PrivateKey
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
