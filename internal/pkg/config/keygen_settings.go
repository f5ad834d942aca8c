package config

import (
	"errors"
	"fmt"

	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"
	"github.com/MikaPS/PublicKeyCryptography/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Key generation defaults
const (
	DefaultModulusBits = 1024
	DefaultIterations  = 50
)

// KeygenSettings holds the parameters of one key generation run
type KeygenSettings struct {
	Bits           int    `yaml:"bits" validate:"modulus_bits"`
	Iterations     int    `yaml:"iterations" validate:"min=1,max=500"`
	Seed           int64  `yaml:"seed"`
	Identity       string `yaml:"identity" validate:"required,max=1024"`
	PublicKeyPath  string `yaml:"public_key_path"`
	PrivateKeyPath string `yaml:"private_key_path"`
	KeyDir         string `yaml:"key_dir"`
}

// DefaultKeygenSettings returns a 1024-bit, 50-iteration configuration writing rsa.pub and rsa.priv
func DefaultKeygenSettings() *KeygenSettings {
	return &KeygenSettings{
		Bits:           DefaultModulusBits,
		Iterations:     DefaultIterations,
		PublicKeyPath:  cryptoDomain.DefaultPublicKeyFile,
		PrivateKeyPath: cryptoDomain.DefaultPrivateKeyFile,
	}
}

// Validate checks that all fields in KeygenSettings are valid
func (s *KeygenSettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("modulus_bits", validators.ModulusBitsValidation); err != nil {
		return fmt.Errorf("failed to register modulus_bits validation: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				switch fieldErr.Field() {
				case "Bits":
					return fmt.Errorf("number of bits must be %d-%d, not %d", cryptoDomain.MinModulusBits, cryptoDomain.MaxModulusBits, s.Bits)
				case "Iterations":
					return fmt.Errorf("number of iterations must be %d-%d, not %d", cryptoDomain.MinIterations, cryptoDomain.MaxIterations, s.Iterations)
				}
			}
		}
		return fmt.Errorf("validation failed for KeygenSettings: %w", err)
	}

	if s.KeyDir == "" && (s.PublicKeyPath == "" || s.PrivateKeyPath == "") {
		return fmt.Errorf("public and private key paths are required unless a key directory is given")
	}

	return nil
}
