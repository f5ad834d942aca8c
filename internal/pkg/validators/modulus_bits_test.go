//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type modulusHolder struct {
	Bits int `validate:"modulus_bits"`
}

func TestModulusBitsValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("modulus_bits", ModulusBitsValidation))

	tests := []struct {
		bits  int
		valid bool
	}{
		{49, false},
		{50, true},
		{1024, true},
		{4096, true},
		{4097, false},
		{0, false},
		{-1024, false},
	}

	for _, tt := range tests {
		err := validate.Struct(modulusHolder{Bits: tt.bits})
		if tt.valid {
			assert.NoError(t, err, "bits=%d", tt.bits)
		} else {
			assert.Error(t, err, "bits=%d", tt.bits)
		}
	}
}
