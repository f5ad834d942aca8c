//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeygenSettings(t *testing.T) {
	s := DefaultKeygenSettings()
	s.Identity = "alice"

	require.NoError(t, s.Validate())
	assert.Equal(t, 1024, s.Bits)
	assert.Equal(t, 50, s.Iterations)
	assert.Equal(t, "rsa.pub", s.PublicKeyPath)
	assert.Equal(t, "rsa.priv", s.PrivateKeyPath)
}

func TestKeygenSettingsValidation(t *testing.T) {
	valid := func() *KeygenSettings {
		s := DefaultKeygenSettings()
		s.Identity = "alice"
		return s
	}

	tests := []struct {
		name        string
		mutate      func(s *KeygenSettings)
		errContains string
	}{
		{"minimum bits", func(s *KeygenSettings) { s.Bits = 50 }, ""},
		{"maximum bits", func(s *KeygenSettings) { s.Bits = 4096 }, ""},
		{"too few bits", func(s *KeygenSettings) { s.Bits = 49 }, "number of bits must be 50-4096, not 49"},
		{"too many bits", func(s *KeygenSettings) { s.Bits = 4097 }, "number of bits must be 50-4096, not 4097"},
		{"zero iterations", func(s *KeygenSettings) { s.Iterations = 0 }, "number of iterations must be 1-500, not 0"},
		{"too many iterations", func(s *KeygenSettings) { s.Iterations = 501 }, "number of iterations must be 1-500, not 501"},
		{"missing identity", func(s *KeygenSettings) { s.Identity = "" }, "Identity"},
		{"missing key path", func(s *KeygenSettings) { s.PublicKeyPath = "" }, "key paths are required"},
		{"key dir replaces paths", func(s *KeygenSettings) {
			s.PublicKeyPath = ""
			s.PrivateKeyPath = ""
			s.KeyDir = "/tmp/keys"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)

			err := s.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
