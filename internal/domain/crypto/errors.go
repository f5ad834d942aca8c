package crypto

import "errors"

var (
	// ErrMalformedKey is returned when a key file is truncated or holds a field that is not valid hexadecimal.
	ErrMalformedKey = errors.New("malformed key")

	// ErrNoInverse is returned when the public exponent has no inverse modulo lambda(n).
	ErrNoInverse = errors.New("public exponent has no modular inverse")

	// ErrInvalidIdentity is returned when an identity cannot be encoded as a base-62 integer below the modulus.
	ErrInvalidIdentity = errors.New("invalid identity")

	// ErrModulusTooSmall is returned when the modulus leaves no room for a payload byte after the sentinel.
	ErrModulusTooSmall = errors.New("modulus too small for block framing")

	// ErrMalformedCiphertext is returned when a ciphertext line is not hexadecimal or does not decrypt to a framed block.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrSignatureMismatch is returned when a public key's signature does not verify against its identity.
	ErrSignatureMismatch = errors.New("signature does not match identity")
)
