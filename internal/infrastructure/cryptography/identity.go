package cryptography

import (
	"fmt"
	"math/big"
	"strings"

	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/numtheory"
)

var bigBase62 = big.NewInt(int64(len(cryptoDomain.IdentityAlphabet)))

// IdentityToInt decodes identity as a base-62 number over the alphabet 0-9, A-Z, a-z.
// Identities that are empty or contain other characters are rejected with ErrInvalidIdentity.
func IdentityToInt(identity string) (*big.Int, error) {
	if identity == "" {
		return nil, fmt.Errorf("empty identity: %w", cryptoDomain.ErrInvalidIdentity)
	}

	m := new(big.Int)
	digit := new(big.Int)
	for i, c := range identity {
		v := strings.IndexRune(cryptoDomain.IdentityAlphabet, c)
		if v < 0 {
			return nil, fmt.Errorf("character %q at offset %d is not base-62: %w", c, i, cryptoDomain.ErrInvalidIdentity)
		}
		m.Mul(m, bigBase62)
		m.Add(m, digit.SetInt64(int64(v)))
	}

	return m, nil
}

// Sign returns message^d mod n.
func Sign(message, d, n *big.Int) *big.Int {
	return numtheory.PowMod(message, d, n)
}

// Verify reports whether s^e mod n equals message.
func Verify(message, s, e, n *big.Int) bool {
	return numtheory.PowMod(s, e, n).Cmp(message) == 0
}

// SignIdentity signs the integer encoding of identity with the private key.
// The encoding must be smaller than the modulus or the signature could never verify.
func SignIdentity(identity string, privateKey *cryptoDomain.PrivateKey) (*big.Int, error) {
	m, err := IdentityToInt(identity)
	if err != nil {
		return nil, err
	}
	if m.Cmp(privateKey.N) >= 0 {
		return nil, fmt.Errorf("identity %q does not fit below the modulus: %w", identity, cryptoDomain.ErrInvalidIdentity)
	}
	return Sign(m, privateKey.D, privateKey.N), nil
}

// VerifyIdentity reports whether the public key's signature matches its embedded identity.
// An identity that cannot be encoded is an error, not a failed verification.
func VerifyIdentity(publicKey *cryptoDomain.PublicKey) (bool, error) {
	m, err := IdentityToInt(publicKey.Identity)
	if err != nil {
		return false, err
	}
	return Verify(m, publicKey.S, publicKey.E, publicKey.N), nil
}
