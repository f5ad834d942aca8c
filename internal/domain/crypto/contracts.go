package crypto

import (
	"io"
	"math/big"
)

// RSAProcessor handles textbook RSA operations: key generation, identity signatures and
// block encryption of byte streams. No padding is applied to any message.
type RSAProcessor interface {
	// GenerateKeys generates a key pair whose modulus has at least nbits bits, testing primes with
	// iters Miller-Rabin iterations, and signs identity with the new private key.
	GenerateKeys(nbits, iters int, identity string) (*KeyPair, error)

	// Encrypt reads plaintext from r and writes one hexadecimal ciphertext block per line to w.
	Encrypt(r io.Reader, w io.Writer, publicKey *PublicKey) error

	// Decrypt reads hexadecimal ciphertext blocks from r and writes the recovered plaintext to w.
	Decrypt(r io.Reader, w io.Writer, privateKey *PrivateKey) error

	// Sign signs identity with the private key.
	Sign(identity string, privateKey *PrivateKey) (*big.Int, error)

	// Verify checks the public key's signature against its embedded identity.
	// Returns true if the signature is valid, false otherwise.
	Verify(publicKey *PublicKey) (bool, error)

	// SavePrivateKeyToFile saves the private key to a file readable only by its owner.
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// SavePublicKeyToFile saves the public key to a file.
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// ReadPrivateKey reads a private key from a file.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)

	// ReadPublicKey reads a public key from a file.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)
}
