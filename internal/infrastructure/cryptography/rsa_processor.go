package cryptography

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"path/filepath"

	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/entropy"
	"github.com/MikaPS/PublicKeyCryptography/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
	src    entropy.Source
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor.
// src supplies the randomness for key generation; it may be nil for a processor that
// only encrypts, decrypts, signs and verifies.
func NewRSAProcessor(logger logger.Logger, src entropy.Source) (cryptoDomain.RSAProcessor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &rsaProcessor{
		logger: logger,
		src:    src,
	}, nil
}

// GenerateKeys generates a key pair whose modulus has at least nbits bits and signs identity with it.
// nbits must lie in [50, 4096] and iters in [1, 500].
func (r *rsaProcessor) GenerateKeys(nbits, iters int, identity string) (*cryptoDomain.KeyPair, error) {
	if r.src == nil {
		return nil, errors.New("entropy source required for key generation")
	}
	if nbits < cryptoDomain.MinModulusBits || nbits > cryptoDomain.MaxModulusBits {
		return nil, fmt.Errorf("number of bits must be %d-%d, not %d", cryptoDomain.MinModulusBits, cryptoDomain.MaxModulusBits, nbits)
	}
	if iters < cryptoDomain.MinIterations || iters > cryptoDomain.MaxIterations {
		return nil, fmt.Errorf("number of iterations must be %d-%d, not %d", cryptoDomain.MinIterations, cryptoDomain.MaxIterations, iters)
	}
	if _, err := IdentityToInt(identity); err != nil {
		return nil, err
	}

	p, q, n, e := MakePub(uint(nbits), iters, r.src)
	d, err := MakePriv(e, p, q)
	if err != nil {
		return nil, err
	}

	privateKey := &cryptoDomain.PrivateKey{N: n, D: d}
	s, err := SignIdentity(identity, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign identity: %w", err)
	}

	r.logger.Info(fmt.Sprintf("Generated %s key pair with %d-bit modulus", cryptoDomain.AlgorithmRSA, n.BitLen()))
	return &cryptoDomain.KeyPair{
		P: p,
		Q: q,
		Public: &cryptoDomain.PublicKey{
			N:        n,
			E:        e,
			S:        s,
			Identity: identity,
		},
		Private: privateKey,
	}, nil
}

// Encrypt encrypts the stream block by block with the public key.
// NOTE: textbook RSA without padding; identical blocks produce identical ciphertext.
func (r *rsaProcessor) Encrypt(in io.Reader, out io.Writer, publicKey *cryptoDomain.PublicKey) error {
	if publicKey == nil {
		return errors.New("public key cannot be nil")
	}

	blocks, err := EncryptStream(in, out, publicKey.N, publicKey.E)
	if err != nil {
		return fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info(fmt.Sprintf("RSA encryption succeeded (%d blocks)", blocks))
	return nil
}

// Decrypt decrypts a stream of ciphertext blocks with the private key.
func (r *rsaProcessor) Decrypt(in io.Reader, out io.Writer, privateKey *cryptoDomain.PrivateKey) error {
	if privateKey == nil {
		return errors.New("private key cannot be nil")
	}

	blocks, err := DecryptStream(in, out, privateKey.N, privateKey.D)
	if err != nil {
		return fmt.Errorf("failed to decrypt data: %w", err)
	}

	r.logger.Info(fmt.Sprintf("RSA decryption succeeded (%d blocks)", blocks))
	return nil
}

// Sign signs the identity with the private key.
func (r *rsaProcessor) Sign(identity string, privateKey *cryptoDomain.PrivateKey) (*big.Int, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	s, err := SignIdentity(identity, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign identity: %w", err)
	}

	r.logger.Info("RSA signing succeeded")
	return s, nil
}

// Verify checks the public key's signature against its embedded identity.
// A mismatch is reported as false with a nil error.
func (r *rsaProcessor) Verify(publicKey *cryptoDomain.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	valid, err := VerifyIdentity(publicKey)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	if valid {
		r.logger.Info("RSA signature verified successfully for ", publicKey.Identity)
	} else {
		r.logger.Warn("RSA signature does not match identity ", publicKey.Identity)
	}
	return valid, nil
}

// SavePrivateKeyToFile saves the private key to filename with owner-only permissions.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *cryptoDomain.PrivateKey, filename string) error {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create private key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	// O_CREATE leaves the mode of an existing file alone
	if err := file.Chmod(0600); err != nil {
		return fmt.Errorf("failed to restrict private key file permissions: %w", err)
	}

	if err := WritePrivateKey(file, privateKey); err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}

	r.logger.Info(fmt.Sprintf("Saved %s %s key %s", cryptoDomain.AlgorithmRSA, cryptoDomain.KeyTypePrivate, filename))
	return nil
}

// SavePublicKeyToFile saves the public key to filename.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *cryptoDomain.PublicKey, filename string) error {
	file, err := os.Create(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("failed to create public key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	if err := WritePublicKey(file, publicKey); err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}

	r.logger.Info(fmt.Sprintf("Saved %s %s key %s", cryptoDomain.AlgorithmRSA, cryptoDomain.KeyTypePublic, filename))
	return nil
}

// ReadPrivateKey reads a private key from a file.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*cryptoDomain.PrivateKey, error) {
	file, err := os.Open(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read %s key file: %w", cryptoDomain.KeyTypePrivate, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	return ReadPrivateKey(file)
}

// ReadPublicKey reads a public key from a file.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*cryptoDomain.PublicKey, error) {
	file, err := os.Open(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read %s key file: %w", cryptoDomain.KeyTypePublic, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	return ReadPublicKey(file)
}
