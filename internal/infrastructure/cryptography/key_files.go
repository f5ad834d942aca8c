package cryptography

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"
)

// WritePublicKey writes the public key as four lines: n, e and s in lowercase hexadecimal, then the identity.
func WritePublicKey(w io.Writer, publicKey *cryptoDomain.PublicKey) error {
	if err := publicKey.Validate(); err != nil {
		return fmt.Errorf("refusing to write public key: %w", err)
	}
	_, err := fmt.Fprintf(w, "%x\n%x\n%x\n%s\n", publicKey.N, publicKey.E, publicKey.S, publicKey.Identity)
	return err
}

// ReadPublicKey reads a public key written by WritePublicKey.
func ReadPublicKey(r io.Reader) (*cryptoDomain.PublicKey, error) {
	lines, err := readKeyLines(r, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}

	n, err := parseHexField("modulus", lines[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}
	e, err := parseHexField("exponent", lines[1])
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}
	// the identity "0" signs to 0
	s, ok := new(big.Int).SetString(strings.TrimSpace(lines[2]), 16)
	if !ok || s.Sign() < 0 {
		return nil, fmt.Errorf("failed to read public key: signature %q is not hexadecimal: %w", lines[2], cryptoDomain.ErrMalformedKey)
	}

	identity := strings.TrimSpace(lines[3])
	if identity == "" {
		return nil, fmt.Errorf("failed to read public key: empty identity: %w", cryptoDomain.ErrMalformedKey)
	}

	return &cryptoDomain.PublicKey{
		N:        n,
		E:        e,
		S:        s,
		Identity: identity,
	}, nil
}

// WritePrivateKey writes the private key as two lines of lowercase hexadecimal: n, then d.
func WritePrivateKey(w io.Writer, privateKey *cryptoDomain.PrivateKey) error {
	if err := privateKey.Validate(); err != nil {
		return fmt.Errorf("refusing to write private key: %w", err)
	}
	_, err := fmt.Fprintf(w, "%x\n%x\n", privateKey.N, privateKey.D)
	return err
}

// ReadPrivateKey reads a private key written by WritePrivateKey.
func ReadPrivateKey(r io.Reader) (*cryptoDomain.PrivateKey, error) {
	lines, err := readKeyLines(r, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	n, err := parseHexField("modulus", lines[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	d, err := parseHexField("private exponent", lines[1])
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	return &cryptoDomain.PrivateKey{N: n, D: d}, nil
}

// readKeyLines returns the first count lines of r.
func readKeyLines(r io.Reader, count int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, count)
	for len(lines) < count && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < count {
		return nil, fmt.Errorf("expected %d lines, found %d: %w", count, len(lines), cryptoDomain.ErrMalformedKey)
	}
	return lines, nil
}

func parseHexField(name, line string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(line), 16)
	if !ok || v.Sign() <= 0 {
		return nil, fmt.Errorf("%s %q is not a positive hexadecimal number: %w", name, line, cryptoDomain.ErrMalformedKey)
	}
	return v, nil
}
