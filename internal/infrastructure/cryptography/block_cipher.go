package cryptography

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/numtheory"
)

// BlockSize returns the number of bytes in a plaintext block for modulus n, sentinel included.
// A block of that many bytes starting with a non-zero byte is always smaller than n.
func BlockSize(n *big.Int) (int, error) {
	k := (n.BitLen() - 1) / 8
	if k < 2 {
		return 0, fmt.Errorf("%d-bit modulus gives %d-byte blocks: %w", n.BitLen(), k, cryptoDomain.ErrModulusTooSmall)
	}
	return k, nil
}

// block is a plaintext block: the sentinel byte followed by up to k-1 payload bytes.
type block struct {
	buf []byte
	len int
}

func newBlock(k int) *block {
	buf := make([]byte, k)
	buf[0] = cryptoDomain.BlockSentinel
	return &block{buf: buf}
}

// fill reads up to k-1 payload bytes from r. It reports io.EOF once r is exhausted;
// the bytes read before that still belong to the block.
func (b *block) fill(r io.Reader) error {
	n, err := io.ReadFull(r, b.buf[1:])
	b.len = n
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return io.EOF
	}
	return err
}

// Int returns the block's sentinel and payload as a big-endian unsigned integer.
func (b *block) Int() *big.Int {
	return new(big.Int).SetBytes(b.buf[:1+b.len])
}

// unframe strips the sentinel from a decrypted block.
func unframe(m *big.Int) ([]byte, error) {
	raw := m.Bytes()
	if len(raw) == 0 || raw[0] != cryptoDomain.BlockSentinel {
		return nil, fmt.Errorf("decrypted block lacks sentinel byte: %w", cryptoDomain.ErrMalformedCiphertext)
	}
	return raw[1:], nil
}

// EncryptStream encrypts everything read from r under (n, e) and writes one lowercase
// hexadecimal block per line to w. Each block carries up to BlockSize(n)-1 bytes of input.
// A block is written even when a read returns nothing, so empty input yields a single block.
func EncryptStream(r io.Reader, w io.Writer, n, e *big.Int) (blocks int, err error) {
	k, err := BlockSize(n)
	if err != nil {
		return 0, err
	}

	out := bufio.NewWriter(w)
	b := newBlock(k)
	for {
		readErr := b.fill(r)
		if readErr != nil && readErr != io.EOF {
			return blocks, fmt.Errorf("failed to read plaintext: %w", readErr)
		}

		c := numtheory.PowMod(b.Int(), e, n)
		if _, err := fmt.Fprintf(out, "%x\n", c); err != nil {
			return blocks, fmt.Errorf("failed to write ciphertext: %w", err)
		}
		blocks++

		if readErr == io.EOF {
			break
		}
	}

	if err := out.Flush(); err != nil {
		return blocks, fmt.Errorf("failed to write ciphertext: %w", err)
	}
	return blocks, nil
}

// DecryptStream decrypts the hexadecimal blocks read from r under (n, d) and writes the
// recovered payload bytes to w. Blank lines are ignored.
func DecryptStream(r io.Reader, w io.Writer, n, d *big.Int) (blocks int, err error) {
	if _, err := BlockSize(n); err != nil {
		return 0, err
	}

	scanner := bufio.NewScanner(r)
	// a line holds at most one modulus worth of hex digits
	scanner.Buffer(make([]byte, 0, 4096), n.BitLen()/4+64)

	out := bufio.NewWriter(w)
	c := new(big.Int)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := c.SetString(line, 16); !ok || c.Sign() < 0 {
			return blocks, fmt.Errorf("line %d is not a hexadecimal block: %w", lineNo, cryptoDomain.ErrMalformedCiphertext)
		}

		payload, err := unframe(numtheory.PowMod(c, d, n))
		if err != nil {
			return blocks, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := out.Write(payload); err != nil {
			return blocks, fmt.Errorf("failed to write plaintext: %w", err)
		}
		blocks++
	}
	if err := scanner.Err(); err != nil {
		return blocks, fmt.Errorf("failed to read ciphertext: %w", err)
	}

	if err := out.Flush(); err != nil {
		return blocks, fmt.Errorf("failed to write plaintext: %w", err)
	}
	return blocks, nil
}
