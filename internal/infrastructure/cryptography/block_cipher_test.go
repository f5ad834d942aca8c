//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"math/big"
	"regexp"
	"strings"
	"testing"

	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/entropy"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/numtheory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexLine = regexp.MustCompile(`^[0-9a-f]+$`)

func TestBlockSize(t *testing.T) {
	tests := []struct {
		n        *big.Int
		want     int
		tooSmall bool
	}{
		{big.NewInt(0xFFFF), 0, true},
		{big.NewInt(0x10000), 2, false},
		{new(big.Int).Lsh(big.NewInt(1), 1023), 127, false},
		{new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 1024), big.NewInt(1)), 127, false},
	}

	for _, tt := range tests {
		k, err := BlockSize(tt.n)
		if tt.tooSmall {
			assert.ErrorIs(t, err, cryptoDomain.ErrModulusTooSmall)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, k, "n=%x", tt.n)
	}
}

func TestEncryptDecryptStreamRoundTrip(t *testing.T) {
	publicKey, privateKey := testKeys(t, 256, 11)
	k, err := BlockSize(publicKey.N)
	require.NoError(t, err)

	payload := make([]byte, 10*k+3)
	src := entropy.New(12)
	for i := range payload {
		payload[i] = byte(src.Intn(256))
	}

	sizes := []int{0, 1, k - 2, k - 1, k, 10*k + 3}
	for _, size := range sizes {
		plaintext := payload[:size]

		var ciphertext bytes.Buffer
		blocks, err := EncryptStream(bytes.NewReader(plaintext), &ciphertext, publicKey.N, publicKey.E)
		require.NoError(t, err, "size %d", size)
		// every block except possibly the last carries k-1 bytes; a final short or empty block is always written
		assert.Equal(t, size/(k-1)+1, blocks, "size %d", size)

		lines := strings.Split(strings.TrimSuffix(ciphertext.String(), "\n"), "\n")
		assert.Len(t, lines, blocks)
		for _, line := range lines {
			assert.Regexp(t, hexLine, line)
		}

		var recovered bytes.Buffer
		decrypted, err := DecryptStream(&ciphertext, &recovered, privateKey.N, privateKey.D)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, blocks, decrypted)
		assert.True(t, bytes.Equal(plaintext, recovered.Bytes()), "size %d", size)
	}
}

func TestEncryptStreamLeadingZeros(t *testing.T) {
	publicKey, privateKey := testKeys(t, 128, 13)

	plaintext := []byte{0, 0, 0, 1, 0, 0}
	var ciphertext, recovered bytes.Buffer
	_, err := EncryptStream(bytes.NewReader(plaintext), &ciphertext, publicKey.N, publicKey.E)
	require.NoError(t, err)
	_, err = DecryptStream(&ciphertext, &recovered, privateKey.N, privateKey.D)
	require.NoError(t, err)

	assert.Equal(t, plaintext, recovered.Bytes())
}

func TestDecryptStreamSkipsBlankLines(t *testing.T) {
	publicKey, privateKey := testKeys(t, 128, 17)

	var ciphertext bytes.Buffer
	_, err := EncryptStream(strings.NewReader("hello, world"), &ciphertext, publicKey.N, publicKey.E)
	require.NoError(t, err)

	padded := "\n" + strings.ReplaceAll(ciphertext.String(), "\n", "\n\n  \n")
	var recovered bytes.Buffer
	_, err = DecryptStream(strings.NewReader(padded), &recovered, privateKey.N, privateKey.D)
	require.NoError(t, err)
	assert.Equal(t, "hello, world", recovered.String())
}

func TestDecryptStreamMalformed(t *testing.T) {
	publicKey, privateKey := testKeys(t, 128, 19)

	noSentinel := numtheory.PowMod(big.NewInt(5), publicKey.E, publicKey.N)
	tests := map[string]string{
		"non-hex":     "not hex at all\n",
		"zero block":  "0\n",
		"no sentinel": noSentinel.Text(16) + "\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := DecryptStream(strings.NewReader(input), &out, privateKey.N, privateKey.D)
			assert.ErrorIs(t, err, cryptoDomain.ErrMalformedCiphertext)
		})
	}
}

func TestStreamsRejectSmallModulus(t *testing.T) {
	n := big.NewInt(0xFFFF)

	_, err := EncryptStream(strings.NewReader("x"), &bytes.Buffer{}, n, big.NewInt(3))
	assert.ErrorIs(t, err, cryptoDomain.ErrModulusTooSmall)

	_, err = DecryptStream(strings.NewReader("1\n"), &bytes.Buffer{}, n, big.NewInt(3))
	assert.ErrorIs(t, err, cryptoDomain.ErrModulusTooSmall)
}
