package crypto

// AlgorithmRSA represents the textbook RSA algorithm
const AlgorithmRSA = "RSA"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// BlockSentinel is the fixed first byte of every plaintext block.
// It keeps leading zero bytes of the payload from being lost when the block is read as an integer.
const BlockSentinel byte = 0xFF

// IdentityAlphabet maps base-62 digits to their values: 0-9, then A-Z, then a-z.
const IdentityAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// DefaultPublicKeyFile is the public key path used when none is given
const DefaultPublicKeyFile = "rsa.pub"

// DefaultPrivateKeyFile is the private key path used when none is given
const DefaultPrivateKeyFile = "rsa.priv"

// MinModulusBits is the smallest modulus size accepted by key generation
const MinModulusBits = 50

// MaxModulusBits is the largest modulus size accepted by key generation
const MaxModulusBits = 4096

// MinIterations is the smallest Miller-Rabin iteration count accepted by key generation
const MinIterations = 1

// MaxIterations is the largest Miller-Rabin iteration count accepted by key generation
const MaxIterations = 500
