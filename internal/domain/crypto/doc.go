// Package crypto defines the core interfaces and structures for textbook RSA key material,
// including key generation, identity signing and verification, and block encryption and decryption of streams.
package crypto
