package cryptography

import (
	"fmt"
	"math/big"

	cryptoDomain "github.com/MikaPS/PublicKeyCryptography/internal/domain/crypto"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/entropy"
	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/numtheory"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// MakePub generates the public components of a key pair: primes p and q, the modulus n = p*q with
// at least nbits bits, and a public exponent e with 2 < e < n that is coprime to lambda(n).
//
// p takes a random share of the bits in [nbits/4, 3*nbits/4] and q the remainder. Both the modulus
// search and the exponent search repeat until they succeed. nbits should be at least 16; the
// generator refuses anything below MinModulusBits before getting here.
func MakePub(nbits uint, iters int, src entropy.Source) (p, q, n, e *big.Int) {
	lo := nbits / 4
	hi := 3 * nbits / 4
	if lo < 2 {
		lo = 2
	}
	if hi > nbits-2 {
		hi = nbits - 2
	}

	n = new(big.Int)
	for n.BitLen() < int(nbits) || p.Cmp(q) == 0 {
		pBits := uint(src.Intn(int(hi-lo+1))) + lo
		qBits := nbits - pBits

		p = numtheory.MakePrime(pBits, iters, src)
		q = numtheory.MakePrime(qBits, iters, src)
		n.Mul(p, q)
	}

	lambda := carmichael(p, q)

	for {
		e = src.Bits(nbits)
		if e.Cmp(bigTwo) > 0 && e.Cmp(n) < 0 && numtheory.GCD(e, lambda).Cmp(bigOne) == 0 {
			return p, q, n, e
		}
	}
}

// MakePriv returns the private exponent d = e^-1 mod lambda(p*q).
// It fails with ErrNoInverse when e is not coprime to lambda, which never happens for
// exponents produced by MakePub.
func MakePriv(e, p, q *big.Int) (*big.Int, error) {
	d, ok := numtheory.ModInverse(e, carmichael(p, q))
	if !ok {
		return nil, fmt.Errorf("failed to derive private exponent: %w", cryptoDomain.ErrNoInverse)
	}
	return d, nil
}

// carmichael returns lcm(p-1, q-1)
func carmichael(p, q *big.Int) *big.Int {
	pm1 := new(big.Int).Sub(p, bigOne)
	qm1 := new(big.Int).Sub(q, bigOne)
	return numtheory.LCM(pm1, qm1)
}
