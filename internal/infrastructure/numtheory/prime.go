package numtheory

import (
	"math/big"

	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/entropy"
)

var (
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)

	// candidates divisible by one of these (other than the prime itself) never reach Miller-Rabin
	sievePrimes = []*big.Int{big.NewInt(3), big.NewInt(5), big.NewInt(7), big.NewInt(11)}
)

// IsPrime reports whether n is probably prime using iters-1 rounds of Miller-Rabin with
// witnesses drawn from src. A composite survives with probability at most 4^-(iters-1).
//
// Values below 4 are reported prime and 4 always uses the witness 2. Callers must not pass n <= 1;
// such values are reported composite.
func IsPrime(n *big.Int, iters int, src entropy.Source) bool {
	if n.Cmp(bigOne) <= 0 {
		return false
	}
	if n.Cmp(bigFour) < 0 {
		return true
	}

	// n-1 = 2^s * r with r odd
	nMinus1 := new(big.Int).Sub(n, bigOne)
	r := new(big.Int).Set(nMinus1)
	s := 0
	for r.Bit(0) == 0 {
		r.Rsh(r, 1)
		s++
	}

	// witnesses are drawn from [2, n-2]
	witnessRange := new(big.Int).Sub(n, bigThree)

	for i := 1; i < iters; i++ {
		var a *big.Int
		if n.Cmp(bigFour) == 0 {
			a = new(big.Int).Set(bigTwo)
		} else {
			a = src.Below(witnessRange)
			a.Add(a, bigTwo)
		}

		y := PowMod(a, r, n)
		if y.Cmp(bigOne) == 0 || y.Cmp(nMinus1) == 0 {
			continue
		}

		for j := 1; j <= s-1 && y.Cmp(nMinus1) != 0; j++ {
			y = PowMod(y, bigTwo, n)
			if y.Cmp(bigOne) == 0 {
				return false
			}
		}
		if y.Cmp(nMinus1) != 0 {
			return false
		}
	}

	return true
}

// MakePrime returns a probable prime of exactly bits bits, testing each candidate with
// iters Miller-Rabin iterations. bits must be at least 2.
//
// Candidates are drawn until one passes; there is no retry limit. By the prime number
// theorem the expected number of draws grows linearly with bits.
func MakePrime(bits uint, iters int, src entropy.Source) *big.Int {
	top := new(big.Int).Lsh(bigOne, bits-1)
	rem := new(big.Int)

	for {
		// uniform in [2^(bits-1), 2^bits - 1], forced odd
		p := src.Bits(bits - 1)
		p.Or(p, top)
		p.SetBit(p, 0, 1)

		if divisibleBySmallPrime(p, rem) {
			continue
		}
		if IsPrime(p, iters, src) {
			return p
		}
	}
}

func divisibleBySmallPrime(p, rem *big.Int) bool {
	for _, sp := range sievePrimes {
		if p.Cmp(sp) == 0 {
			return false
		}
		if rem.Mod(p, sp).Sign() == 0 {
			return true
		}
	}
	return false
}
