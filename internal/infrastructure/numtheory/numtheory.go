/*
Package numtheory implements the number theory kernel RSA is built on: greatest common divisor,
modular inverse, modular exponentiation and Miller-Rabin prime generation.

Only the primitive arithmetic of math/big (add, multiply, divide, compare, bit length) is used;
GCD, ModInverse, PowMod and IsPrime are implemented here rather than delegated to
big.Int.GCD, big.Int.ModInverse, big.Int.Exp and big.Int.ProbablyPrime.

None of these routines run in constant time.
*/
package numtheory

import (
	"math/big"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// GCD returns the greatest common divisor of the non-negative integers a and b using
// repeated remainders. a and b are not modified. GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	aa := new(big.Int).Set(a)
	bb := new(big.Int).Set(b)
	t := new(big.Int)

	for bb.Sign() != 0 {
		t.Set(bb)
		bb.Mod(aa, bb)
		aa.Set(t)
	}

	return aa
}

// LCM returns the least common multiple of a and b, computed as a*b / GCD(a, b).
// LCM(0, 0) is 0.
func LCM(a, b *big.Int) *big.Int {
	g := GCD(a, b)
	if g.Sign() == 0 {
		return new(big.Int)
	}
	l := new(big.Int).Mul(a, b)
	return l.Quo(l, g)
}

// ModInverse returns t in [0, n) such that a*t ≡ 1 (mod n) using the extended Euclidean
// algorithm. ok is false when a and n are not coprime, in which case no inverse exists.
func ModInverse(a, n *big.Int) (t *big.Int, ok bool) {
	// (r, r') and (t, t') start at (n, a) and (0, 1)
	r := new(big.Int).Set(n)
	rp := new(big.Int).Set(a)
	t = new(big.Int)
	tp := new(big.Int).Set(bigOne)

	q := new(big.Int)
	tmp := new(big.Int)

	for rp.Sign() != 0 {
		q.Div(r, rp)

		// (r, r') <- (r', r - q*r')
		tmp.Mul(q, rp)
		tmp.Sub(r, tmp)
		r, rp = rp, r
		rp.Set(tmp)

		// (t, t') <- (t', t - q*t')
		tmp.Mul(q, tp)
		tmp.Sub(t, tmp)
		t, tp = tp, t
		tp.Set(tmp)
	}

	if r.Cmp(bigOne) > 0 {
		return nil, false
	}
	if t.Sign() < 0 {
		t.Add(t, n)
	}

	return t, true
}

// PowMod returns a^d mod n by square-and-multiply. d must be non-negative and n positive.
// PowMod(a, 0, n) is 1 mod n, so PowMod(a, d, 1) is always 0.
func PowMod(a, d, n *big.Int) *big.Int {
	v := new(big.Int).Mod(bigOne, n)
	p := new(big.Int).Mod(a, n)
	dd := new(big.Int).Set(d)

	for dd.Sign() > 0 {
		if dd.Bit(0) == 1 {
			v.Mul(v, p)
			v.Mod(v, n)
		}
		p.Mul(p, p)
		p.Mod(p, n)
		dd.Rsh(dd, 1)
	}

	return v
}
