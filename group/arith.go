package group

import (
	"errors"
	"math/big"
)

// ErrDivideByZero is returned by InvertModP when asked to invert zero.
var ErrDivideByZero = errors.New("group: cannot invert zero mod P")

// AddModQ computes (a + b) mod Q (§8 invariant 1).
func AddModQ(a, b ElementModQ) ElementModQ {
	r := new(big.Int).Add(a.v, b.v)
	r.Mod(r, Current.Q)
	return ElementModQ{v: r}
}

// SubModQ computes (a - b) mod Q.
func SubModQ(a, b ElementModQ) ElementModQ {
	r := new(big.Int).Sub(a.v, b.v)
	r.Mod(r, Current.Q)
	return ElementModQ{v: r}
}

// MulModQ computes (a * b) mod Q.
func MulModQ(a, b ElementModQ) ElementModQ {
	r := new(big.Int).Mul(a.v, b.v)
	r.Mod(r, Current.Q)
	return ElementModQ{v: r}
}

// NegateModQ computes (-a) mod Q.
func NegateModQ(a ElementModQ) ElementModQ {
	r := new(big.Int).Neg(a.v)
	r.Mod(r, Current.Q)
	return ElementModQ{v: r}
}

// AddModQFrom sums a nonempty list of ElementModQ mod Q, used for the
// ranged-proof aggregate nonce R = Σr_i (§4.8.2).
func AddModQFrom(elems ...ElementModQ) ElementModQ {
	r := new(big.Int)
	for _, e := range elems {
		r.Add(r, e.v)
	}
	r.Mod(r, Current.Q)
	return ElementModQ{v: r}
}

// MulModP computes (a * b) mod P (§8 invariant 2).
func MulModP(a, b ElementModP) ElementModP {
	r := new(big.Int).Mul(a.v, b.v)
	r.Mod(r, Current.P)
	return ElementModP{v: r}
}

// MulModPFrom computes the component-wise product of a nonempty list of
// ElementModP, used for ciphertext accumulation (§3, "ciphertextAccumulation").
func MulModPFrom(elems ...ElementModP) ElementModP {
	r := big.NewInt(1)
	for _, e := range elems {
		r.Mul(r, e.v)
		r.Mod(r, Current.P)
	}
	return ElementModP{v: r}
}

// PowModP computes base^exp mod P (§4.2.1). When base.IsFixedBase is set,
// the call is routed through the fixed-base lookup table (§4.2.2); a
// nonexistent/zero exponent exponentiates to 1 (the facade never fails on
// a zero exponent at this layer — only the underlying BigNum primitive
// does, per §4.1's "modExp fails when exponent-bit-width is zero", which
// this layer works around by special-casing zero explicitly).
func PowModP(base ElementModP, exp ElementModQ) ElementModP {
	if exp.v.Sign() == 0 {
		return OneModP()
	}
	if base.isFixedBase {
		return fixedBaseTableFor(base).Pow(exp)
	}
	r := new(big.Int).Exp(base.v, exp.v, Current.P)
	return ElementModP{v: r}
}

// GPowP is pow_mod_p(G, exp).
func GPowP(exp ElementModQ) ElementModP {
	return PowModP(GModP(), exp)
}

// InvertModP computes the modular inverse of a mod P via Fermat's little
// theorem (P is prime): a^(P-2) mod P.
func InvertModP(a ElementModP) (ElementModP, error) {
	if a.v.Sign() == 0 {
		return ElementModP{}, ErrDivideByZero
	}
	pMinus2 := new(big.Int).Sub(Current.P, big.NewInt(2))
	r := new(big.Int).Exp(a.v, pMinus2, Current.P)
	return ElementModP{v: r}, nil
}
