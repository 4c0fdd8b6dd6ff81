package proof

import (
	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
	egrand "github.com/davinci-labs/egcore/rand"
)

// Disjunctive witnesses that an ElGamal ciphertext (α, β) under nonce R
// encrypts 0 or 1 (§4.8.1).
type Disjunctive struct {
	A0, B0, A1, B1 group.ElementModP
	C0, C1, C      group.ElementModQ
	V0, V1         group.ElementModQ
}

// NewDisjunctiveDeterministic builds a Disjunctive proof drawing its
// randomness from the given Nonces stream, so the same (ciphertext, seed)
// pair always reproduces the same proof bytes.
func NewDisjunctiveDeterministic(plaintext uint64, ciphertext elgamal.Ciphertext, nonceR group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ, seed *egrand.Nonces) (Disjunctive, error) {
	return newDisjunctive(plaintext, ciphertext, nonceR, publicKey, extendedBaseHash, fromNonces(seed))
}

// NewDisjunctiveNonDeterministic builds a Disjunctive proof drawing its
// randomness from the OS entropy source.
func NewDisjunctiveNonDeterministic(plaintext uint64, ciphertext elgamal.Ciphertext, nonceR group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ) (Disjunctive, error) {
	return newDisjunctive(plaintext, ciphertext, nonceR, publicKey, extendedBaseHash, fromEntropy())
}

// NewDisjunctiveFromCommitments builds a Disjunctive proof from
// caller-supplied commitment exponents (u0, u1, w) instead of drawing them
// from a randomQ source. This is the entry point the precompute-backed
// selection encryption path (§4.9.1) uses: the real branch's exponent (u0
// for plaintext 0, u1 for plaintext 1) comes from a PrecomputedEncryption
// triple, and the other branch's exponent and w from the quadruple's two
// exponents, so no fresh entropy draw or Nonces advance happens at
// encryption time.
func NewDisjunctiveFromCommitments(plaintext uint64, ciphertext elgamal.Ciphertext, nonceR group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ, u0, u1, w group.ElementModQ) (Disjunctive, error) {
	if plaintext != 0 && plaintext != 1 {
		return Disjunctive{}, ErrInvalidPlaintext
	}
	return buildDisjunctive(plaintext, ciphertext, nonceR, publicKey, extendedBaseHash, u0, u1, w), nil
}

func newDisjunctive(plaintext uint64, ciphertext elgamal.Ciphertext, r group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ, draw randomQ) (Disjunctive, error) {
	if plaintext != 0 && plaintext != 1 {
		return Disjunctive{}, ErrInvalidPlaintext
	}

	u0, err := draw()
	if err != nil {
		return Disjunctive{}, err
	}
	u1, err := draw()
	if err != nil {
		return Disjunctive{}, err
	}
	w, err := draw()
	if err != nil {
		return Disjunctive{}, err
	}

	return buildDisjunctive(plaintext, ciphertext, r, publicKey, extendedBaseHash, u0, u1, w), nil
}

func buildDisjunctive(plaintext uint64, ciphertext elgamal.Ciphertext, r group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ, u0, u1, w group.ElementModQ) Disjunctive {
	var a0, b0, a1, b1 group.ElementModP
	if plaintext == 0 {
		a0 = group.GPowP(u0)
		b0 = group.PowModP(publicKey, u0)
		a1 = group.GPowP(u1)
		b1 = group.PowModP(publicKey, group.SubModQ(u1, w))
	} else {
		a0 = group.GPowP(u0)
		b0 = group.PowModP(publicKey, group.AddModQ(w, u0))
		a1 = group.GPowP(u1)
		b1 = group.PowModP(publicKey, u1)
	}

	c := hash.Elems(hash.PrefixSelectionEncryption, extendedBaseHash, publicKey, ciphertext.Pad, ciphertext.Data, a0, b0, a1, b1)

	var c0, c1, v0, v1 group.ElementModQ
	if plaintext == 0 {
		c0 = group.SubModQ(c, w)
		c1 = w
		v0 = group.SubModQ(u0, group.MulModQ(c0, r))
		v1 = group.SubModQ(u1, group.MulModQ(w, r))
	} else {
		c0 = w
		c1 = group.SubModQ(c, w)
		v0 = group.SubModQ(u0, group.MulModQ(w, r))
		v1 = group.SubModQ(u1, group.MulModQ(c1, r))
	}

	return Disjunctive{A0: a0, B0: b0, A1: a1, B1: b1, C0: c0, C1: c1, C: c, V0: v0, V1: v1}
}

// IsValid checks every predicate named in §4.8.1, returning false plus the
// list of failing predicate names so callers (and isValidEncryption) can log
// diagnostics without raising.
func (p Disjunctive) IsValid(ciphertext elgamal.Ciphertext, publicKey group.ElementModP, extendedBaseHash group.ElementModQ) (bool, []string) {
	var failures []string
	note := func(ok bool, name string) {
		if !ok {
			failures = append(failures, name)
		}
	}

	note(ciphertext.Pad.IsInBounds(), "ciphertext.pad in bounds")
	note(ciphertext.Data.IsInBounds(), "ciphertext.data in bounds")
	note(p.A0.IsInBounds(), "a0 in bounds")
	note(p.B0.IsInBounds(), "b0 in bounds")
	note(p.A1.IsInBounds(), "a1 in bounds")
	note(p.B1.IsInBounds(), "b1 in bounds")
	note(ciphertext.Pad.IsValidResidue(), "ciphertext.pad valid residue")
	note(ciphertext.Data.IsValidResidue(), "ciphertext.data valid residue")
	note(p.A0.IsValidResidue(), "a0 valid residue")
	note(p.B0.IsValidResidue(), "b0 valid residue")
	note(p.A1.IsValidResidue(), "a1 valid residue")
	note(p.B1.IsValidResidue(), "b1 valid residue")

	cSum := group.AddModQ(p.C0, p.C1)
	note(cSum.Equal(p.C), "c0 + c1 == c")

	recomputedC := hash.Elems(hash.PrefixSelectionEncryption, extendedBaseHash, publicKey, ciphertext.Pad, ciphertext.Data, p.A0, p.B0, p.A1, p.B1)
	note(recomputedC.Equal(p.C), "c equals rehashed transcript")

	// Responses are v = u - c*R, so each commitment is recovered as
	// g^v * alpha^c (resp. K^v * beta^c) and compared with a (resp. b).
	gv0AlphaC0 := group.MulModP(group.GPowP(p.V0), group.PowModP(ciphertext.Pad, p.C0))
	note(gv0AlphaC0.Equal(p.A0), "g^v0 * alpha^c0 == a0")

	gv1AlphaC1 := group.MulModP(group.GPowP(p.V1), group.PowModP(ciphertext.Pad, p.C1))
	note(gv1AlphaC1.Equal(p.A1), "g^v1 * alpha^c1 == a1")

	kv0BetaC0 := group.MulModP(group.PowModP(publicKey, p.V0), group.PowModP(ciphertext.Data, p.C0))
	note(kv0BetaC0.Equal(p.B0), "K^v0 * beta^c0 == b0")

	kv1MinusC1BetaC1 := group.MulModP(group.PowModP(publicKey, group.SubModQ(p.V1, p.C1)), group.PowModP(ciphertext.Data, p.C1))
	note(kv1MinusC1BetaC1.Equal(p.B1), "K^(v1-c1) * beta^c1 == b1")

	return len(failures) == 0, failures
}
