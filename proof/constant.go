package proof

import (
	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
	egrand "github.com/davinci-labs/egcore/rand"
)

// Constant witnesses that an ElGamal ciphertext encrypts a fixed constant L
// known to the verifier (§4.8.3). Fields: (a, b, c, v, L).
type Constant struct {
	A, B group.ElementModP
	C, V group.ElementModQ
	L    uint64
}

// NewConstantDeterministic builds a Constant proof drawing randomness from
// the given Nonces stream.
func NewConstantDeterministic(l uint64, ciphertext elgamal.Ciphertext, nonceR group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ, seed *egrand.Nonces) (Constant, error) {
	return newConstant(l, ciphertext, nonceR, publicKey, extendedBaseHash, fromNonces(seed))
}

// NewConstantNonDeterministic builds a Constant proof drawing randomness
// from the OS entropy source.
func NewConstantNonDeterministic(l uint64, ciphertext elgamal.Ciphertext, nonceR group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ) (Constant, error) {
	return newConstant(l, ciphertext, nonceR, publicKey, extendedBaseHash, fromEntropy())
}

func newConstant(l uint64, ciphertext elgamal.Ciphertext, r group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ, draw randomQ) (Constant, error) {
	u, err := draw()
	if err != nil {
		return Constant{}, err
	}
	a := group.GPowP(u)
	b := group.PowModP(publicKey, u)

	c := hash.Elems(hash.PrefixConstantProof, extendedBaseHash, ciphertext.Pad, ciphertext.Data, a, b)
	v := group.AddModQ(u, group.MulModQ(c, r))

	return Constant{A: a, B: b, C: c, V: v, L: l}, nil
}

// IsValid checks g^v == a · α^c and K^v · K^(L·c) == b · β^c, the second
// equation being the one a base-K ciphertext β = K^(L+R) satisfies.
func (p Constant) IsValid(ciphertext elgamal.Ciphertext, publicKey group.ElementModP, extendedBaseHash group.ElementModQ) (bool, []string) {
	var failures []string
	note := func(ok bool, name string) {
		if !ok {
			failures = append(failures, name)
		}
	}

	note(ciphertext.Pad.IsInBounds() && ciphertext.Pad.IsValidResidue(), "ciphertext.pad valid")
	note(ciphertext.Data.IsInBounds() && ciphertext.Data.IsValidResidue(), "ciphertext.data valid")
	note(p.A.IsInBounds() && p.A.IsValidResidue(), "a valid")
	note(p.B.IsInBounds() && p.B.IsValidResidue(), "b valid")

	recomputedC := hash.Elems(hash.PrefixConstantProof, extendedBaseHash, ciphertext.Pad, ciphertext.Data, p.A, p.B)
	note(recomputedC.Equal(p.C), "c equals rehashed transcript")

	gv := group.GPowP(p.V)
	aAlphaC := group.MulModP(p.A, group.PowModP(ciphertext.Pad, p.C))
	note(gv.Equal(aAlphaC), "g^v == a * alpha^c")

	klc := group.PowModP(publicKey, group.MulModQ(group.FromUint64(p.L), p.C))
	kv := group.PowModP(publicKey, p.V)
	kvKlc := group.MulModP(kv, klc)
	bBetaC := group.MulModP(p.B, group.PowModP(ciphertext.Data, p.C))
	note(kvKlc.Equal(bBetaC), "K^v * K^(L*c) == b * beta^c")

	return len(failures) == 0, failures
}
