package proof

import (
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
	egrand "github.com/davinci-labs/egcore/rand"
)

// Generic is the equality-of-discrete-logs Chaum-Pedersen proof of §4.8.4:
// it witnesses that a secret s simultaneously satisfies commitment = g^s and
// M = A^s, for publicly known A and M. Guardians use it during decryption to
// prove a partial decryption share is consistent with their published
// public-key commitment, without revealing s.
type Generic struct {
	A1, A2 group.ElementModP
	C, V   group.ElementModQ
}

// NewGenericDeterministic builds a Generic proof drawing randomness from the
// given Nonces stream.
func NewGenericDeterministic(secret group.ElementModQ, commitment, a, m group.ElementModP, seed *egrand.Nonces) (Generic, error) {
	return newGeneric(secret, commitment, a, m, fromNonces(seed))
}

// NewGenericNonDeterministic builds a Generic proof drawing randomness from
// the OS entropy source.
func NewGenericNonDeterministic(secret group.ElementModQ, commitment, a, m group.ElementModP) (Generic, error) {
	return newGeneric(secret, commitment, a, m, fromEntropy())
}

func newGeneric(secret group.ElementModQ, commitment, a, m group.ElementModP, draw randomQ) (Generic, error) {
	u, err := draw()
	if err != nil {
		return Generic{}, err
	}
	a1 := group.GPowP(u)
	a2 := group.PowModP(a, u)

	c := hash.Elems(hash.PrefixGenericChaumPedersen, group.GModP(), commitment, a, m, a1, a2)
	v := group.AddModQ(u, group.MulModQ(c, secret))

	return Generic{A1: a1, A2: a2, C: c, V: v}, nil
}

// IsValid checks g^v == A1 · commitment^c and A^v == A2 · M^c.
func (p Generic) IsValid(commitment, a, m group.ElementModP) (bool, []string) {
	var failures []string
	note := func(ok bool, name string) {
		if !ok {
			failures = append(failures, name)
		}
	}

	note(commitment.IsInBounds() && commitment.IsValidResidue(), "commitment valid")
	note(a.IsInBounds() && a.IsValidResidue(), "A valid")
	note(m.IsInBounds() && m.IsValidResidue(), "M valid")
	note(p.A1.IsInBounds() && p.A1.IsValidResidue(), "A1 valid")
	note(p.A2.IsInBounds() && p.A2.IsValidResidue(), "A2 valid")

	recomputedC := hash.Elems(hash.PrefixGenericChaumPedersen, group.GModP(), commitment, a, m, p.A1, p.A2)
	note(recomputedC.Equal(p.C), "c equals rehashed transcript")

	gv := group.GPowP(p.V)
	a1CommitmentC := group.MulModP(p.A1, group.PowModP(commitment, p.C))
	note(gv.Equal(a1CommitmentC), "g^v == A1 * commitment^c")

	av := group.PowModP(a, p.V)
	a2Mc := group.MulModP(p.A2, group.PowModP(m, p.C))
	note(av.Equal(a2Mc), "A^v == A2 * M^c")

	return len(failures) == 0, failures
}
