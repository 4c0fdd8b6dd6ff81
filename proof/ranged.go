package proof

import (
	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
	egrand "github.com/davinci-labs/egcore/rand"
)

// RangedBranch is one of the L+1 disjunction branches of a Ranged proof: the
// branch claiming the contest accumulator encodes exactly its index.
type RangedBranch struct {
	A, B group.ElementModP
	C, V group.ElementModQ
}

// Ranged witnesses 0 ≤ m ≤ L for a contest accumulator (A, B) = (∏pad_i,
// ∏data_i) with aggregate nonce R = Σr_i (§4.8.2). It generalizes the
// Disjunctive proof's 2-branch OR into an (L+1)-branch OR over "accumulator
// encodes value j", reusing the same equality-of-discrete-logs statement
// that the generic Chaum-Pedersen proof (§4.8.4) proves for a single value.
type Ranged struct {
	Branches []RangedBranch
	C        group.ElementModQ
}

// NewRangedDeterministic builds a Ranged proof witnessing that m is the
// actual vote count, drawing randomness from the given Nonces stream.
func NewRangedDeterministic(m uint64, l uint64, accumulator elgamal.Ciphertext, aggregateNonce group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ, seed *egrand.Nonces) (Ranged, error) {
	return newRanged(m, l, accumulator, aggregateNonce, publicKey, extendedBaseHash, fromNonces(seed))
}

// NewRangedNonDeterministic builds a Ranged proof drawing randomness from
// the OS entropy source.
func NewRangedNonDeterministic(m uint64, l uint64, accumulator elgamal.Ciphertext, aggregateNonce group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ) (Ranged, error) {
	return newRanged(m, l, accumulator, aggregateNonce, publicKey, extendedBaseHash, fromEntropy())
}

func newRanged(m, l uint64, accumulator elgamal.Ciphertext, r group.ElementModQ, publicKey group.ElementModP, extendedBaseHash group.ElementModQ, draw randomQ) (Ranged, error) {
	if m > l {
		return Ranged{}, ErrWitnessOutOfRange
	}

	n := int(l) + 1
	branches := make([]RangedBranch, n)
	branchTargets := make([]group.ElementModP, n) // B_j = B * K^-j

	for j := 0; j < n; j++ {
		kj := group.PowModP(publicKey, group.FromUint64(uint64(j)))
		invKj, err := group.InvertModP(kj)
		if err != nil {
			return Ranged{}, err
		}
		branchTargets[j] = group.MulModP(accumulator.Data, invKj)
	}

	realIdx := int(m)
	var fakeChallengeSum group.ElementModQ = group.ZeroModQ()

	for j := 0; j < n; j++ {
		if j == realIdx {
			continue
		}
		cj, err := draw()
		if err != nil {
			return Ranged{}, err
		}
		vj, err := draw()
		if err != nil {
			return Ranged{}, err
		}
		invAcj, err := group.InvertModP(group.PowModP(accumulator.Pad, cj))
		if err != nil {
			return Ranged{}, err
		}
		invBcj, err := group.InvertModP(group.PowModP(branchTargets[j], cj))
		if err != nil {
			return Ranged{}, err
		}
		aj := group.MulModP(group.GPowP(vj), invAcj)
		bj := group.MulModP(group.PowModP(publicKey, vj), invBcj)
		branches[j] = RangedBranch{A: aj, B: bj, C: cj, V: vj}
		fakeChallengeSum = group.AddModQ(fakeChallengeSum, cj)
	}

	uReal, err := draw()
	if err != nil {
		return Ranged{}, err
	}
	aReal := group.GPowP(uReal)
	bReal := group.PowModP(publicKey, uReal)

	transcriptArgs := make([]any, 0, 4+2*n)
	transcriptArgs = append(transcriptArgs, hash.PrefixRangedProof, extendedBaseHash, publicKey, accumulator.Pad, accumulator.Data)
	for j := 0; j < n; j++ {
		if j == realIdx {
			transcriptArgs = append(transcriptArgs, aReal, bReal)
		} else {
			transcriptArgs = append(transcriptArgs, branches[j].A, branches[j].B)
		}
	}
	c := hash.Elems(transcriptArgs...)

	cReal := group.SubModQ(c, fakeChallengeSum)
	vReal := group.AddModQ(uReal, group.MulModQ(cReal, r))
	branches[realIdx] = RangedBranch{A: aReal, B: bReal, C: cReal, V: vReal}

	return Ranged{Branches: branches, C: c}, nil
}

// IsValid checks every predicate named in §4.8.2.
func (p Ranged) IsValid(accumulator elgamal.Ciphertext, publicKey group.ElementModP, extendedBaseHash group.ElementModQ) (bool, []string) {
	var failures []string
	note := func(ok bool, name string) {
		if !ok {
			failures = append(failures, name)
		}
	}

	note(accumulator.Pad.IsInBounds() && accumulator.Pad.IsValidResidue(), "accumulator.pad valid")
	note(accumulator.Data.IsInBounds() && accumulator.Data.IsValidResidue(), "accumulator.data valid")

	n := len(p.Branches)
	transcriptArgs := make([]any, 0, 4+2*n)
	transcriptArgs = append(transcriptArgs, hash.PrefixRangedProof, extendedBaseHash, publicKey, accumulator.Pad, accumulator.Data)

	cSum := group.ZeroModQ()
	for j, branch := range p.Branches {
		note(branch.A.IsInBounds() && branch.A.IsValidResidue(), "branch a in bounds/residue")
		note(branch.B.IsInBounds() && branch.B.IsValidResidue(), "branch b in bounds/residue")
		transcriptArgs = append(transcriptArgs, branch.A, branch.B)
		cSum = group.AddModQ(cSum, branch.C)

		kj := group.PowModP(publicKey, group.FromUint64(uint64(j)))
		invKj, err := group.InvertModP(kj)
		if err != nil {
			note(false, "public key nonzero for branch target")
			continue
		}
		target := group.MulModP(accumulator.Data, invKj)

		gv := group.GPowP(branch.V)
		aAc := group.MulModP(branch.A, group.PowModP(accumulator.Pad, branch.C))
		note(gv.Equal(aAc), "g^v == a * A^c (branch)")

		kv := group.PowModP(publicKey, branch.V)
		bBc := group.MulModP(branch.B, group.PowModP(target, branch.C))
		note(kv.Equal(bBc), "K^v == b * B_j^c (branch)")
	}
	note(cSum.Equal(p.C), "sum(c_j) == c")

	recomputedC := hash.Elems(transcriptArgs...)
	note(recomputedC.Equal(p.C), "c equals rehashed transcript")

	return len(failures) == 0, failures
}
