package ballot

import (
	"fmt"

	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/hash"
)

// selectionCryptoHash computes H(ciphertext.pad, ciphertext.data) (§3,
// CiphertextBallotSelection invariant).
func selectionCryptoHash(ct elgamal.Ciphertext) group.ElementModQ {
	return hash.Elems(ct.Pad, ct.Data)
}

// contestCryptoHash computes H(Q̂ ∥ "contest-prefix" ∥ sequenceOrder ∥ K ∥
// {selection.cryptoHash}) (§8 invariant 13).
func contestCryptoHash(extendedBaseHash group.ElementModQ, sequenceOrder uint64, publicKey group.ElementModP, selections []CiphertextBallotSelection) group.ElementModQ {
	hashes := make([]group.ElementModQ, len(selections))
	for i, s := range selections {
		hashes[i] = s.CryptoHash
	}
	return hash.Elems(extendedBaseHash, hash.PrefixContestPrefix, sequenceOrder, publicKey, hashes)
}

// ballotCryptoHash computes H(Q̂ ∥ "ballot-code-prefix" ∥ aux ∥
// {contest.cryptoHash}) (§4.9 step 8; §8 invariant 14). aux binds the
// ballot-code chain: the seed inherited from the previous ballot (or the
// mediator's device hash for the first ballot), the ballot's own object id,
// and its timestamp.
func ballotCryptoHash(extendedBaseHash, ballotCodeSeed group.ElementModQ, objectID string, timestamp int64, contests []CiphertextBallotContest) group.ElementModQ {
	hashes := make([]group.ElementModQ, len(contests))
	for i, c := range contests {
		hashes[i] = c.CryptoHash
	}
	return hash.Elems(extendedBaseHash, hash.PrefixBallotCodePrefix, ballotCodeSeed, objectID, uint64(timestamp), hashes)
}

// IsValidEncryption validates a ciphertext selection: its crypto hash and
// its disjunctive proof (§7). The description hash is not checked.
func (s CiphertextBallotSelection) IsValidEncryption(extendedBaseHash group.ElementModQ, publicKey group.ElementModP) (bool, []string) {
	var failures []string
	note := func(ok bool, name string) {
		if !ok {
			failures = append(failures, name)
		}
	}

	recomputed := selectionCryptoHash(s.Ciphertext)
	note(recomputed.Equal(s.CryptoHash), fmt.Sprintf("selection %s: cryptoHash matches ciphertext", s.ObjectID))

	ok, proofFailures := s.Proof.IsValid(s.Ciphertext, publicKey, extendedBaseHash)
	if !ok {
		for _, f := range proofFailures {
			failures = append(failures, fmt.Sprintf("selection %s: proof %s", s.ObjectID, f))
		}
	}

	return len(failures) == 0, failures
}

// IsValidEncryption recursively validates a ciphertext contest: every
// selection, the homomorphic accumulation, the contest crypto hash, and the
// ranged proof (§7, §8 invariant 13).
func (c CiphertextBallotContest) IsValidEncryption(extendedBaseHash group.ElementModQ, publicKey group.ElementModP) (bool, []string) {
	var failures []string

	for _, s := range c.Selections {
		ok, selFailures := s.IsValidEncryption(extendedBaseHash, publicKey)
		if !ok {
			failures = append(failures, selFailures...)
		}
	}

	cts := make([]elgamal.Ciphertext, len(c.Selections))
	for i, s := range c.Selections {
		cts[i] = s.Ciphertext
	}
	accumulated, err := elgamal.Add(cts...)
	if err != nil {
		failures = append(failures, fmt.Sprintf("contest %s: accumulation: %v", c.ObjectID, err))
	} else if !accumulated.Pad.Equal(c.CiphertextAccumulation.Pad) || !accumulated.Data.Equal(c.CiphertextAccumulation.Data) {
		failures = append(failures, fmt.Sprintf("contest %s: ciphertextAccumulation == product(selections.ciphertext)", c.ObjectID))
	}

	recomputed := contestCryptoHash(extendedBaseHash, c.SequenceOrder, publicKey, c.Selections)
	if !recomputed.Equal(c.CryptoHash) {
		failures = append(failures, fmt.Sprintf("contest %s: cryptoHash matches selections", c.ObjectID))
	}

	ok, proofFailures := c.Proof.IsValid(c.CiphertextAccumulation, publicKey, extendedBaseHash)
	if !ok {
		for _, f := range proofFailures {
			failures = append(failures, fmt.Sprintf("contest %s: proof %s", c.ObjectID, f))
		}
	}

	return len(failures) == 0, failures
}

// IsValidEncryption recursively validates an entire ciphertext ballot:
// every contest and the top-level ballot crypto hash / ballot code (§7, §8
// invariant 14). It does not raise; callers that need a hard failure (the
// pipeline's verifyProofs option) convert a false result into
// ErrInvalidEncryption themselves.
func (b CiphertextBallot) IsValidEncryption(extendedBaseHash group.ElementModQ, publicKey group.ElementModP) (bool, []string) {
	var failures []string

	for _, c := range b.Contests {
		ok, contestFailures := c.IsValidEncryption(extendedBaseHash, publicKey)
		if !ok {
			failures = append(failures, contestFailures...)
		}
	}

	recomputed := ballotCryptoHash(extendedBaseHash, b.BallotCodeSeed, b.ObjectID, b.Timestamp, b.Contests)
	if !recomputed.Equal(b.CryptoHash) {
		failures = append(failures, "ballot: cryptoHash matches contests")
	}
	if !b.BallotCode.Equal(b.CryptoHash) {
		failures = append(failures, "ballot: ballotCode equals cryptoHash")
	}

	return len(failures) == 0, failures
}
