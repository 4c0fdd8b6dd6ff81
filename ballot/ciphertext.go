package ballot

import (
	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
	"github.com/davinci-labs/egcore/proof"
)

// State is a ciphertext ballot's lifecycle stage (§3, "CiphertextBallot").
// Transitions are monotone: once cast, spoiled, or challenged, no further
// transition is legal.
type State int

const (
	StateUnknown State = iota
	StateCast
	StateSpoiled
	StateChallenged
)

func (s State) String() string {
	switch s {
	case StateCast:
		return "cast"
	case StateSpoiled:
		return "spoiled"
	case StateChallenged:
		return "challenged"
	default:
		return "unknown"
	}
}

// CiphertextBallotSelection is one encrypted selection (§3).
type CiphertextBallotSelection struct {
	ObjectID        string
	SequenceOrder   uint64
	DescriptionHash group.ElementModQ
	Ciphertext      elgamal.Ciphertext
	IsPlaceholder   bool
	Nonce           *group.ElementModQ
	CryptoHash      group.ElementModQ
	Proof           proof.Disjunctive
	ExtendedData    *elgamal.HashedElGamalCiphertext
}

func (s *CiphertextBallotSelection) eraseNonce() {
	if s.Nonce == nil {
		return
	}
	s.Nonce.Zeroize()
	s.Nonce = nil
}

// CiphertextBallotContest is one encrypted contest: its selections, the
// homomorphic accumulation over them, and the ranged proof witnessing that
// the accumulation encodes a legal vote count (§3).
type CiphertextBallotContest struct {
	ObjectID               string
	SequenceOrder          uint64
	DescriptionHash        group.ElementModQ
	Selections             []CiphertextBallotSelection
	Nonce                  *group.ElementModQ
	CiphertextAccumulation elgamal.Ciphertext
	CryptoHash             group.ElementModQ
	Proof                  proof.Ranged
	ExtendedData           elgamal.HashedElGamalCiphertext
}

func (c *CiphertextBallotContest) eraseNonce() {
	if c.Nonce != nil {
		c.Nonce.Zeroize()
		c.Nonce = nil
	}
	for i := range c.Selections {
		c.Selections[i].eraseNonce()
	}
}

// CiphertextBallot is the encrypted ballot C9 produces (§3).
type CiphertextBallot struct {
	ObjectID       string
	BallotStyleID  string
	ManifestHash   group.ElementModQ
	BallotCodeSeed group.ElementModQ
	Contests       []CiphertextBallotContest
	BallotCode     group.ElementModQ
	Timestamp      int64
	Nonce          *group.ElementModQ
	CryptoHash     group.ElementModQ
	State          State
}

func (b *CiphertextBallot) eraseNonces() {
	if b.Nonce != nil {
		b.Nonce.Zeroize()
		b.Nonce = nil
	}
	for i := range b.Contests {
		b.Contests[i].eraseNonce()
	}
}

func (b *CiphertextBallot) transition(target State) error {
	if b.State != StateUnknown {
		return ErrAlreadyFinalized
	}
	b.State = target
	b.eraseNonces()
	return nil
}

// Cast transitions the ballot to the cast state and erases its nonce tree
// (§4.9, "Ballot state transitions"; §8 invariant 11).
func (b *CiphertextBallot) Cast() error { return b.transition(StateCast) }

// Spoil transitions the ballot to the spoiled state and erases its nonce
// tree.
func (b *CiphertextBallot) Spoil() error { return b.transition(StateSpoiled) }

// Challenge transitions the ballot to the challenged state and erases its
// nonce tree.
func (b *CiphertextBallot) Challenge() error { return b.transition(StateChallenged) }

// IsSubmitted reports whether the ballot has reached a terminal state,
// i.e. whether it may be treated as a SubmittedBallot (§3).
func (b *CiphertextBallot) IsSubmitted() bool { return b.State != StateUnknown }

// SubmittedBallot is a ciphertext ballot whose state is terminal and whose
// nonce tree has been erased (§3). It shares CiphertextBallot's shape; the
// distinction is purely a lifecycle guarantee, not a separate type.
type SubmittedBallot = CiphertextBallot
