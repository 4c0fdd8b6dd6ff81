package proof

import (
	"math/big"

	"github.com/davinci-labs/egcore/group"
	egrand "github.com/davinci-labs/egcore/rand"
)

// randomQ draws one ElementModQ, either deterministically from a Nonces
// stream or non-deterministically from the OS-entropy-backed generator
// (§4.8, "they differ only in the randomness source").
type randomQ func() (group.ElementModQ, error)

// fromNonces builds a randomQ source that draws successive values from a
// deterministic Nonces sequence, used by every "deterministic" proof
// constructor.
func fromNonces(n *egrand.Nonces) randomQ {
	return func() (group.ElementModQ, error) {
		return n.Next(), nil
	}
}

// fromEntropy builds a randomQ source that draws from the OS-entropy-backed
// HMAC-DRBG, used by every "non-deterministic" proof constructor.
func fromEntropy() randomQ {
	return func() (group.ElementModQ, error) {
		b, err := egrand.GetBytes(32)
		if err != nil {
			return group.ElementModQ{}, err
		}
		v := new(big.Int).SetBytes(b)
		v.Mod(v, group.Current.Q)
		return group.NewElementModQ(v)
	}
}
