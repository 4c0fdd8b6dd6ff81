package precompute

import (
	"math/big"

	"github.com/davinci-labs/egcore/group"
)

func currentQ() *big.Int {
	return group.Current.Q
}

// bytesToBigIntModQ interprets b as a big-endian integer and reduces it mod
// Q, giving a uniformly-distributed-enough exponent for triple/quadruple
// generation (the bias from reducing 32 random bytes against a 256-bit Q is
// negligible for this group's bit lengths).
func bytesToBigIntModQ(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	return v.Mod(v, currentQ())
}
