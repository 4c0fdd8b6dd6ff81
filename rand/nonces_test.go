package rand

import (
	"math/big"
	"testing"

	"github.com/davinci-labs/egcore/group"
)

func TestNoncesDeterministic(t *testing.T) {
	seed, _ := group.NewElementModQ(big.NewInt(42))
	n1 := NewNonces(seed)
	n2 := NewNonces(seed)
	if !n1.Get(3).Equal(n2.Get(3)) {
		t.Fatal("Nonces.Get is not deterministic given the same seed")
	}
}

func TestNoncesDifferByIndex(t *testing.T) {
	seed, _ := group.NewElementModQ(big.NewInt(42))
	n := NewNonces(seed)
	if n.Get(0).Equal(n.Get(1)) {
		t.Fatal("consecutive Nonces indices must not collide")
	}
}

func TestNoncesHeaderChangesOutput(t *testing.T) {
	seed, _ := group.NewElementModQ(big.NewInt(42))
	plain := NewNonces(seed)
	withHeader := NewNoncesWithHeader(seed, "contest-1")
	if plain.Get(0).Equal(withHeader.Get(0)) {
		t.Fatal("adding a header must change the derived nonce")
	}
}

func TestNoncesNextAdvancesCounter(t *testing.T) {
	seed, _ := group.NewElementModQ(big.NewInt(7))
	n := NewNonces(seed)
	first := n.Next()
	second := n.Next()
	if first.Equal(second) {
		t.Fatal("Next() must advance the counter between calls")
	}
	if !first.Equal(n.Get(0)) || !second.Equal(n.Get(1)) {
		t.Fatal("Next() must match Get() at the pre-advance index")
	}
}

func TestNoncesExtraHeaderDiffersFromPlainGet(t *testing.T) {
	seed, _ := group.NewElementModQ(big.NewInt(7))
	n := NewNonces(seed)
	if n.Get(0).Equal(n.GetWithExtraHeader(0, "extra")) {
		t.Fatal("GetWithExtraHeader must differ from Get for the same index")
	}
}
