package hash

import (
	"math/big"
	"testing"

	"github.com/davinci-labs/egcore/group"
)

func TestElemsDeterministic(t *testing.T) {
	a, _ := group.NewElementModP(big.NewInt(7))
	b, _ := group.NewElementModQ(big.NewInt(11))
	h1 := Elems(PrefixParameterHash, a, b, uint64(3))
	h2 := Elems(PrefixParameterHash, a, b, uint64(3))
	if !h1.Equal(h2) {
		t.Fatal("hash_elems is not deterministic for identical inputs")
	}
}

func TestElemsSensitiveToOrder(t *testing.T) {
	a, _ := group.NewElementModP(big.NewInt(7))
	b, _ := group.NewElementModP(big.NewInt(11))
	h1 := Elems(a, b)
	h2 := Elems(b, a)
	if h1.Equal(h2) {
		t.Fatal("hash_elems must be sensitive to argument order")
	}
}

func TestElemsNilAndZeroCollapseToSameCanonicalForm(t *testing.T) {
	h1 := Elems(nil)
	h2 := Elems(uint64(0))
	if !h1.Equal(h2) {
		t.Fatal("nil and uint64(0) should both canonicalize to \"null\"")
	}
}

func TestElemsInBounds(t *testing.T) {
	h := Elems("some string", uint64(42))
	if !h.IsInBounds() && !h.IsZero() {
		t.Fatalf("hash result out of bounds: %s", h.ToHex())
	}
}

func TestElemsSliceRecursion(t *testing.T) {
	x, _ := group.NewElementModQ(big.NewInt(1))
	y, _ := group.NewElementModQ(big.NewInt(2))
	h1 := Elems([]group.ElementModQ{x, y})
	h2 := Elems(Elems(x, y))
	if !h1.Equal(h2) {
		t.Fatal("a slice argument must hash as the recursive hash of its elements")
	}
}

func TestElemsEmptySliceIsNull(t *testing.T) {
	h1 := Elems([]group.ElementModQ{})
	h2 := Elems(nil)
	if !h1.Equal(h2) {
		t.Fatal("an empty slice should canonicalize the same as nil")
	}
}

type fakeHashable struct{ q group.ElementModQ }

func (f fakeHashable) CryptoHash() group.ElementModQ { return f.q }

func TestElemsCryptoHashable(t *testing.T) {
	q, _ := group.NewElementModQ(big.NewInt(99))
	h1 := Elems(fakeHashable{q: q})
	h2 := Elems(q)
	if !h1.Equal(h2) {
		t.Fatal("a CryptoHashable should hash as its own CryptoHash()")
	}
}
