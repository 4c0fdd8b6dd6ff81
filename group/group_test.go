package group

import (
	"math/big"
	"testing"
)

func TestAddModQInBounds(t *testing.T) {
	a, _ := NewElementModQ(big.NewInt(5))
	b, _ := NewElementModQ(big.NewInt(7))
	sum := AddModQ(a, b)
	want := new(big.Int).Mod(big.NewInt(12), Current.Q)
	if sum.BigInt().Cmp(want) != 0 {
		t.Fatalf("AddModQ = %s, want %s", sum.BigInt(), want)
	}
	if !sum.IsInBounds() && sum.BigInt().Sign() != 0 {
		t.Fatalf("sum out of bounds: %s", sum.BigInt())
	}
}

func TestMulModPInBounds(t *testing.T) {
	a, _ := NewElementModP(big.NewInt(3))
	b, _ := NewElementModP(big.NewInt(5))
	p := MulModP(a, b)
	want := new(big.Int).Mod(big.NewInt(15), Current.P)
	if p.BigInt().Cmp(want) != 0 {
		t.Fatalf("MulModP = %s, want %s", p.BigInt(), want)
	}
}

func TestPowModPZeroExponentIsOne(t *testing.T) {
	g := GModP()
	r := PowModP(g, ZeroModQ())
	if !r.Equal(OneModP()) {
		t.Fatalf("g^0 = %s, want 1", r.BigInt())
	}
}

func TestPowModPSubgroup(t *testing.T) {
	five, _ := NewElementModQ(big.NewInt(5))
	g5 := GPowP(five)
	if !g5.IsValidResidue() {
		t.Fatalf("g^5 is not a valid residue: %s", g5.ToHex())
	}
}

func TestHexRoundTrip(t *testing.T) {
	v, _ := NewElementModP(big.NewInt(123456789))
	hexStr := v.ToHex()
	back, err := ElementModPFromHex(hexStr)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Fatalf("round trip mismatch: got %s want %s", back.ToHex(), v.ToHex())
	}
	if len(hexStr) != Current.PByteLen*2 {
		t.Fatalf("hex length = %d, want %d", len(hexStr), Current.PByteLen*2)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	v, _ := NewElementModQ(big.NewInt(42))
	b := v.ToBytes()
	if len(b) != Current.QByteLen {
		t.Fatalf("byte length = %d, want %d", len(b), Current.QByteLen)
	}
	back, err := ElementModQFromBytes(b)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Fatalf("round trip mismatch")
	}
}

func TestFixedBaseMatchesDirect(t *testing.T) {
	base := GModP().WithFixedBase()
	exp, _ := NewElementModQ(big.NewInt(54321))
	viaTable := PowModP(base, exp)
	viaDirect := PowModPDirect(ElementModP{v: base.BigInt()}, exp)
	if !viaTable.Equal(viaDirect) {
		t.Fatalf("fixed-base result %s != direct result %s", viaTable.ToHex(), viaDirect.ToHex())
	}
}

func TestInvertModP(t *testing.T) {
	a, _ := NewElementModP(big.NewInt(17))
	inv, err := InvertModP(a)
	if err != nil {
		t.Fatal(err)
	}
	product := MulModP(a, inv)
	if !product.Equal(OneModP()) {
		t.Fatalf("a * a^-1 = %s, want 1", product.ToHex())
	}
}

func TestInvertZeroFails(t *testing.T) {
	if _, err := InvertModP(ZeroModP()); err == nil {
		t.Fatal("expected error inverting zero")
	}
}

func TestOutOfBoundsRejected(t *testing.T) {
	tooBig := new(big.Int).Add(Current.P, big.NewInt(1))
	if _, err := NewElementModP(tooBig); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}

func TestBignumEngineRejectsEvenModulus(t *testing.T) {
	eng, err := NewEngine(Current.P, Limb64)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := eng.Mod(big.NewInt(4)); !ok {
		t.Fatal("Mod should succeed against the (odd) group modulus")
	}
	if _, err := NewEngine(big.NewInt(4), Limb64); err == nil {
		t.Fatal("expected failure constructing an engine over an even modulus")
	}
}

func TestBignumEngineModExpFailsOnZeroBitExponent(t *testing.T) {
	eng, _ := NewEngine(Current.P, Limb32)
	if _, ok := eng.ModExp(big.NewInt(2), new(big.Int)); ok {
		t.Fatal("expected failure on a zero-bit-width exponent")
	}
}

// TestLimbWidthParity exercises both declared limb widths against the same
// inputs; both delegate to the same math/big backend, so they must agree
// bit-for-bit (§4.1's cross-width differential requirement).
func TestLimbWidthParity(t *testing.T) {
	eng64, _ := NewEngine(Current.Q, Limb64)
	eng32, _ := NewEngine(Current.Q, Limb32)

	inputs := [][2]*big.Int{
		{big.NewInt(123), big.NewInt(456)},
		{big.NewInt(999999937), big.NewInt(7)},
	}
	for _, in := range inputs {
		a64 := eng64.AddCarry(in[0], in[1])
		a32 := eng32.AddCarry(in[0], in[1])
		if a64.Cmp(a32) != 0 {
			t.Fatalf("width divergence on add: %s vs %s", a64, a32)
		}
		m64 := eng64.Mul(in[0], in[1])
		m32 := eng32.Mul(in[0], in[1])
		if m64.Cmp(m32) != 0 {
			t.Fatalf("width divergence on mul: %s vs %s", m64, m32)
		}
	}
}

func TestDiscreteLogSmallValues(t *testing.T) {
	table := NewDiscreteLogTable()
	g := GModP()
	for m := uint64(0); m < 8; m++ {
		exp, _ := NewElementModQ(new(big.Int).SetUint64(m))
		target := GPowP(exp)
		got, err := table.Lookup(target, g, 32)
		if err != nil {
			t.Fatalf("lookup(%d): %v", m, err)
		}
		if got != m {
			t.Fatalf("lookup(%d) = %d", m, got)
		}
	}
}

func TestDiscreteLogNotFound(t *testing.T) {
	table := NewDiscreteLogTable()
	g := GModP()
	exp, _ := NewElementModQ(big.NewInt(1000))
	target := GPowP(exp)
	if _, err := table.Lookup(target, g, 10); err == nil {
		t.Fatal("expected discrete log search to fail within a too-small bound")
	}
}
