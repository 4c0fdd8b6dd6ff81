package precompute

import (
	"math/big"
	"testing"

	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
)

func testKeyPair(t *testing.T) elgamal.KeyPair {
	t.Helper()
	secret, _ := group.NewElementModQ(big.NewInt(9999))
	kp, err := elgamal.NewKeyPair(secret)
	if err != nil {
		t.Fatal(err)
	}
	return kp
}

func TestStartFillsQueues(t *testing.T) {
	kp := testKeyPair(t)
	b := New()
	b.Initialize(kp.PublicKey, 5)
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.PopSelection(); !ok {
		t.Fatal("expected at least one selection after Start")
	}
}

func TestPoppedTripleMatchesBoundKey(t *testing.T) {
	// Invariant 15: every popped triple (r, A, B) satisfies A = g^r, B = K^r.
	kp := testKeyPair(t)
	b := New()
	b.Initialize(kp.PublicKey, 5)
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	triple, ok := b.PopTriple()
	if !ok {
		// every third iteration produces two extra triples; with
		// maxQueueSize=5, iterations 0 and 3 each contribute two, so this
		// must always succeed.
		t.Fatal("expected at least one triple after Start")
	}
	wantA := group.GPowP(triple.Exp)
	wantB := group.PowModP(kp.PublicKey, triple.Exp)
	if !triple.GToExp.Equal(wantA) || !triple.PubkeyToExp.Equal(wantB) {
		t.Fatal("popped triple is inconsistent with its own exponent")
	}
}

func TestRebindDrainsBothQueues(t *testing.T) {
	// Invariant 16: rebinding drains both queues before the new key's values
	// are observable.
	kp1 := testKeyPair(t)
	secret2, _ := group.NewElementModQ(big.NewInt(31337))
	kp2, err := elgamal.NewKeyPair(secret2)
	if err != nil {
		t.Fatal(err)
	}

	b := New()
	b.Initialize(kp1.PublicKey, 5)
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.PopSelection(); !ok {
		t.Fatal("expected queued selections before rebind")
	}

	b.Initialize(kp2.PublicKey, 0)
	if _, ok := b.PopTriple(); ok {
		t.Fatal("triple queue must be empty immediately after rebind")
	}
	if _, ok := b.PopSelection(); ok {
		t.Fatal("selection queue must be empty immediately after rebind")
	}
	if !b.BoundTo(kp2.PublicKey) {
		t.Fatal("buffer should report bound to the new key after rebind")
	}
}

func TestGetTripleFallsBackWhenDrained(t *testing.T) {
	kp := testKeyPair(t)
	b := New()
	b.Initialize(kp.PublicKey, 0)
	tr, err := b.GetTriple()
	if err != nil {
		t.Fatal(err)
	}
	if !tr.GToExp.Equal(group.GPowP(tr.Exp)) {
		t.Fatal("fallback-generated triple is inconsistent")
	}
}

func TestOperationsFailWhenUnbound(t *testing.T) {
	b := New()
	if err := b.Start(); err != ErrNotBound {
		t.Fatalf("expected ErrNotBound, got %v", err)
	}
}
