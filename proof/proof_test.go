package proof

import (
	"math/big"
	"testing"

	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
	egrand "github.com/davinci-labs/egcore/rand"
)

func testSetup(t *testing.T) (elgamal.KeyPair, group.ElementModQ) {
	t.Helper()
	secret, _ := group.NewElementModQ(big.NewInt(2))
	kp, err := elgamal.NewKeyPair(secret)
	if err != nil {
		t.Fatal(err)
	}
	extendedBaseHash, _ := group.NewElementModQ(big.NewInt(3))
	return kp, extendedBaseHash
}

func TestDisjunctiveProofRoundtripPlaintext0(t *testing.T) {
	// S3: plaintext 0, nonce r = 1, K = g^2.
	kp, qHat := testSetup(t)
	nonce, _ := group.NewElementModQ(big.NewInt(1))
	ct, err := elgamal.Encrypt(0, nonce, kp.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	seed, _ := group.NewElementModQ(big.NewInt(77))
	nonces := egrand.NewNonces(seed)

	p, err := NewDisjunctiveDeterministic(0, ct, nonce, kp.PublicKey, qHat, nonces)
	if err != nil {
		t.Fatal(err)
	}
	ok, failures := p.IsValid(ct, kp.PublicKey, qHat)
	if !ok {
		t.Fatalf("valid proof rejected: %v", failures)
	}

	tampered := p
	tampered.C = group.AddModQ(p.C, group.OneModQ())
	if ok, _ := tampered.IsValid(ct, kp.PublicKey, qHat); ok {
		t.Fatal("mutated challenge must be rejected")
	}
}

func TestDisjunctiveProofRoundtripPlaintext1(t *testing.T) {
	kp, qHat := testSetup(t)
	nonce, _ := group.NewElementModQ(big.NewInt(5))
	ct, err := elgamal.Encrypt(1, nonce, kp.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	seed, _ := group.NewElementModQ(big.NewInt(88))
	nonces := egrand.NewNonces(seed)
	p, err := NewDisjunctiveDeterministic(1, ct, nonce, kp.PublicKey, qHat, nonces)
	if err != nil {
		t.Fatal(err)
	}
	ok, failures := p.IsValid(ct, kp.PublicKey, qHat)
	if !ok {
		t.Fatalf("valid proof rejected: %v", failures)
	}
}

func TestDisjunctiveProofRejectsInvalidPlaintext(t *testing.T) {
	kp, _ := testSetup(t)
	nonce, _ := group.NewElementModQ(big.NewInt(1))
	ct, _ := elgamal.Encrypt(0, nonce, kp.PublicKey)
	seed, _ := group.NewElementModQ(big.NewInt(1))
	nonces := egrand.NewNonces(seed)
	qHat, _ := group.NewElementModQ(big.NewInt(3))

	if _, err := NewDisjunctiveDeterministic(2, ct, nonce, kp.PublicKey, qHat, nonces); err != ErrInvalidPlaintext {
		t.Fatalf("expected ErrInvalidPlaintext, got %v", err)
	}
}

func TestDisjunctiveMutatedCiphertextRejected(t *testing.T) {
	// Invariant 10: mutating a ciphertext byte and re-running validation
	// (without re-proving) must reject.
	kp, qHat := testSetup(t)
	nonce, _ := group.NewElementModQ(big.NewInt(1))
	ct, _ := elgamal.Encrypt(0, nonce, kp.PublicKey)
	seed, _ := group.NewElementModQ(big.NewInt(42))
	nonces := egrand.NewNonces(seed)
	p, err := NewDisjunctiveDeterministic(0, ct, nonce, kp.PublicKey, qHat, nonces)
	if err != nil {
		t.Fatal(err)
	}

	mutated := ct
	mutated.Data = group.MulModP(ct.Data, group.GModP())
	if ok, _ := p.IsValid(mutated, kp.PublicKey, qHat); ok {
		t.Fatal("proof must reject a mutated ciphertext")
	}
}

func TestRangedProofEveryWitnessInRangeValidates(t *testing.T) {
	kp, qHat := testSetup(t)
	const l = 3
	for m := uint64(0); m <= l; m++ {
		cts := make([]elgamal.Ciphertext, l)
		nonces := make([]group.ElementModQ, l)
		for i := uint64(0); i < l; i++ {
			r, _ := group.NewElementModQ(big.NewInt(int64(10 + i)))
			nonces[i] = r
			var vote uint64
			if i < m {
				vote = 1
			}
			ct, err := elgamal.Encrypt(vote, r, kp.PublicKey)
			if err != nil {
				t.Fatal(err)
			}
			cts[i] = ct
		}
		accumulator, err := elgamal.Add(cts...)
		if err != nil {
			t.Fatal(err)
		}
		aggregateNonce := group.AddModQFrom(nonces...)

		seed, _ := group.NewElementModQ(big.NewInt(int64(1000 + m)))
		seq := egrand.NewNonces(seed)
		p, err := NewRangedDeterministic(m, l, accumulator, aggregateNonce, kp.PublicKey, qHat, seq)
		if err != nil {
			t.Fatalf("m=%d: %v", m, err)
		}
		ok, failures := p.IsValid(accumulator, kp.PublicKey, qHat)
		if !ok {
			t.Fatalf("m=%d: valid ranged proof rejected: %v", m, failures)
		}
	}
}

func TestRangedProofWitnessAboveLRejected(t *testing.T) {
	kp, _ := testSetup(t)
	nonce, _ := group.NewElementModQ(big.NewInt(1))
	ct, _ := elgamal.Encrypt(1, nonce, kp.PublicKey)
	qHat, _ := group.NewElementModQ(big.NewInt(3))
	seed, _ := group.NewElementModQ(big.NewInt(5))
	seq := egrand.NewNonces(seed)

	if _, err := NewRangedDeterministic(5, 3, ct, nonce, kp.PublicKey, qHat, seq); err != ErrWitnessOutOfRange {
		t.Fatalf("expected ErrWitnessOutOfRange, got %v", err)
	}
}

func TestConstantProofRoundtrip(t *testing.T) {
	kp, qHat := testSetup(t)
	nonce, _ := group.NewElementModQ(big.NewInt(9))
	ct, err := elgamal.Encrypt(7, nonce, kp.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	seed, _ := group.NewElementModQ(big.NewInt(17))
	nonces := egrand.NewNonces(seed)

	p, err := NewConstantDeterministic(7, ct, nonce, kp.PublicKey, qHat, nonces)
	if err != nil {
		t.Fatal(err)
	}
	ok, failures := p.IsValid(ct, kp.PublicKey, qHat)
	if !ok {
		t.Fatalf("valid constant proof rejected: %v", failures)
	}
}

func TestConstantProofRejectsWrongL(t *testing.T) {
	kp, qHat := testSetup(t)
	nonce, _ := group.NewElementModQ(big.NewInt(9))
	ct, _ := elgamal.Encrypt(7, nonce, kp.PublicKey)
	seed, _ := group.NewElementModQ(big.NewInt(17))
	nonces := egrand.NewNonces(seed)

	p, err := NewConstantDeterministic(7, ct, nonce, kp.PublicKey, qHat, nonces)
	if err != nil {
		t.Fatal(err)
	}
	p.L = 8
	if ok, _ := p.IsValid(ct, kp.PublicKey, qHat); ok {
		t.Fatal("proof claiming the wrong constant must be rejected")
	}
}

func TestGenericProofRoundtrip(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(21))
	commitment := group.GPowP(secret)
	a := group.GModP() // any base A; here reused as g for simplicity
	m := group.PowModP(a, secret)

	seed, _ := group.NewElementModQ(big.NewInt(55))
	nonces := egrand.NewNonces(seed)
	p, err := NewGenericDeterministic(secret, commitment, a, m, nonces)
	if err != nil {
		t.Fatal(err)
	}
	ok, failures := p.IsValid(commitment, a, m)
	if !ok {
		t.Fatalf("valid generic proof rejected: %v", failures)
	}
}

func TestGenericProofRejectsInconsistentShare(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(21))
	commitment := group.GPowP(secret)
	a := group.GModP()
	wrongSecret, _ := group.NewElementModQ(big.NewInt(22))
	m := group.PowModP(a, wrongSecret)

	seed, _ := group.NewElementModQ(big.NewInt(55))
	nonces := egrand.NewNonces(seed)
	p, err := NewGenericDeterministic(secret, commitment, a, m, nonces)
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := p.IsValid(commitment, a, m); ok {
		t.Fatal("proof for an inconsistent share must be rejected")
	}
}
