package elgamal

import (
	"math/big"
	"testing"

	"github.com/davinci-labs/egcore/group"
)

func TestEncryptDecryptSingleVote(t *testing.T) {
	// S1: secret s = 2, K = g^2, nonce r = 1, plaintext m = 1.
	secret, _ := group.NewElementModQ(big.NewInt(2))
	kp, err := NewKeyPair(secret)
	if err != nil {
		t.Fatal(err)
	}
	nonce, _ := group.NewElementModQ(big.NewInt(1))

	ct, err := Encrypt(1, nonce, kp.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	if !ct.Pad.Equal(group.GModP()) {
		t.Fatalf("pad = %s, want g", ct.Pad.ToHex())
	}

	m, err := DecryptWithSecret(ct, secret, kp.PublicKey, 10)
	if err != nil {
		t.Fatal(err)
	}
	if m != 1 {
		t.Fatalf("decrypted m = %d, want 1", m)
	}
}

func TestEncryptZeroNonceFails(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(2))
	kp, _ := NewKeyPair(secret)
	if _, err := Encrypt(1, group.ZeroModQ(), kp.PublicKey); err == nil {
		t.Fatal("expected error encrypting with a zero nonce")
	}
}

func TestHomomorphicTally(t *testing.T) {
	// S2: ciphertexts of 1, 0, 1 under independent nonces sum to 2.
	secret, _ := group.NewElementModQ(big.NewInt(5))
	kp, _ := NewKeyPair(secret)

	ra, _ := group.NewElementModQ(big.NewInt(3))
	rb, _ := group.NewElementModQ(big.NewInt(7))
	rc, _ := group.NewElementModQ(big.NewInt(11))

	ca, _ := Encrypt(1, ra, kp.PublicKey)
	cb, _ := Encrypt(0, rb, kp.PublicKey)
	cc, _ := Encrypt(1, rc, kp.PublicKey)

	sum, err := Add(ca, cb, cc)
	if err != nil {
		t.Fatal(err)
	}
	m, err := DecryptWithSecret(sum, secret, kp.PublicKey, 10)
	if err != nil {
		t.Fatal(err)
	}
	if m != 2 {
		t.Fatalf("tally = %d, want 2", m)
	}
}

func TestDecryptWithNonceMatchesDecryptWithSecret(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(9))
	kp, _ := NewKeyPair(secret)
	nonce, _ := group.NewElementModQ(big.NewInt(13))

	ct, _ := Encrypt(1, nonce, kp.PublicKey)

	mBySecret, err := DecryptWithSecret(ct, secret, kp.PublicKey, 10)
	if err != nil {
		t.Fatal(err)
	}
	mByNonce, err := DecryptWithNonce(ct, nonce, kp.PublicKey, 10)
	if err != nil {
		t.Fatal(err)
	}
	if mBySecret != mByNonce {
		t.Fatalf("decrypt-by-secret (%d) disagrees with decrypt-by-nonce (%d)", mBySecret, mByNonce)
	}
}

func TestAddEmptyFails(t *testing.T) {
	if _, err := Add(); err == nil {
		t.Fatal("expected error adding an empty ciphertext list")
	}
}

func TestPartialDecrypt(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(4))
	kp, _ := NewKeyPair(secret)
	nonce, _ := group.NewElementModQ(big.NewInt(6))
	ct, _ := Encrypt(1, nonce, kp.PublicKey)

	share := PartialDecrypt(ct, secret)
	want := group.PowModP(ct.Pad, secret)
	if !share.Equal(want) {
		t.Fatalf("partial decrypt = %s, want %s", share.ToHex(), want.ToHex())
	}
}

func TestHashedElGamalRoundTrip(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(17))
	kp, _ := NewKeyPair(secret)
	nonce, _ := group.NewElementModQ(big.NewInt(21))
	seed, _ := group.NewElementModQ(big.NewInt(3))

	message := []byte("write-in: Jane Doe")

	hct, err := HashedEncrypt(message, nonce, "03", kp.PublicKey, seed, 64, false)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecryptHashedWithSecret(hct, secret, "03", kp.PublicKey, seed, 64, true)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(message) {
		t.Fatalf("roundtrip = %q, want %q", got, message)
	}
}

func TestHashedElGamalRejectsTamperedMac(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(17))
	kp, _ := NewKeyPair(secret)
	nonce, _ := group.NewElementModQ(big.NewInt(21))
	seed, _ := group.NewElementModQ(big.NewInt(3))

	hct, err := HashedEncrypt([]byte("hello"), nonce, "03", kp.PublicKey, seed, 32, false)
	if err != nil {
		t.Fatal(err)
	}
	hct.Mac[0] ^= 0xFF
	if _, err := DecryptHashedWithSecret(hct, secret, "03", kp.PublicKey, seed, 32, true); err != ErrMacMismatch {
		t.Fatalf("expected ErrMacMismatch, got %v", err)
	}
}

func TestHashedElGamalOversizedFailsWithoutTruncation(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(5))
	kp, _ := NewKeyPair(secret)
	nonce, _ := group.NewElementModQ(big.NewInt(8))
	seed, _ := group.NewElementModQ(big.NewInt(1))

	message := make([]byte, 100)
	if _, err := HashedEncrypt(message, nonce, "03", kp.PublicKey, seed, 32, false); err != ErrMessageTooLarge {
		t.Fatalf("expected ErrMessageTooLarge, got %v", err)
	}
}
