package config

import (
	"math/big"
	"testing"

	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
)

func TestEncryptDispatchesByMode(t *testing.T) {
	secret, _ := group.NewElementModQ(big.NewInt(2))
	kp, err := elgamal.NewKeyPair(secret)
	if err != nil {
		t.Fatal(err)
	}
	nonce, _ := group.NewElementModQ(big.NewInt(5))

	baseK, err := Encrypt(EG20, 1, nonce, kp.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	m, err := elgamal.DecryptWithSecret(baseK, kp.SecretKey, DecryptBase(EG20, kp.PublicKey), 10)
	if err != nil {
		t.Fatal(err)
	}
	if m != 1 {
		t.Fatalf("base-K roundtrip: want 1, got %d", m)
	}

	baseG, err := Encrypt(EG10, 1, nonce, kp.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	m, err = elgamal.DecryptWithSecret(baseG, kp.SecretKey, DecryptBase(EG10, kp.PublicKey), 10)
	if err != nil {
		t.Fatal(err)
	}
	if m != 1 {
		t.Fatalf("base-g roundtrip: want 1, got %d", m)
	}

	if baseK.Pad.Equal(baseG.Pad) && baseK.Data.Equal(baseG.Data) {
		t.Fatal("base-K and base-g ciphertexts for the same plaintext/nonce should differ in data")
	}
}

func TestCompatibilityModeString(t *testing.T) {
	if EG20.String() != "eg2.0-base-k" {
		t.Fatalf("unexpected EG20 string: %s", EG20.String())
	}
	if EG10.String() != "eg1.0-base-g" {
		t.Fatalf("unexpected EG10 string: %s", EG10.String())
	}
}
