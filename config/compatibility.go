// Package config selects between the core's base-K (EG 2.0) and base-g
// (EG 1.0) ElGamal encoding when a caller needs direct, explicit control
// over which one C1/C2 use (§9, "EG 1.0 vs 2.0 dual support"). The ballot
// encryption pipeline (C9) always encrypts base-K; this package exists for
// callers working with legacy EG 1.0 material outside that pipeline.
package config

import (
	"github.com/davinci-labs/egcore/elgamal"
	"github.com/davinci-labs/egcore/group"
)

// CompatibilityMode selects the ElGamal encoding base.
type CompatibilityMode int

const (
	// EG20 is base-K encoding: data = K^(m+r). The default and only path
	// the ballot pipeline uses.
	EG20 CompatibilityMode = iota
	// EG10 is base-g encoding: data = g^m * K^r, kept for interoperability
	// with election records published under the legacy scheme.
	EG10
)

func (m CompatibilityMode) String() string {
	if m == EG10 {
		return "eg1.0-base-g"
	}
	return "eg2.0-base-k"
}

// Encrypt dispatches to elgamal.Encrypt or elgamal.EncryptBaseG per mode.
func Encrypt(mode CompatibilityMode, m uint64, nonce group.ElementModQ, publicKey group.ElementModP) (elgamal.Ciphertext, error) {
	if mode == EG10 {
		return elgamal.EncryptBaseG(m, nonce, publicKey)
	}
	return elgamal.Encrypt(m, nonce, publicKey)
}

// DecryptBase returns the discrete-log base a caller must decrypt against
// for ciphertexts produced under mode: the public key for base-K, the
// generator for base-g.
func DecryptBase(mode CompatibilityMode, publicKey group.ElementModP) group.ElementModP {
	if mode == EG10 {
		return group.GModP()
	}
	return publicKey
}
