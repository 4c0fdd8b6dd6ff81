package elgamal

import (
	"fmt"
	"math/big"

	"github.com/davinci-labs/egcore/group"
)

// KeyPair is a secret exponent s and its public key K = g^s mod P, with K
// marked fixed-base since every encryption exponentiates against it (§4.6).
type KeyPair struct {
	SecretKey group.ElementModQ
	PublicKey group.ElementModP
}

// ErrSecretKeyOutOfRange is returned when a secret key is supplied (rather
// than generated) outside the required [2, Q) range.
var ErrSecretKeyOutOfRange = fmt.Errorf("elgamal: secret key must be in [2, Q)")

// NewKeyPair derives a KeyPair from a secret s in [2, Q).
func NewKeyPair(secret group.ElementModQ) (KeyPair, error) {
	if secret.BigInt().Cmp(big.NewInt(2)) < 0 {
		return KeyPair{}, ErrSecretKeyOutOfRange
	}
	public := group.GPowP(secret).WithFixedBase()
	return KeyPair{SecretKey: secret, PublicKey: public}, nil
}
